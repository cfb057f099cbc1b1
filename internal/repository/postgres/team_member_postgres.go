package postgres

import (
	"context"
	"database/sql"
	"errors"

	"greenhall/internal/model"
	"greenhall/internal/repository"
)

// TeamMemberPostgres is a PostgreSQL implementation of
// repository.TeamMemberRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type TeamMemberPostgres struct {
	db *sql.DB
}

// NewTeamMemberPostgres creates a new TeamMemberPostgres repository.
func NewTeamMemberPostgres(db *sql.DB) *TeamMemberPostgres {
	return &TeamMemberPostgres{db: db}
}

var _ repository.TeamMemberRepository = (*TeamMemberPostgres)(nil)

const teamMemberColumns = `id, name, image_url, image_public_id, role, position, team, information, email, phone, upload_date, created_at, updated_at`

func scanTeamMember(row interface{ Scan(...any) error }) (*model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.ImageURL,
		&m.ImagePublicID,
		&m.Role,
		&m.Position,
		&m.Team,
		&m.Information,
		&m.Email,
		&m.Phone,
		&m.UploadDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new team member row and returns the stored record.
func (r *TeamMemberPostgres) Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error) {
	const q = `
		INSERT INTO team_members (id, name, image_url, image_public_id, role, position, team, information, email, phone, upload_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + teamMemberColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Name,
		m.ImageURL,
		m.ImagePublicID,
		m.Role,
		m.Position,
		m.Team,
		m.Information,
		m.Email,
		m.Phone,
		m.UploadDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return scanTeamMember(row)
}

// FindByID fetches a single team member by its ID.
func (r *TeamMemberPostgres) FindByID(ctx context.Context, id string) (*model.TeamMember, error) {
	const q = `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1`
	m, err := scanTeamMember(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// ListAll returns every team member, newest upload first.
func (r *TeamMemberPostgres) ListAll(ctx context.Context) ([]model.TeamMember, error) {
	const q = `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY upload_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TeamMember, 0)
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the full field set of the given record.
func (r *TeamMemberPostgres) Update(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error) {
	const q = `
		UPDATE team_members
		SET name = $2, image_url = $3, image_public_id = $4, role = $5, position = $6, team = $7, information = $8, email = $9, phone = $10, updated_at = now()
		WHERE id = $1
		RETURNING ` + teamMemberColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.Name,
		m.ImageURL,
		m.ImagePublicID,
		m.Role,
		m.Position,
		m.Team,
		m.Information,
		m.Email,
		m.Phone,
	)
	out, err := scanTeamMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes a team member by ID and reports whether a row was removed.
func (r *TeamMemberPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM team_members WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
