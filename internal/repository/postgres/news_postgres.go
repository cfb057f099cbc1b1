package postgres

import (
	"context"
	"database/sql"
	"errors"

	"greenhall/internal/model"
	"greenhall/internal/repository"
)

// NewsPostgres is a PostgreSQL implementation of repository.NewsRepository.
type NewsPostgres struct {
	db *sql.DB
}

// NewNewsPostgres creates a new NewsPostgres repository.
func NewNewsPostgres(db *sql.DB) *NewsPostgres {
	return &NewsPostgres{db: db}
}

var _ repository.NewsRepository = (*NewsPostgres)(nil)

const newsColumns = `id, title, news_date, content, image_url, image_public_id, upload_date, created_at, updated_at`

func scanNews(row interface{ Scan(...any) error }) (*model.News, error) {
	var (
		n        model.News
		imageURL sql.NullString
		publicID sql.NullString
	)
	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.NewsDate,
		&n.Content,
		&imageURL,
		&publicID,
		&n.UploadDate,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		n.ImageURL = &imageURL.String
	}
	if publicID.Valid {
		n.ImagePublicID = &publicID.String
	}
	return &n, nil
}

// Create inserts a new news row and returns the stored record.
func (r *NewsPostgres) Create(ctx context.Context, n *model.News) (*model.News, error) {
	const q = `
		INSERT INTO news (id, title, news_date, content, image_url, image_public_id, upload_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + newsColumns
	row := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.Title,
		n.NewsDate,
		n.Content,
		n.ImageURL,
		n.ImagePublicID,
		n.UploadDate,
		n.CreatedAt,
		n.UpdatedAt,
	)
	return scanNews(row)
}

// FindByID fetches a single news post by its ID.
func (r *NewsPostgres) FindByID(ctx context.Context, id string) (*model.News, error) {
	const q = `SELECT ` + newsColumns + ` FROM news WHERE id = $1`
	n, err := scanNews(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListAll returns every news post, newest news date first.
func (r *NewsPostgres) ListAll(ctx context.Context) ([]model.News, error) {
	const q = `SELECT ` + newsColumns + ` FROM news ORDER BY news_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the full field set of the given record.
func (r *NewsPostgres) Update(ctx context.Context, n *model.News) (*model.News, error) {
	const q = `
		UPDATE news
		SET title = $2, news_date = $3, content = $4, image_url = $5, image_public_id = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + newsColumns
	row := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.Title,
		n.NewsDate,
		n.Content,
		n.ImageURL,
		n.ImagePublicID,
	)
	out, err := scanNews(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes a news post by ID and reports whether a row was removed.
func (r *NewsPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM news WHERE id = $1`
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
