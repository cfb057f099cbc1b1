package postgres

import (
	"context"
	"database/sql"
	"errors"

	"greenhall/internal/model"
	"greenhall/internal/repository"
)

// PortfolioPostgres is a PostgreSQL implementation of
// repository.PortfolioRepository.
type PortfolioPostgres struct {
	db *sql.DB
}

// NewPortfolioPostgres creates a new PortfolioPostgres repository.
func NewPortfolioPostgres(db *sql.DB) *PortfolioPostgres {
	return &PortfolioPostgres{db: db}
}

var _ repository.PortfolioRepository = (*PortfolioPostgres)(nil)

const portfolioColumns = `id, company_name, description, industry, initial_investment, headquarters, acquisitions, status, fund, logo_url, logo_public_id, upload_date, created_at, updated_at`

func scanPortfolio(row interface{ Scan(...any) error }) (*model.Portfolio, error) {
	var (
		p        model.Portfolio
		logoURL  sql.NullString
		publicID sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.CompanyName,
		&p.Description,
		&p.Industry,
		&p.InitialInvestment,
		&p.Headquarters,
		&p.Acquisitions,
		&p.Status,
		&p.Fund,
		&logoURL,
		&publicID,
		&p.UploadDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if logoURL.Valid {
		p.LogoURL = &logoURL.String
	}
	if publicID.Valid {
		p.LogoPublicID = &publicID.String
	}
	return &p, nil
}

// Create inserts a new portfolio company row and returns the stored record.
func (r *PortfolioPostgres) Create(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	const q = `
		INSERT INTO portfolio_companies (id, company_name, description, industry, initial_investment, headquarters, acquisitions, status, fund, logo_url, logo_public_id, upload_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + portfolioColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.CompanyName,
		p.Description,
		p.Industry,
		p.InitialInvestment,
		p.Headquarters,
		p.Acquisitions,
		p.Status,
		p.Fund,
		p.LogoURL,
		p.LogoPublicID,
		p.UploadDate,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPortfolio(row)
}

// FindByID fetches a single portfolio company by its ID.
func (r *PortfolioPostgres) FindByID(ctx context.Context, id string) (*model.Portfolio, error) {
	const q = `SELECT ` + portfolioColumns + ` FROM portfolio_companies WHERE id = $1`
	p, err := scanPortfolio(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListAll returns every portfolio company, most recent investment first.
func (r *PortfolioPostgres) ListAll(ctx context.Context) ([]model.Portfolio, error) {
	const q = `SELECT ` + portfolioColumns + ` FROM portfolio_companies ORDER BY initial_investment DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Portfolio, 0)
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update persists the full field set of the given record.
func (r *PortfolioPostgres) Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	const q = `
		UPDATE portfolio_companies
		SET company_name = $2, description = $3, industry = $4, initial_investment = $5, headquarters = $6, acquisitions = $7, status = $8, fund = $9, logo_url = $10, logo_public_id = $11, updated_at = now()
		WHERE id = $1
		RETURNING ` + portfolioColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.CompanyName,
		p.Description,
		p.Industry,
		p.InitialInvestment,
		p.Headquarters,
		p.Acquisitions,
		p.Status,
		p.Fund,
		p.LogoURL,
		p.LogoPublicID,
	)
	out, err := scanPortfolio(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes a portfolio company by ID and reports whether a row was removed.
func (r *PortfolioPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM portfolio_companies WHERE id = $1`
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
