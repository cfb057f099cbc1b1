package repository

import (
	"context"

	"greenhall/internal/model"
)

// Package repository defines data access contracts for the three record
// collections. No business logic here — strictly persistence operations.
// Implementations live in subpackages (e.g. postgres).
//
// ListAll returns every record ordered by the collection's designated date
// field, newest first; there is no pagination. Update persists the full
// field set of the given record (services resolve partial updates by
// fetching first). Delete reports whether a row was actually removed.

// TeamMemberRepository persists team members, listed by upload date.
type TeamMemberRepository interface {
	Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error)
	FindByID(ctx context.Context, id string) (*model.TeamMember, error)
	ListAll(ctx context.Context) ([]model.TeamMember, error)
	Update(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// NewsRepository persists news posts, listed by news date.
type NewsRepository interface {
	Create(ctx context.Context, n *model.News) (*model.News, error)
	FindByID(ctx context.Context, id string) (*model.News, error)
	ListAll(ctx context.Context) ([]model.News, error)
	Update(ctx context.Context, n *model.News) (*model.News, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PortfolioRepository persists portfolio companies, listed by investment date.
type PortfolioRepository interface {
	Create(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error)
	FindByID(ctx context.Context, id string) (*model.Portfolio, error)
	ListAll(ctx context.Context) ([]model.Portfolio, error)
	Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error)
	Delete(ctx context.Context, id string) (bool, error)
}
