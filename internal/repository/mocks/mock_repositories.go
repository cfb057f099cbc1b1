package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greenhall/internal/model"
)

type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, tm *model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) FindByID(ctx context.Context, id string) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) ListAll(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, tm *model.TeamMember) (*model.TeamMember, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Create(ctx context.Context, n *model.News) (*model.News, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) ListAll(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockNewsRepository) Update(ctx context.Context, n *model.News) (*model.News, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) FindByID(ctx context.Context, id string) (*model.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) ListAll(ctx context.Context) ([]model.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
