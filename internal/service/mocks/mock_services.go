package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greenhall/internal/model"
	"greenhall/internal/service"
)

type MockTeamMemberService struct {
	mock.Mock
}

func (m *MockTeamMemberService) Create(ctx context.Context, in service.CreateTeamMemberInput) (*model.TeamMember, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Update(ctx context.Context, id string, in service.UpdateTeamMemberInput) (*model.TeamMember, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) Create(ctx context.Context, in service.CreateNewsInput) (*model.News, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsService) List(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockNewsService) Get(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsService) Update(ctx context.Context, id string, in service.UpdateNewsInput) (*model.News, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) Create(ctx context.Context, in service.CreatePortfolioInput) (*model.Portfolio, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) List(ctx context.Context) ([]model.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) Get(ctx context.Context, id string) (*model.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) Update(ctx context.Context, id string, in service.UpdatePortfolioInput) (*model.Portfolio, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
