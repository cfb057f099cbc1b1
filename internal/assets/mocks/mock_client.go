package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"greenhall/internal/assets"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Upload(ctx context.Context, f assets.FileUpload) (assets.Asset, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(assets.Asset), args.Error(1)
}

func (m *MockClient) Destroy(ctx context.Context, publicID string) assets.CleanupResult {
	args := m.Called(ctx, publicID)
	return args.Get(0).(assets.CleanupResult)
}
