package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greenhall/internal/assets"
	assetMocks "greenhall/internal/assets/mocks"
	"greenhall/internal/model"
	"greenhall/internal/repository"
	repoMocks "greenhall/internal/repository/mocks"
)

func pngUpload(name string) *assets.FileUpload {
	return &assets.FileUpload{
		Reader:      strings.NewReader("png"),
		Filename:    name,
		ContentType: "image/png",
		Size:        3,
	}
}

func strptr(s string) *string { return &s }

func TestTeamMemberService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      CreateTeamMemberInput
		setupMocks func(mAssets *assetMocks.MockClient, mRepo *repoMocks.MockTeamMemberRepository)
		wantErr    string
		check      func(t *testing.T, m *model.TeamMember)
	}{
		{
			name: "happy path",
			input: CreateTeamMemberInput{
				Name:  "  Jane Doe  ",
				Team:  "Investment Team",
				Image: pngUpload("jane.png"),
			},
			setupMocks: func(mAssets *assetMocks.MockClient, mRepo *repoMocks.MockTeamMemberRepository) {
				mAssets.On("Upload", ctx, mock.Anything).
					Return(assets.Asset{URL: "https://cdn/x.png", PublicID: "greenhall-capital/1-jane.png"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(m *model.TeamMember) bool {
					return m.Name == "Jane Doe" &&
						m.ImageURL == "https://cdn/x.png" &&
						m.ImagePublicID == "greenhall-capital/1-jane.png" &&
						m.ID != ""
				})).Return(&model.TeamMember{ID: "stored-id", Name: "Jane Doe"}, nil)
			},
			check: func(t *testing.T, m *model.TeamMember) {
				assert.Equal(t, "stored-id", m.ID)
			},
		},
		{
			name:    "missing name",
			input:   CreateTeamMemberInput{Image: pngUpload("jane.png")},
			wantErr: "name is required",
		},
		{
			name:    "missing image",
			input:   CreateTeamMemberInput{Name: "Jane"},
			wantErr: "team member image is required",
		},
		{
			name: "upload failure aborts before any write",
			input: CreateTeamMemberInput{
				Name:  "Jane",
				Image: pngUpload("jane.png"),
			},
			setupMocks: func(mAssets *assetMocks.MockClient, mRepo *repoMocks.MockTeamMemberRepository) {
				mAssets.On("Upload", ctx, mock.Anything).
					Return(assets.Asset{}, errors.New("upload fail"))
			},
			wantErr: "upload fail",
		},
		{
			name: "repo failure destroys the fresh upload",
			input: CreateTeamMemberInput{
				Name:  "Jane",
				Image: pngUpload("jane.png"),
			},
			setupMocks: func(mAssets *assetMocks.MockClient, mRepo *repoMocks.MockTeamMemberRepository) {
				mAssets.On("Upload", ctx, mock.Anything).
					Return(assets.Asset{URL: "u", PublicID: "pid"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mAssets.On("Destroy", ctx, "pid").Return(assets.CleanupResult{PublicID: "pid"})
			},
			wantErr: "db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mAssets := new(assetMocks.MockClient)
			mRepo := new(repoMocks.MockTeamMemberRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mAssets, mRepo)
			}
			svc := NewTeamMemberService(mAssets, mRepo, nil)

			m, err := svc.Create(ctx, tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, m)
			} else {
				require.NoError(t, err)
				tt.check(t, m)
			}
			mAssets.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestTeamMemberService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *model.TeamMember {
		return &model.TeamMember{
			ID:            "tm-id",
			Name:          "Jane Doe",
			ImageURL:      "https://cdn/old.png",
			ImagePublicID: "greenhall-capital/1-old.png",
			Role:          "Partner",
			Email:         "jane@example.com",
		}
	}

	t.Run("single field supplied leaves the rest untouched", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(m *model.TeamMember) bool {
			return m.Role == "Principal" &&
				m.Name == "Jane Doe" &&
				m.Email == "jane@example.com" &&
				m.ImagePublicID == "greenhall-capital/1-old.png"
		})).Return(existing(), nil)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "tm-id", UpdateTeamMemberInput{Role: strptr("Principal")})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
		mAssets.AssertNotCalled(t, "Upload")
		mAssets.AssertNotCalled(t, "Destroy")
	})

	t.Run("empty string clears an optional field", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(m *model.TeamMember) bool {
			return m.Email == "" && m.Role == "Partner"
		})).Return(existing(), nil)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "tm-id", UpdateTeamMemberInput{Email: strptr("")})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty name is ignored, not cleared", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(m *model.TeamMember) bool {
			return m.Name == "Jane Doe"
		})).Return(existing(), nil)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "tm-id", UpdateTeamMemberInput{Name: strptr("")})

		require.NoError(t, err)
	})

	t.Run("new image destroys the old asset then uploads", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(existing(), nil)
		mAssets.On("Destroy", ctx, "greenhall-capital/1-old.png").
			Return(assets.CleanupResult{PublicID: "greenhall-capital/1-old.png"})
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "https://cdn/new.png", PublicID: "greenhall-capital/2-new.png"}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(m *model.TeamMember) bool {
			return m.ImageURL == "https://cdn/new.png" &&
				m.ImagePublicID == "greenhall-capital/2-new.png"
		})).Return(existing(), nil)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "tm-id", UpdateTeamMemberInput{Image: pngUpload("new.png")})

		require.NoError(t, err)
		mAssets.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("old asset cleanup failure does not block the update", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(existing(), nil)
		mAssets.On("Destroy", ctx, "greenhall-capital/1-old.png").
			Return(assets.CleanupResult{PublicID: "greenhall-capital/1-old.png", Err: errors.New("gone")})
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "u", PublicID: "p"}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(existing(), nil)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "tm-id", UpdateTeamMemberInput{Image: pngUpload("new.png")})

		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := NewTeamMemberService(mAssets, mRepo, nil).
			Update(ctx, "missing", UpdateTeamMemberInput{})

		assert.ErrorIs(t, err, ErrTeamMemberNotFound)
	})
}

func TestTeamMemberService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("destroys the asset exactly once and removes the row", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(&model.TeamMember{
			ID: "tm-id", ImagePublicID: "greenhall-capital/1-a.png",
		}, nil)
		mAssets.On("Destroy", ctx, "greenhall-capital/1-a.png").
			Return(assets.CleanupResult{PublicID: "greenhall-capital/1-a.png"}).Once()
		mRepo.On("Delete", ctx, "tm-id").Return(true, nil)

		err := NewTeamMemberService(mAssets, mRepo, nil).Delete(ctx, "tm-id")

		require.NoError(t, err)
		mAssets.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("asset destroy failure still deletes the record", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "tm-id").Return(&model.TeamMember{
			ID: "tm-id", ImagePublicID: "pid",
		}, nil)
		mAssets.On("Destroy", ctx, "pid").
			Return(assets.CleanupResult{PublicID: "pid", Err: errors.New("asset host down")})
		mRepo.On("Delete", ctx, "tm-id").Return(true, nil)

		err := NewTeamMemberService(mAssets, mRepo, nil).Delete(ctx, "tm-id")

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockTeamMemberRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		err := NewTeamMemberService(mAssets, mRepo, nil).Delete(ctx, "missing")

		assert.ErrorIs(t, err, ErrTeamMemberNotFound)
		mAssets.AssertNotCalled(t, "Destroy")
	})
}

func TestTeamMemberService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockTeamMemberRepository)
	mRepo.On("FindByID", ctx, "tm-id").Return(&model.TeamMember{ID: "tm-id"}, nil)

	svc := NewTeamMemberService(nil, mRepo, nil)
	m, err := svc.Get(ctx, "tm-id")

	require.NoError(t, err)
	assert.Equal(t, "tm-id", m.ID)
}
