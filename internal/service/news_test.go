package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greenhall/internal/assets"
	assetMocks "greenhall/internal/assets/mocks"
	"greenhall/internal/model"
	"greenhall/internal/repository"
	repoMocks "greenhall/internal/repository/mocks"
)

func TestNewsService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("without image stores nil image fields and never touches storage", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(n *model.News) bool {
			return n.Title == "Q3 Results" &&
				n.NewsDate.Equal(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)) &&
				n.ImageURL == nil && n.ImagePublicID == nil
		})).Return(&model.News{ID: "news-id", Title: "Q3 Results"}, nil)

		svc := NewNewsService(mAssets, mRepo, nil)
		n, err := svc.Create(ctx, CreateNewsInput{
			Title:    "Q3 Results",
			NewsDate: "2024-09-30",
			Content:  "Quarterly results are in.",
		})

		require.NoError(t, err)
		assert.Equal(t, "news-id", n.ID)
		mAssets.AssertNotCalled(t, "Upload")
		mRepo.AssertExpectations(t)
	})

	t.Run("with image", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "https://cdn/n.png", PublicID: "greenhall-capital/3-n.png"}, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(n *model.News) bool {
			return n.ImageURL != nil && *n.ImageURL == "https://cdn/n.png" &&
				n.ImagePublicID != nil && *n.ImagePublicID == "greenhall-capital/3-n.png"
		})).Return(&model.News{ID: "news-id"}, nil)

		svc := NewNewsService(mAssets, mRepo, nil)
		_, err := svc.Create(ctx, CreateNewsInput{
			Title:    "Launch",
			NewsDate: "2024-01-15",
			Content:  "We launched.",
			Image:    pngUpload("n.png"),
		})

		require.NoError(t, err)
		mAssets.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := NewNewsService(nil, nil, nil)
		_, err := svc.Create(ctx, CreateNewsInput{Title: "Only title"})

		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.EqualError(t, err, "title, news date, and content are required")
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		svc := NewNewsService(nil, nil, nil)
		_, err := svc.Create(ctx, CreateNewsInput{
			Title:    "T",
			NewsDate: "next tuesday",
			Content:  "C",
		})

		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "newsDate")
	})

	t.Run("repo failure destroys the fresh upload", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "u", PublicID: "pid"}, nil)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
		mAssets.On("Destroy", ctx, "pid").Return(assets.CleanupResult{PublicID: "pid"})

		svc := NewNewsService(mAssets, mRepo, nil)
		_, err := svc.Create(ctx, CreateNewsInput{
			Title: "T", NewsDate: "2024-01-01", Content: "C", Image: pngUpload("n.png"),
		})

		require.Error(t, err)
		mAssets.AssertExpectations(t)
	})
}

func TestNewsService_Update(t *testing.T) {
	ctx := context.Background()

	imageURL := "https://cdn/old.png"
	publicID := "greenhall-capital/1-old.png"
	existing := func() *model.News {
		return &model.News{
			ID:            "news-id",
			Title:         "Old Title",
			NewsDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Content:       "Old content",
			ImageURL:      &imageURL,
			ImagePublicID: &publicID,
		}
	}

	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("FindByID", ctx, "news-id").Return(existing(), nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(n *model.News) bool {
			return n.Title == "New Title" &&
				n.Content == "Old content" &&
				n.ImagePublicID != nil && *n.ImagePublicID == publicID
		})).Return(existing(), nil)

		_, err := NewNewsService(mAssets, mRepo, nil).
			Update(ctx, "news-id", UpdateNewsInput{Title: strptr("New Title")})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("image replacement destroys previous asset", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("FindByID", ctx, "news-id").Return(existing(), nil)
		mAssets.On("Destroy", ctx, publicID).Return(assets.CleanupResult{PublicID: publicID})
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "https://cdn/new.png", PublicID: "greenhall-capital/2-new.png"}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(existing(), nil)

		_, err := NewNewsService(mAssets, mRepo, nil).
			Update(ctx, "news-id", UpdateNewsInput{Image: pngUpload("new.png")})

		require.NoError(t, err)
		mAssets.AssertExpectations(t)
	})

	t.Run("image upload on a post without one skips destroy", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		bare := &model.News{ID: "news-id", Title: "T", Content: "C"}
		mRepo.On("FindByID", ctx, "news-id").Return(bare, nil)
		mAssets.On("Upload", ctx, mock.Anything).
			Return(assets.Asset{URL: "u", PublicID: "p"}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(bare, nil)

		_, err := NewNewsService(mAssets, mRepo, nil).
			Update(ctx, "news-id", UpdateNewsInput{Image: pngUpload("first.png")})

		require.NoError(t, err)
		mAssets.AssertNotCalled(t, "Destroy")
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := NewNewsService(nil, mRepo, nil).Update(ctx, "missing", UpdateNewsInput{})

		assert.ErrorIs(t, err, ErrNewsNotFound)
	})
}

func TestNewsService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("post without image skips asset cleanup", func(t *testing.T) {
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("FindByID", ctx, "news-id").Return(&model.News{ID: "news-id"}, nil)
		mRepo.On("Delete", ctx, "news-id").Return(true, nil)

		err := NewNewsService(mAssets, mRepo, nil).Delete(ctx, "news-id")

		require.NoError(t, err)
		mAssets.AssertNotCalled(t, "Destroy")
	})

	t.Run("post with image destroys it first", func(t *testing.T) {
		pid := "greenhall-capital/9-img.png"
		url := "https://cdn/img.png"
		mAssets := new(assetMocks.MockClient)
		mRepo := new(repoMocks.MockNewsRepository)
		mRepo.On("FindByID", ctx, "news-id").Return(&model.News{
			ID: "news-id", ImageURL: &url, ImagePublicID: &pid,
		}, nil)
		mAssets.On("Destroy", ctx, pid).Return(assets.CleanupResult{PublicID: pid}).Once()
		mRepo.On("Delete", ctx, "news-id").Return(true, nil)

		err := NewNewsService(mAssets, mRepo, nil).Delete(ctx, "news-id")

		require.NoError(t, err)
		mAssets.AssertExpectations(t)
	})
}

func TestNewsService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockNewsRepository)
	mRepo.On("ListAll", ctx).Return([]model.News{{ID: "a"}, {ID: "b"}}, nil)

	items, err := NewNewsService(nil, mRepo, nil).List(ctx)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}
