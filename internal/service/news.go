package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"greenhall/internal/assets"
	"greenhall/internal/model"
	"greenhall/internal/repository"
)

// CreateNewsInput carries the multipart fields of a news create request.
// The image is optional.
type CreateNewsInput struct {
	Title    string `form:"title" validate:"required"`
	NewsDate string `form:"newsDate" validate:"required"`
	Content  string `form:"content" validate:"required"`

	Image *assets.FileUpload `form:"image"`
}

// UpdateNewsInput carries a partial update. Required fields (title,
// newsDate, content) can only be replaced, not cleared.
type UpdateNewsInput struct {
	Title    *string
	NewsDate *string
	Content  *string

	Image *assets.FileUpload
}

// NewsService defines the use cases for news records.
type NewsService interface {
	Create(ctx context.Context, in CreateNewsInput) (*model.News, error)
	List(ctx context.Context) ([]model.News, error)
	Get(ctx context.Context, id string) (*model.News, error)
	Update(ctx context.Context, id string, in UpdateNewsInput) (*model.News, error)
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	assets assets.Client
	repo   repository.NewsRepository
	logger *zap.Logger
}

// NewNewsService constructs a NewsService.
func NewNewsService(ac assets.Client, repo repository.NewsRepository, logger *zap.Logger) NewsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &newsService{assets: ac, repo: repo, logger: logger}
}

func (s *newsService) Create(ctx context.Context, in CreateNewsInput) (*model.News, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if fields := missingFields(in); len(fields) > 0 {
		return nil, &ValidationError{
			Fields:  fields,
			Message: "title, news date, and content are required",
		}
	}

	newsDate, err := parseDate("newsDate", in.NewsDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n := &model.News{
		ID:         uuid.New().String(),
		Title:      in.Title,
		NewsDate:   newsDate,
		Content:    in.Content,
		UploadDate: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var uploaded assets.Asset
	if in.Image != nil {
		uploaded, err = s.assets.Upload(ctx, *in.Image)
		if err != nil {
			return nil, err
		}
		n.ImageURL = &uploaded.URL
		n.ImagePublicID = &uploaded.PublicID
	}

	stored, err := s.repo.Create(ctx, n)
	if err != nil {
		if uploaded.PublicID != "" {
			if res := s.assets.Destroy(ctx, uploaded.PublicID); !res.OK() {
				s.logger.Warn("orphaned asset after failed create",
					zap.String("public_id", uploaded.PublicID))
			}
		}
		return nil, err
	}
	return stored, nil
}

func (s *newsService) List(ctx context.Context) ([]model.News, error) {
	return s.repo.ListAll(ctx)
}

func (s *newsService) Get(ctx context.Context, id string) (*model.News, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *newsService) Update(ctx context.Context, id string, in UpdateNewsInput) (*model.News, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		n.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) != "" {
		n.Content = strings.TrimSpace(*in.Content)
	}
	if in.NewsDate != nil && *in.NewsDate != "" {
		newsDate, err := parseDate("newsDate", *in.NewsDate)
		if err != nil {
			return nil, err
		}
		n.NewsDate = newsDate
	}

	if in.Image != nil {
		if n.HasImage() {
			s.assets.Destroy(ctx, *n.ImagePublicID)
		}
		asset, err := s.assets.Upload(ctx, *in.Image)
		if err != nil {
			return nil, err
		}
		n.ImageURL = &asset.URL
		n.ImagePublicID = &asset.PublicID
	}

	updated, err := s.repo.Update(ctx, n)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	n, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if n.HasImage() {
		s.assets.Destroy(ctx, *n.ImagePublicID)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
