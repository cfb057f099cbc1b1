package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"greenhall/internal/assets"
	"greenhall/internal/model"
	"greenhall/internal/repository"
)

// portfolioRequiredMsg is the fixed wording promised to clients when any
// required portfolio field is missing.
const portfolioRequiredMsg = "all fields are required: companyName, description, industry, initialInvestment, headquarters, acquisitions, status, fund"

// CreatePortfolioInput carries the multipart fields of a portfolio company
// create request. The logo is optional; everything else is required.
// Acquisitions arrives as a string and must parse as an integer.
type CreatePortfolioInput struct {
	CompanyName       string `form:"companyName" validate:"required"`
	Description       string `form:"description" validate:"required"`
	Industry          string `form:"industry" validate:"required"`
	InitialInvestment string `form:"initialInvestment" validate:"required"`
	Headquarters      string `form:"headquarters" validate:"required"`
	Acquisitions      string `form:"acquisitions" validate:"required"`
	Status            string `form:"status" validate:"required"`
	Fund              string `form:"fund" validate:"required"`

	Logo *assets.FileUpload `form:"logo"`
}

// UpdatePortfolioInput carries a partial update. Required fields can only
// be replaced, not cleared.
type UpdatePortfolioInput struct {
	CompanyName       *string
	Description       *string
	Industry          *string
	InitialInvestment *string
	Headquarters      *string
	Acquisitions      *string
	Status            *string
	Fund              *string

	Logo *assets.FileUpload
}

// PortfolioService defines the use cases for portfolio company records.
type PortfolioService interface {
	Create(ctx context.Context, in CreatePortfolioInput) (*model.Portfolio, error)
	List(ctx context.Context) ([]model.Portfolio, error)
	Get(ctx context.Context, id string) (*model.Portfolio, error)
	Update(ctx context.Context, id string, in UpdatePortfolioInput) (*model.Portfolio, error)
	Delete(ctx context.Context, id string) error
}

type portfolioService struct {
	assets assets.Client
	repo   repository.PortfolioRepository
	logger *zap.Logger
}

// NewPortfolioService constructs a PortfolioService.
func NewPortfolioService(ac assets.Client, repo repository.PortfolioRepository, logger *zap.Logger) PortfolioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &portfolioService{assets: ac, repo: repo, logger: logger}
}

func (s *portfolioService) Create(ctx context.Context, in CreatePortfolioInput) (*model.Portfolio, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Description = strings.TrimSpace(in.Description)
	in.Industry = strings.TrimSpace(in.Industry)
	in.Headquarters = strings.TrimSpace(in.Headquarters)
	in.Status = strings.TrimSpace(in.Status)
	in.Fund = strings.TrimSpace(in.Fund)

	if fields := missingFields(in); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields, Message: portfolioRequiredMsg}
	}

	invested, err := parseDate("initialInvestment", in.InitialInvestment)
	if err != nil {
		return nil, err
	}
	acquisitions, err := parseAcquisitions(in.Acquisitions)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Portfolio{
		ID:                uuid.New().String(),
		CompanyName:       in.CompanyName,
		Description:       in.Description,
		Industry:          in.Industry,
		InitialInvestment: invested,
		Headquarters:      in.Headquarters,
		Acquisitions:      acquisitions,
		Status:            in.Status,
		Fund:              in.Fund,
		UploadDate:        now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var uploaded assets.Asset
	if in.Logo != nil {
		uploaded, err = s.assets.Upload(ctx, *in.Logo)
		if err != nil {
			return nil, err
		}
		p.LogoURL = &uploaded.URL
		p.LogoPublicID = &uploaded.PublicID
	}

	stored, err := s.repo.Create(ctx, p)
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

func (s *portfolioService) List(ctx context.Context) ([]model.Portfolio, error) {
	return s.repo.ListAll(ctx)
}

func (s *portfolioService) Get(ctx context.Context, id string) (*model.Portfolio, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *portfolioService) Update(ctx context.Context, id string, in UpdatePortfolioInput) (*model.Portfolio, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyRequired(&p.CompanyName, in.CompanyName)
	applyRequired(&p.Description, in.Description)
	applyRequired(&p.Industry, in.Industry)
	applyRequired(&p.Headquarters, in.Headquarters)
	applyRequired(&p.Status, in.Status)
	applyRequired(&p.Fund, in.Fund)

	if in.InitialInvestment != nil && *in.InitialInvestment != "" {
		invested, err := parseDate("initialInvestment", *in.InitialInvestment)
		if err != nil {
			return nil, err
		}
		p.InitialInvestment = invested
	}
	if in.Acquisitions != nil {
		acquisitions, err := parseAcquisitions(*in.Acquisitions)
		if err != nil {
			return nil, err
		}
		p.Acquisitions = acquisitions
	}

	if in.Logo != nil {
		if p.HasLogo() {
			s.assets.Destroy(ctx, *p.LogoPublicID)
		}
		asset, err := s.assets.Upload(ctx, *in.Logo)
		if err != nil {
			return nil, err
		}
		p.LogoURL = &asset.URL
		p.LogoPublicID = &asset.PublicID
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *portfolioService) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if p.HasLogo() {
		s.assets.Destroy(ctx, *p.LogoPublicID)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// applyRequired replaces a required field only when the caller supplied a
// non-empty value; required fields cannot be cleared.
func applyRequired(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

// parseAcquisitions rejects non-numeric input instead of storing a junk
// value; there is no integer NaN to fall back on.
func parseAcquisitions(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, &ValidationError{
			Fields:  []string{"acquisitions"},
			Message: "acquisitions must be a non-negative integer",
		}
	}
	return n, nil
}
