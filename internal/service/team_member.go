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

// CreateTeamMemberInput carries the multipart fields of a team member
// create request. The image is mandatory for team members.
type CreateTeamMemberInput struct {
	Name        string `form:"name" validate:"required"`
	Role        string `form:"role"`
	Position    string `form:"position"`
	Team        string `form:"team"`
	Information string `form:"information"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`

	Image *assets.FileUpload `form:"image" validate:"required"`
}

// UpdateTeamMemberInput carries a partial update. A nil field means "leave
// unchanged"; a pointer to an empty string clears the field. Name cannot be
// cleared, only replaced.
type UpdateTeamMemberInput struct {
	Name        *string
	Role        *string
	Position    *string
	Team        *string
	Information *string
	Email       *string
	Phone       *string

	Image *assets.FileUpload
}

// TeamMemberService defines the use cases for team member records.
type TeamMemberService interface {
	Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	Get(ctx context.Context, id string) (*model.TeamMember, error)
	Update(ctx context.Context, id string, in UpdateTeamMemberInput) (*model.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type teamMemberService struct {
	assets assets.Client
	repo   repository.TeamMemberRepository
	logger *zap.Logger
}

// NewTeamMemberService constructs a TeamMemberService.
func NewTeamMemberService(ac assets.Client, repo repository.TeamMemberRepository, logger *zap.Logger) TeamMemberService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &teamMemberService{assets: ac, repo: repo, logger: logger}
}

func (s *teamMemberService) Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error) {
	in.Name = strings.TrimSpace(in.Name)
	if fields := missingFields(in); len(fields) > 0 {
		msg := "name is required"
		for _, f := range fields {
			if f == "image" {
				msg = "team member image is required"
				break
			}
		}
		return nil, &ValidationError{Fields: fields, Message: msg}
	}

	asset, err := s.assets.Upload(ctx, *in.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &model.TeamMember{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ImageURL:      asset.URL,
		ImagePublicID: asset.PublicID,
		Role:          strings.TrimSpace(in.Role),
		Position:      strings.TrimSpace(in.Position),
		Team:          strings.TrimSpace(in.Team),
		Information:   strings.TrimSpace(in.Information),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		UploadDate:    now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	stored, err := s.repo.Create(ctx, m)
	if err != nil {
		// Compensate so the fresh upload is not left orphaned.
		if res := s.assets.Destroy(ctx, asset.PublicID); !res.OK() {
			s.logger.Warn("orphaned asset after failed create",
				zap.String("public_id", asset.PublicID))
		}
		return nil, err
	}
	return stored, nil
}

func (s *teamMemberService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.ListAll(ctx)
}

func (s *teamMemberService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *teamMemberService) Update(ctx context.Context, id string, in UpdateTeamMemberInput) (*model.TeamMember, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		m.Name = strings.TrimSpace(*in.Name)
	}
	applyString(&m.Role, in.Role)
	applyString(&m.Position, in.Position)
	applyString(&m.Team, in.Team)
	applyString(&m.Information, in.Information)
	applyString(&m.Email, in.Email)
	applyString(&m.Phone, in.Phone)

	if in.Image != nil {
		// Old asset first, then the new upload; cleanup failure never blocks.
		s.assets.Destroy(ctx, m.ImagePublicID)
		asset, err := s.assets.Upload(ctx, *in.Image)
		if err != nil {
			return nil, err
		}
		m.ImageURL = asset.URL
		m.ImagePublicID = asset.PublicID
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *teamMemberService) Delete(ctx context.Context, id string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort: record deletion proceeds whether or not this succeeds.
	s.assets.Destroy(ctx, m.ImagePublicID)

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

// applyString implements the partial-update rule for optional string
// fields: nil keeps the current value, an empty string clears it.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
