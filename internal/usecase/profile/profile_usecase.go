package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// UpdateProfileRequest is a partial update. Nil fields are left untouched;
// an empty string clears a text field.
type UpdateProfileRequest struct {
	Role             *domain.Role         `json:"role"`
	Name             *string              `json:"name" binding:"omitempty,max=100"`
	Position         *string              `json:"position" binding:"omitempty,max=100"`
	RequiredPosition *string              `json:"required_position" binding:"omitempty,max=100"`
	City             *string              `json:"city" binding:"omitempty,max=100"`
	PreferredArea    *string              `json:"preferred_area" binding:"omitempty,max=100"`
	RadiusKm         *int                 `json:"radius_km" binding:"omitempty,min=0,max=500"`
	Availability     *domain.Availability `json:"availability"`
	SalaryRange      *domain.SalaryRange  `json:"salary_range"`
	JobType          *domain.JobType      `json:"job_type"`
	ExperienceYears  *int                 `json:"experience_years" binding:"omitempty,min=0,max=70"`
	Description      *string              `json:"description" binding:"omitempty,max=500"`
}

// ProfileWithCompletion is the owner's view of a profile.
type ProfileWithCompletion struct {
	*domain.Profile
	Completion Completion `json:"completion"`
}

// GetMyProfile returns the caller's own profile with its completion state
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, profileID string) (*ProfileWithCompletion, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return &ProfileWithCompletion{Profile: p, Completion: Evaluate(p)}, nil
}

// GetProfileSummary returns the card view of another profile
func (uc *ProfileUseCase) GetProfileSummary(ctx context.Context, profileID string) (*domain.ProfileSummary, error) {
	p, err := uc.profileRepo.GetByID(ctx, domain.CanonicalID(profileID))
	if err != nil {
		return nil, err
	}
	summary := p.Summary()
	return &summary, nil
}

// GetCompletion evaluates the stored profile
func (uc *ProfileUseCase) GetCompletion(ctx context.Context, profileID string) (*Completion, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	c := Evaluate(p)
	return &c, nil
}

// UpdateProfile applies req to the stored profile. The role is fixed at
// registration and cannot be changed here.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, profileID string, req *UpdateProfileRequest) (*ProfileWithCompletion, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil && *req.Role != p.Role {
		return nil, domain.ErrRoleChangeForbidden
	}
	if req.ExperienceYears != nil && p.Role != domain.RoleWorker {
		return nil, domain.ValidationErrors{FieldExperienceYears: "only applies to workers"}
	}

	applyUpdate(p, req)

	if err := Validate(p); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	c := Evaluate(p)
	uc.logger.Info("profile updated",
		zap.String("profile_id", p.ID),
		zap.Int("percentage", c.Percentage),
		zap.Bool("complete", c.IsComplete),
	)
	return &ProfileWithCompletion{Profile: p, Completion: c}, nil
}

func applyUpdate(p *domain.Profile, req *UpdateProfileRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Position != nil {
		p.Position = normalizeText(req.Position)
	}
	if req.RequiredPosition != nil {
		p.RequiredPosition = normalizeText(req.RequiredPosition)
	}
	if req.City != nil {
		p.City = normalizeText(req.City)
	}
	if req.PreferredArea != nil {
		p.PreferredArea = normalizeText(req.PreferredArea)
	}
	if req.RadiusKm != nil {
		p.RadiusKm = req.RadiusKm
	}
	if req.Availability != nil {
		p.Availability = domain.Availability{
			Days:      normalizeDays(req.Availability.Days),
			Hours:     normalizeText(req.Availability.Hours),
			StartDate: req.Availability.StartDate,
		}
	}
	if req.SalaryRange != nil {
		p.Salary = *req.SalaryRange
	}
	if req.JobType != nil {
		if *req.JobType == "" {
			p.JobType = nil
		} else {
			jt := *req.JobType
			p.JobType = &jt
		}
	}
	if req.ExperienceYears != nil {
		p.ExperienceYears = req.ExperienceYears
	}
	if req.Description != nil {
		p.Description = normalizeText(req.Description)
	}
}

// normalizeText trims s and maps blank input to nil.
func normalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizeDays lowercases day tokens and returns them in week order.
func normalizeDays(days []string) []string {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[strings.ToLower(strings.TrimSpace(d))] = true
	}

	out := make([]string, 0, len(seen))
	for _, d := range domain.Weekdays {
		if seen[d] {
			out = append(out, d)
			delete(seen, d)
		}
	}
	// unknown tokens are kept so validation can reject them
	for d := range seen {
		out = append(out, d)
	}
	return out
}
