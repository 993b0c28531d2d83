package sqlite

import (
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"gorm.io/datatypes"
)

type profileRecord struct {
	ID                string `gorm:"primaryKey"`
	Role              string `gorm:"not null;index"`
	Email             string `gorm:"not null;uniqueIndex"`
	PasswordHash      string `gorm:"not null"`
	Name              string `gorm:"not null"`
	Position          *string
	RequiredPosition  *string
	City              *string
	PreferredArea     *string
	RadiusKm          *int
	AvailabilityDays  datatypes.JSONSlice[string]
	AvailabilityHours *string
	AvailabilityDate  *time.Time
	SalaryMin         *int
	SalaryMax         *int
	JobType           *string
	ExperienceYears   *int
	Description       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (profileRecord) TableName() string { return "profiles" }

func newProfileRecord(p *domain.Profile) *profileRecord {
	rec := &profileRecord{
		ID:                p.ID,
		Role:              string(p.Role),
		Email:             p.Email,
		PasswordHash:      p.PasswordHash,
		Name:              p.Name,
		Position:          p.Position,
		RequiredPosition:  p.RequiredPosition,
		City:              p.City,
		PreferredArea:     p.PreferredArea,
		RadiusKm:          p.RadiusKm,
		AvailabilityHours: p.Availability.Hours,
		AvailabilityDate:  p.Availability.StartDate,
		SalaryMin:         p.Salary.Min,
		SalaryMax:         p.Salary.Max,
		ExperienceYears:   p.ExperienceYears,
		Description:       p.Description,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Availability.Days != nil {
		rec.AvailabilityDays = datatypes.JSONSlice[string](p.Availability.Days)
	}
	if p.JobType != nil {
		jt := string(*p.JobType)
		rec.JobType = &jt
	}
	return rec
}

func (r *profileRecord) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:               r.ID,
		Role:             domain.Role(r.Role),
		Email:            r.Email,
		PasswordHash:     r.PasswordHash,
		Name:             r.Name,
		Position:         r.Position,
		RequiredPosition: r.RequiredPosition,
		City:             r.City,
		PreferredArea:    r.PreferredArea,
		RadiusKm:         r.RadiusKm,
		Availability: domain.Availability{
			Hours:     r.AvailabilityHours,
			StartDate: r.AvailabilityDate,
		},
		Salary:          domain.SalaryRange{Min: r.SalaryMin, Max: r.SalaryMax},
		ExperienceYears: r.ExperienceYears,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if len(r.AvailabilityDays) > 0 {
		p.Availability.Days = []string(r.AvailabilityDays)
	}
	if r.JobType != nil {
		jt := domain.JobType(*r.JobType)
		p.JobType = &jt
	}
	return p
}

type swipeRecord struct {
	ID            string    `gorm:"primaryKey"`
	FromProfileID string    `gorm:"not null;uniqueIndex:idx_swipes_pair"`
	ToProfileID   string    `gorm:"not null;uniqueIndex:idx_swipes_pair"`
	Type          string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (swipeRecord) TableName() string { return "swipes" }

func (r *swipeRecord) toDomain() *domain.SwipeDecision {
	return &domain.SwipeDecision{
		ID:            r.ID,
		FromProfileID: r.FromProfileID,
		ToProfileID:   r.ToProfileID,
		Type:          domain.SwipeType(r.Type),
		CreatedAt:     r.CreatedAt,
	}
}

type matchRecord struct {
	ID         string `gorm:"primaryKey"`
	ProfileAID string `gorm:"not null;uniqueIndex:idx_matches_pair"`
	ProfileBID string `gorm:"not null;uniqueIndex:idx_matches_pair"`
	IsClosed   bool   `gorm:"not null"`
	ClosedBy   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (matchRecord) TableName() string { return "matches" }

func (r *matchRecord) toDomain() *domain.Match {
	return &domain.Match{
		ID:         r.ID,
		ProfileAID: r.ProfileAID,
		ProfileBID: r.ProfileBID,
		IsClosed:   r.IsClosed,
		ClosedBy:   r.ClosedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type messageRecord struct {
	ID        string `gorm:"primaryKey"`
	MatchID   string `gorm:"not null;index"`
	SenderID  string `gorm:"not null"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time
}

func (messageRecord) TableName() string { return "messages" }

func (r *messageRecord) toDomain() *domain.Message {
	return &domain.Message{
		ID:        r.ID,
		MatchID:   r.MatchID,
		SenderID:  r.SenderID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
