package domain

import "time"

type Role string

const (
	RoleClinic Role = "clinic"
	RoleWorker Role = "worker"
)

func (r Role) Valid() bool {
	return r == RoleClinic || r == RoleWorker
}

// Opposite returns the role a profile of role r is matched against.
func (r Role) Opposite() Role {
	if r == RoleClinic {
		return RoleWorker
	}
	return RoleClinic
}

type JobType string

const (
	JobTypeDaily     JobType = "daily"
	JobTypeTemporary JobType = "temporary"
	JobTypePermanent JobType = "permanent"
)

// Weekdays lists the accepted availability day tokens in week order.
var Weekdays = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

type Availability struct {
	Days      []string   `json:"days" validate:"omitempty,max=7,unique,dive,oneof=sun mon tue wed thu fri sat"`
	Hours     *string    `json:"hours" validate:"omitempty,max=100"`
	StartDate *time.Time `json:"start_date"`
}

type SalaryRange struct {
	Min *int `json:"min" validate:"omitempty,min=0"`
	Max *int `json:"max" validate:"omitempty,min=0"`
}

// Profile is the canonical shape of a clinic or worker. Optional fields are
// pointers so that "never entered" stays distinct from a zero value.
type Profile struct {
	ID               string       `json:"id"`
	Role             Role         `json:"role" validate:"required,oneof=clinic worker"`
	Email            string       `json:"email" validate:"required,email,max=254"`
	PasswordHash     string       `json:"-"`
	Name             string       `json:"name" validate:"required,max=100"`
	Position         *string      `json:"position" validate:"omitempty,max=100"`
	RequiredPosition *string      `json:"required_position" validate:"omitempty,max=100"`
	City             *string      `json:"city" validate:"omitempty,max=100"`
	PreferredArea    *string      `json:"preferred_area" validate:"omitempty,max=100"`
	RadiusKm         *int         `json:"radius_km" validate:"omitempty,min=0,max=500"`
	Availability     Availability `json:"availability"`
	Salary           SalaryRange  `json:"salary_range"`
	JobType          *JobType     `json:"job_type" validate:"omitempty,oneof=daily temporary permanent"`
	ExperienceYears  *int         `json:"experience_years" validate:"omitempty,min=0,max=70"`
	Description      *string      `json:"description" validate:"omitempty,max=500"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// PositionValue returns the role-appropriate position: the worker's own
// profession or the position a clinic is hiring for.
func (p *Profile) PositionValue() *string {
	if p.Role == RoleClinic {
		return p.RequiredPosition
	}
	return p.Position
}

// Location returns the role-appropriate location.
func (p *Profile) Location() *string {
	if p.Role == RoleClinic {
		return p.City
	}
	return p.PreferredArea
}

// ProfileSummary is the card-sized view of a profile shown to other parties.
type ProfileSummary struct {
	ID              string       `json:"id"`
	Role            Role         `json:"role"`
	Name            string       `json:"name"`
	Position        *string      `json:"position"`
	Location        *string      `json:"location"`
	Availability    Availability `json:"availability"`
	Salary          SalaryRange  `json:"salary_range"`
	ExperienceYears *int         `json:"experience_years"`
	JobType         *JobType     `json:"job_type"`
	RadiusKm        *int         `json:"radius_km"`
	Description     *string      `json:"description"`
}

func (p *Profile) Summary() ProfileSummary {
	s := ProfileSummary{
		ID:           p.ID,
		Role:         p.Role,
		Name:         p.Name,
		Position:     p.PositionValue(),
		Location:     p.Location(),
		Availability: p.Availability,
		Salary:       p.Salary,
		JobType:      p.JobType,
		RadiusKm:     p.RadiusKm,
		Description:  p.Description,
	}
	if p.Role == RoleWorker {
		s.ExperienceYears = p.ExperienceYears
	}
	return s
}
