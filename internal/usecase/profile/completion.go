package profile

import (
	"math"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

// Field names used in completion results. They match the JSON keys of the
// profile API.
const (
	FieldName              = "name"
	FieldRole              = "role"
	FieldPosition          = "position"
	FieldRequiredPosition  = "required_position"
	FieldDescription       = "description"
	FieldCity              = "city"
	FieldPreferredArea     = "preferred_area"
	FieldAvailabilityDays  = "availability_days"
	FieldAvailabilityHours = "availability_hours"
	FieldAvailabilityDate  = "availability_date"
	FieldSalaryMin         = "salary_min"
	FieldSalaryMax         = "salary_max"
	FieldJobType           = "job_type"
	FieldExperienceYears   = "experience_years"
)

// scoredFields is the full universe the percentage is computed over before
// role-specific exclusions.
var scoredFields = []string{
	FieldName,
	FieldPosition,
	FieldRequiredPosition,
	FieldDescription,
	FieldCity,
	FieldPreferredArea,
	FieldAvailabilityDays,
	FieldAvailabilityHours,
	FieldAvailabilityDate,
	FieldSalaryMin,
	FieldSalaryMax,
	FieldJobType,
	FieldExperienceYears,
}

// Completion is the result of evaluating a profile.
type Completion struct {
	IsComplete            bool     `json:"is_complete"`
	Percentage            int      `json:"percentage"`
	MissingRequiredFields []string `json:"missing_required_fields"`
	FilledFields          []string `json:"filled_fields"`
	TotalFields           int      `json:"total_fields"`
}

// RequiredFields returns the fields a profile of the given role must fill,
// in the order they are reported as missing.
func RequiredFields(role domain.Role) []string {
	switch role {
	case domain.RoleWorker:
		return []string{FieldName, FieldPosition, FieldPreferredArea}
	case domain.RoleClinic:
		return []string{FieldName, FieldRequiredPosition, FieldCity}
	default:
		return []string{FieldName, FieldRole}
	}
}

// RelevantFields returns the scored fields that apply to role.
func RelevantFields(role domain.Role) []string {
	var excluded map[string]bool
	switch role {
	case domain.RoleClinic:
		excluded = map[string]bool{FieldPosition: true, FieldExperienceYears: true}
	case domain.RoleWorker:
		excluded = map[string]bool{FieldRequiredPosition: true}
	}

	fields := make([]string, 0, len(scoredFields))
	for _, f := range scoredFields {
		if !excluded[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

// Evaluate computes completeness of p. A nil profile is reported as missing
// its name and role with a zero score.
func Evaluate(p *domain.Profile) Completion {
	if p == nil {
		return Completion{
			MissingRequiredFields: []string{FieldName, FieldRole},
			FilledFields:          []string{},
			TotalFields:           len(scoredFields),
		}
	}

	missing := []string{}
	for _, f := range RequiredFields(p.Role) {
		if f == FieldRole {
			// only reached for an unknown role
			missing = append(missing, f)
			continue
		}
		if !IsFilled(fieldValue(p, f)) {
			missing = append(missing, f)
		}
	}

	relevant := RelevantFields(p.Role)
	filled := []string{}
	for _, f := range relevant {
		if IsFilled(fieldValue(p, f)) {
			filled = append(filled, f)
		}
	}

	return Completion{
		IsComplete:            len(missing) == 0,
		Percentage:            int(math.Round(100 * float64(len(filled)) / float64(len(relevant)))),
		MissingRequiredFields: missing,
		FilledFields:          filled,
		TotalFields:           len(relevant),
	}
}

// IsComplete is shorthand for Evaluate(p).IsComplete.
func IsComplete(p *domain.Profile) bool {
	return Evaluate(p).IsComplete
}

func fieldValue(p *domain.Profile, field string) any {
	switch field {
	case FieldName:
		return p.Name
	case FieldPosition:
		return p.Position
	case FieldRequiredPosition:
		return p.RequiredPosition
	case FieldDescription:
		return p.Description
	case FieldCity:
		return p.City
	case FieldPreferredArea:
		return p.PreferredArea
	case FieldAvailabilityDays:
		return p.Availability.Days
	case FieldAvailabilityHours:
		return p.Availability.Hours
	case FieldAvailabilityDate:
		return p.Availability.StartDate
	case FieldSalaryMin:
		return p.Salary.Min
	case FieldSalaryMax:
		return p.Salary.Max
	case FieldJobType:
		return p.JobType
	case FieldExperienceYears:
		return p.ExperienceYears
	default:
		return nil
	}
}
