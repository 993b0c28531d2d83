package profile

import (
	"testing"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEvaluate_NilProfile(t *testing.T) {
	c := Evaluate(nil)

	assert.False(t, c.IsComplete)
	assert.Equal(t, 0, c.Percentage)
	assert.Equal(t, []string{FieldName, FieldRole}, c.MissingRequiredFields)
	assert.Empty(t, c.FilledFields)
	assert.Equal(t, 13, c.TotalFields)
}

func TestEvaluate_RequiredFieldsInDeclaredOrder(t *testing.T) {
	c := Evaluate(&domain.Profile{Role: domain.RoleWorker})
	assert.Equal(t, []string{FieldName, FieldPosition, FieldPreferredArea}, c.MissingRequiredFields)

	c = Evaluate(&domain.Profile{Role: domain.RoleClinic})
	assert.Equal(t, []string{FieldName, FieldRequiredPosition, FieldCity}, c.MissingRequiredFields)
}

func TestEvaluate_RoleExactRequirement(t *testing.T) {
	// a worker with only the clinic-side position is still missing its own
	w := &domain.Profile{
		Role:             domain.RoleWorker,
		Name:             "Anna",
		RequiredPosition: ptr("Nurse"),
		PreferredArea:    ptr("North"),
	}
	c := Evaluate(w)
	assert.False(t, c.IsComplete)
	assert.Equal(t, []string{FieldPosition}, c.MissingRequiredFields)
}

func TestEvaluate_WorkerMissingPreferredArea(t *testing.T) {
	w := &domain.Profile{
		Role:     domain.RoleWorker,
		Name:     "Anna",
		Position: ptr("Dental hygienist"),
		City:     ptr("Lyon"),
	}
	c := Evaluate(w)
	assert.False(t, c.IsComplete)
	assert.Contains(t, c.MissingRequiredFields, FieldPreferredArea)
}

func TestEvaluate_ClinicWithoutCity(t *testing.T) {
	clinic := &domain.Profile{
		Role:             domain.RoleClinic,
		Name:             "Smile Clinic",
		RequiredPosition: ptr("Dental assistant"),
	}
	c := Evaluate(clinic)
	assert.False(t, c.IsComplete)
	assert.Less(t, c.Percentage, 100)
	assert.Equal(t, []string{FieldCity}, c.MissingRequiredFields)
}

func TestEvaluate_Percentage(t *testing.T) {
	clinic := &domain.Profile{
		Role:             domain.RoleClinic,
		Name:             "Smile Clinic",
		RequiredPosition: ptr("Dental assistant"),
		City:             ptr("Lyon"),
	}
	c := Evaluate(clinic)
	require.True(t, c.IsComplete)
	assert.Equal(t, 11, c.TotalFields)
	// 3 of 11
	assert.Equal(t, 27, c.Percentage)
	assert.Equal(t, []string{FieldName, FieldRequiredPosition, FieldCity}, c.FilledFields)

	worker := &domain.Profile{
		Role:          domain.RoleWorker,
		Name:          "Anna",
		Position:      ptr("Optician"),
		PreferredArea: ptr("South"),
	}
	c = Evaluate(worker)
	require.True(t, c.IsComplete)
	assert.Equal(t, 12, c.TotalFields)
	// 3 of 12
	assert.Equal(t, 25, c.Percentage)
}

func TestEvaluate_FullProfileScoresHundred(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	jt := domain.JobTypePermanent
	worker := &domain.Profile{
		Role:          domain.RoleWorker,
		Name:          "Anna",
		Position:      ptr("Optician"),
		PreferredArea: ptr("South"),
		Description:   ptr("Ten years in retail optics"),
		City:          ptr("Lyon"),
		Availability: domain.Availability{
			Days:      []string{"mon", "tue"},
			Hours:     ptr("9-17"),
			StartDate: &start,
		},
		Salary:          domain.SalaryRange{Min: ptr(100), Max: ptr(200)},
		JobType:         &jt,
		ExperienceYears: ptr(10),
	}
	c := Evaluate(worker)
	assert.True(t, c.IsComplete)
	assert.Equal(t, 100, c.Percentage)
	assert.Len(t, c.FilledFields, 12)
}

func TestEvaluate_ExperienceZeroCountsAsFilled(t *testing.T) {
	base := domain.Profile{
		Role:          domain.RoleWorker,
		Name:          "Anna",
		Position:      ptr("Optician"),
		PreferredArea: ptr("South"),
	}

	unset := base
	withZero := base
	withZero.ExperienceYears = ptr(0)

	assert.NotContains(t, Evaluate(&unset).FilledFields, FieldExperienceYears)
	assert.Contains(t, Evaluate(&withZero).FilledFields, FieldExperienceYears)
	assert.Greater(t, Evaluate(&withZero).Percentage, Evaluate(&unset).Percentage)
}

func TestEvaluate_ClinicIgnoresExperienceAndPosition(t *testing.T) {
	clinic := domain.Profile{
		Role:             domain.RoleClinic,
		Name:             "Smile Clinic",
		RequiredPosition: ptr("Dental assistant"),
		City:             ptr("Lyon"),
	}
	with := clinic
	with.ExperienceYears = ptr(5)
	with.Position = ptr("Owner")

	a, b := Evaluate(&clinic), Evaluate(&with)
	assert.Equal(t, a.Percentage, b.Percentage)
	assert.Equal(t, a.TotalFields, b.TotalFields)
	assert.NotContains(t, b.FilledFields, FieldExperienceYears)
}

func TestEvaluate_BlankStringsAreMissing(t *testing.T) {
	w := &domain.Profile{
		Role:          domain.RoleWorker,
		Name:          "   ",
		Position:      ptr(""),
		PreferredArea: ptr(" South "),
	}
	c := Evaluate(w)
	assert.Equal(t, []string{FieldName, FieldPosition}, c.MissingRequiredFields)
}

func TestEvaluate_UnknownRole(t *testing.T) {
	c := Evaluate(&domain.Profile{Name: "Someone"})
	assert.False(t, c.IsComplete)
	assert.Equal(t, []string{FieldRole}, c.MissingRequiredFields)
	assert.Equal(t, 13, c.TotalFields)
}

func TestEvaluate_Deterministic(t *testing.T) {
	w := &domain.Profile{Role: domain.RoleWorker, Name: "Anna", City: ptr("Lyon")}
	assert.Equal(t, Evaluate(w), Evaluate(w))
}
