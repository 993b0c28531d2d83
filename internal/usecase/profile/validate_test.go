package profile

import (
	"testing"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *domain.Profile {
	return &domain.Profile{
		Role:  domain.RoleWorker,
		Email: "anna@example.com",
		Name:  "Anna",
	}
}

func TestValidate_OK(t *testing.T) {
	p := validProfile()
	p.Salary = domain.SalaryRange{Min: ptr(100), Max: ptr(100)}
	p.Availability.Days = []string{"mon", "fri"}
	assert.NoError(t, Validate(p))
}

func TestValidate_SalaryRange(t *testing.T) {
	p := validProfile()
	p.Salary = domain.SalaryRange{Min: ptr(300), Max: ptr(200)}

	err := Validate(p)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "salary_range.max")
}

func TestValidate_OpenSalaryBound(t *testing.T) {
	p := validProfile()
	p.Salary = domain.SalaryRange{Min: ptr(300)}
	assert.NoError(t, Validate(p))
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Profile)
		key    string
	}{
		{"missing name", func(p *domain.Profile) { p.Name = "" }, "name"},
		{"bad email", func(p *domain.Profile) { p.Email = "nope" }, "email"},
		{"bad role", func(p *domain.Profile) { p.Role = "admin" }, "role"},
		{"bad weekday", func(p *domain.Profile) { p.Availability.Days = []string{"funday"} }, "availability.days[0]"},
		{"negative experience", func(p *domain.Profile) { p.ExperienceYears = ptr(-1) }, "experience_years"},
		{"bad job type", func(p *domain.Profile) { jt := domain.JobType("forever"); p.JobType = &jt }, "job_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			var verrs domain.ValidationErrors
			require.ErrorAs(t, Validate(p), &verrs)
			assert.Contains(t, verrs, tt.key)
		})
	}
}
