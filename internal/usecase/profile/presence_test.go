package profile

import (
	"testing"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsFilled(t *testing.T) {
	zero := 0
	blank := "   "
	text := "Dentist"
	jt := domain.JobTypeDaily
	emptyJT := domain.JobType("")
	var nilStr *string
	var nilSlice []string
	now := time.Now()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"typed nil pointer", nilStr, false},
		{"empty string", "", false},
		{"whitespace string", " \t\n", false},
		{"string", "Paris", true},
		{"pointer to blank string", &blank, false},
		{"pointer to string", &text, true},
		{"nil slice", nilSlice, false},
		{"empty slice", []string{}, false},
		{"slice", []string{"mon"}, true},
		{"empty map", map[string]int{}, false},
		{"map", map[string]int{"a": 1}, true},
		{"zero int", 0, true},
		{"pointer to zero int", &zero, true},
		{"negative float", -1.5, true},
		{"false", false, true},
		{"true", true, true},
		{"zero time", time.Time{}, false},
		{"time", now, true},
		{"pointer to time", &now, true},
		{"named string", jt, true},
		{"empty named string", &emptyJT, false},
		{"struct", struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFilled(tt.value))
		})
	}
}
