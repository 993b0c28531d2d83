package suggest

import (
	"fmt"
	"strings"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
)

func templateBio(p *domain.Profile, keywords []string) string {
	kw := strings.Join(keywords, ", ")
	position := deref(p.PositionValue())
	location := deref(p.Location())

	if p.Role == domain.RoleClinic {
		s := fmt.Sprintf("%s is looking for a %s", p.Name, orDefault(position, "team member"))
		if location != "" {
			s += " in " + location
		}
		return truncate(s+". We value "+kw+".", 500)
	}

	s := fmt.Sprintf("%s with a focus on %s", orDefault(position, "Medical professional"), kw)
	if p.ExperienceYears != nil && *p.ExperienceYears > 0 {
		s += fmt.Sprintf(" and %d years of experience", *p.ExperienceYears)
	}
	if location != "" {
		s += ", based in " + location
	}
	return truncate(s+".", 500)
}

func templateScreening(position string) []string {
	position = orDefault(position, "this role")
	return []string{
		fmt.Sprintf("How many years have you worked as %s?", position),
		"Which days and hours are you available?",
		"When could you start?",
		"What are your salary expectations?",
		"Tell us about a challenging situation with a patient and how you handled it.",
	}
}

func templateIcebreakers(p, other *domain.Profile) []string {
	if p.Role == domain.RoleClinic {
		return []string{
			fmt.Sprintf("Hi %s, thanks for the match! Would you like to hear more about the position?", other.Name),
			"When would be a good time for a short call?",
			"What are you looking for in your next workplace?",
		}
	}
	return []string{
		fmt.Sprintf("Hi %s, glad we matched! I'd love to learn more about the role.", other.Name),
		"What does a typical day look like at your clinic?",
		"Which shifts are you hoping to fill first?",
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
