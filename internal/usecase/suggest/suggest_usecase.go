package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Kind string

const (
	KindBio                Kind = "bio"
	KindScreeningQuestions Kind = "screening_questions"
	KindIcebreakers        Kind = "icebreakers"
)

const (
	SourceAI       = "ai"
	SourceTemplate = "template"
)

// Generator produces free text from a prompt. The Gemini client satisfies it.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateList(ctx context.Context, prompt string) ([]string, error)
}

type SuggestUseCase struct {
	profileRepo repository.ProfileRepository
	matchRepo   repository.MatchRepository
	generator   Generator
	logger      *zap.Logger
}

// NewSuggestUseCase builds the use case. generator may be nil, in which case
// every suggestion comes from templates.
func NewSuggestUseCase(
	profileRepo repository.ProfileRepository,
	matchRepo repository.MatchRepository,
	generator Generator,
	logger *zap.Logger,
) *SuggestUseCase {
	return &SuggestUseCase{
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
		generator:   generator,
		logger:      logger,
	}
}

// SuggestionRequest represents a request for generated text
type SuggestionRequest struct {
	Kind     Kind     `json:"kind" binding:"required,oneof=bio screening_questions icebreakers"`
	Keywords []string `json:"keywords" binding:"omitempty,max=20,dive,max=50"`
	MatchID  string   `json:"match_id"`
}

// SuggestionResponse is the generated text
type SuggestionResponse struct {
	Kind   Kind     `json:"kind"`
	Items  []string `json:"items"`
	Source string   `json:"source"`
}

// Generate produces suggestions of req.Kind for the caller's profile.
func (uc *SuggestUseCase) Generate(ctx context.Context, profileID string, req *SuggestionRequest) (*SuggestionResponse, error) {
	if req.Kind == KindIcebreakers {
		if req.MatchID == "" {
			return nil, domain.ValidationErrors{"match_id": "is required for icebreakers"}
		}
		p, other, err := uc.matchPair(ctx, profileID, req.MatchID)
		if err != nil {
			return nil, err
		}
		return uc.icebreakers(ctx, p, other), nil
	}

	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	keywords := cleanKeywords(req.Keywords)

	switch req.Kind {
	case KindBio:
		if len(keywords) == 0 {
			return nil, domain.ValidationErrors{"keywords": "at least one keyword is required"}
		}
		return uc.bio(ctx, p, keywords), nil
	case KindScreeningQuestions:
		return uc.screeningQuestions(ctx, p, keywords), nil
	default:
		return nil, domain.ValidationErrors{"kind": "must be one of: bio screening_questions icebreakers"}
	}
}

// matchPair loads the caller and the match concurrently, then the other
// participant once membership is confirmed.
func (uc *SuggestUseCase) matchPair(ctx context.Context, profileID, matchID string) (*domain.Profile, *domain.Profile, error) {
	var (
		p *domain.Profile
		m *domain.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = uc.profileRepo.GetByID(gctx, profileID)
		return err
	})
	g.Go(func() error {
		var err error
		m, err = uc.matchRepo.GetByID(gctx, domain.CanonicalID(matchID))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	otherID, ok := m.OtherProfileID(p.ID)
	if !ok {
		return nil, nil, domain.ErrNotMatchParticipant
	}
	other, err := uc.profileRepo.GetByID(ctx, otherID)
	if err != nil {
		return nil, nil, err
	}
	return p, other, nil
}

func (uc *SuggestUseCase) bio(ctx context.Context, p *domain.Profile, keywords []string) *SuggestionResponse {
	prompt := fmt.Sprintf(`
		Write a short professional profile description (at most 3 sentences, under 500 characters)
		for a %s on a medical staffing platform.
		Position: %s
		Location: %s
		Keywords: %s
		Output: Just the description text.
	`, roleLabel(p.Role), deref(p.PositionValue()), deref(p.Location()), strings.Join(keywords, ", "))

	if uc.generator != nil {
		text, err := uc.generator.GenerateText(ctx, prompt)
		if err == nil {
			return &SuggestionResponse{Kind: KindBio, Items: []string{truncate(text, 500)}, Source: SourceAI}
		}
		uc.logger.Warn("bio generation failed, using template", zap.Error(err))
	}
	return &SuggestionResponse{Kind: KindBio, Items: []string{templateBio(p, keywords)}, Source: SourceTemplate}
}

func (uc *SuggestUseCase) screeningQuestions(ctx context.Context, p *domain.Profile, keywords []string) *SuggestionResponse {
	position := deref(p.PositionValue())
	prompt := fmt.Sprintf(`
		Generate 5 short screening questions a clinic can ask a candidate.
		Position: %s
		Focus areas: %s
		Output: JSON array of strings.
	`, position, strings.Join(keywords, ", "))

	if uc.generator != nil {
		items, err := uc.generator.GenerateList(ctx, prompt)
		if err == nil && len(items) > 0 {
			return &SuggestionResponse{Kind: KindScreeningQuestions, Items: items, Source: SourceAI}
		}
		uc.logger.Warn("screening question generation failed, using template", zap.Error(err))
	}
	return &SuggestionResponse{Kind: KindScreeningQuestions, Items: templateScreening(position), Source: SourceTemplate}
}

func (uc *SuggestUseCase) icebreakers(ctx context.Context, p, other *domain.Profile) *SuggestionResponse {
	prompt := fmt.Sprintf(`
		Generate 3 friendly opening messages for a chat between a %s and a %s who just matched
		on a medical staffing platform.
		Sender position: %s
		Recipient: %s, %s, %s
		Output: JSON array of strings.
	`, roleLabel(p.Role), roleLabel(other.Role), deref(p.PositionValue()),
		other.Name, deref(other.PositionValue()), deref(other.Location()))

	if uc.generator != nil {
		items, err := uc.generator.GenerateList(ctx, prompt)
		if err == nil && len(items) > 0 {
			return &SuggestionResponse{Kind: KindIcebreakers, Items: items, Source: SourceAI}
		}
		uc.logger.Warn("icebreaker generation failed, using template", zap.Error(err))
	}
	return &SuggestionResponse{Kind: KindIcebreakers, Items: templateIcebreakers(p, other), Source: SourceTemplate}
}

func roleLabel(r domain.Role) string {
	if r == domain.RoleClinic {
		return "clinic"
	}
	return "medical professional"
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
