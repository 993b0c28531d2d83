package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ repository.ProfileRepository = (*ProfileRepository)(nil)
	_ repository.SwipeRepository   = (*SwipeRepository)(nil)
	_ repository.MatchRepository   = (*MatchRepository)(nil)
	_ repository.MessageRepository = (*MessageRepository)(nil)
)

type ProfileRepository struct {
	db *gorm.DB
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	rec := newProfileRecord(profile)
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(rec)
	if tx.Error != nil {
		return fmt.Errorf("create profile: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrEmailTaken
	}
	profile.CreatedAt = rec.CreatedAt
	profile.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *ProfileRepository) first(ctx context.Context, cond string, arg any) (*domain.Profile, error) {
	var rec profileRecord
	if err := r.db.WithContext(ctx).First(&rec, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recs []profileRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("get profiles by ids: %w", err)
	}
	return toProfiles(recs), nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	rec := newProfileRecord(profile)
	rec.UpdatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&profileRecord{}).Where("id = ?", profile.ID).
		Select("name", "position", "required_position", "city", "preferred_area", "radius_km",
			"availability_days", "availability_hours", "availability_date", "salary_min", "salary_max",
			"job_type", "experience_years", "description", "updated_at").
		Updates(rec)
	if tx.Error != nil {
		return fmt.Errorf("update profile: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	profile.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *ProfileRepository) ListCandidates(ctx context.Context, viewerID string, role domain.Role, limit, offset int) ([]*domain.Profile, error) {
	var recs []profileRecord
	err := r.db.WithContext(ctx).
		Where("role = ? AND id <> ?", string(role), viewerID).
		Where("NOT EXISTS (SELECT 1 FROM swipes WHERE swipes.from_profile_id = ? AND swipes.to_profile_id = profiles.id)", viewerID).
		Order("created_at DESC").Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return toProfiles(recs), nil
}

func toProfiles(recs []profileRecord) []*domain.Profile {
	profiles := make([]*domain.Profile, 0, len(recs))
	for i := range recs {
		profiles = append(profiles, recs[i].toDomain())
	}
	return profiles
}

type SwipeRepository struct {
	db *gorm.DB
}

func (r *SwipeRepository) Upsert(ctx context.Context, swipe *domain.SwipeDecision) error {
	rec := swipeRecord{
		ID:            uuid.NewString(),
		FromProfileID: swipe.FromProfileID,
		ToProfileID:   swipe.ToProfileID,
		Type:          string(swipe.Type),
		CreatedAt:     time.Now().UTC(),
	}
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_profile_id"}, {Name: "to_profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "created_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("upsert swipe: %w", err)
	}

	// Read back: on conflict the stored row keeps its original id.
	var stored swipeRecord
	if err := db.First(&stored, "from_profile_id = ? AND to_profile_id = ?", swipe.FromProfileID, swipe.ToProfileID).Error; err != nil {
		return fmt.Errorf("upsert swipe: %w", err)
	}
	*swipe = *stored.toDomain()
	return nil
}

func (r *SwipeRepository) GetByProfiles(ctx context.Context, fromProfileID, toProfileID string) (*domain.SwipeDecision, error) {
	var rec swipeRecord
	err := r.db.WithContext(ctx).First(&rec, "from_profile_id = ? AND to_profile_id = ?", fromProfileID, toProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, fmt.Errorf("get swipe: %w", err)
	}
	return rec.toDomain(), nil
}

type MatchRepository struct {
	db *gorm.DB
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	match.ProfileAID, match.ProfileBID = domain.NormalizePair(match.ProfileAID, match.ProfileBID)
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec := matchRecord{
		ID:         match.ID,
		ProfileAID: match.ProfileAID,
		ProfileBID: match.ProfileBID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_a_id"}, {Name: "profile_b_id"}},
		DoNothing: true,
	}).Create(&rec)
	if tx.Error != nil {
		return fmt.Errorf("create match: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrMatchAlreadyExists
	}
	match.IsClosed = false
	match.ClosedBy = nil
	match.CreatedAt = rec.CreatedAt
	match.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *MatchRepository) GetByProfiles(ctx context.Context, profileAID, profileBID string) (*domain.Match, error) {
	profileAID, profileBID = domain.NormalizePair(profileAID, profileBID)
	return r.first(ctx, "profile_a_id = ? AND profile_b_id = ?", profileAID, profileBID)
}

func (r *MatchRepository) first(ctx context.Context, cond string, args ...any) (*domain.Match, error) {
	var rec matchRecord
	if err := r.db.WithContext(ctx).Where(cond, args...).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("get match: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *MatchRepository) ListByProfile(ctx context.Context, profileID string) ([]*domain.Match, error) {
	var recs []matchRecord
	if err := r.db.WithContext(ctx).Where("profile_a_id = ? OR profile_b_id = ?", profileID, profileID).
		Order("created_at DESC").Order("id DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	matches := make([]*domain.Match, 0, len(recs))
	for i := range recs {
		matches = append(matches, recs[i].toDomain())
	}
	return matches, nil
}

func (r *MatchRepository) Close(ctx context.Context, id, closedBy string) (bool, error) {
	db := r.db.WithContext(ctx)
	tx := db.Model(&matchRecord{}).Where("id = ? AND is_closed = ?", id, false).Updates(map[string]any{
		"is_closed":  true,
		"closed_by":  closedBy,
		"updated_at": time.Now().UTC(),
	})
	if tx.Error != nil {
		return false, fmt.Errorf("close match: %w", tx.Error)
	}
	if tx.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := db.Model(&matchRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("close match: %w", err)
	}
	if count == 0 {
		return false, domain.ErrMatchNotFound
	}
	return false, nil
}

type MessageRepository struct {
	db *gorm.DB
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	rec := messageRecord{
		ID:        message.ID,
		MatchID:   message.MatchID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		CreatedAt: time.Now().UTC(),
	}
	// The open check and the insert share one transaction so a concurrent
	// close cannot slip in between.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&matchRecord{}).
			Where("id = ? AND is_closed = ?", message.MatchID, false).
			Count(&open).Error; err != nil {
			return err
		}
		if open == 0 {
			return domain.ErrMatchClosed
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrMatchClosed) {
			return err
		}
		return fmt.Errorf("create message: %w", err)
	}
	message.CreatedAt = rec.CreatedAt
	return nil
}

func (r *MessageRepository) ListByMatch(ctx context.Context, matchID string, limit, offset int) ([]*domain.Message, error) {
	var recs []messageRecord
	query := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("created_at ASC").Order("id ASC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	messages := make([]*domain.Message, 0, len(recs))
	for i := range recs {
		messages = append(messages, recs[i].toDomain())
	}
	return messages, nil
}
