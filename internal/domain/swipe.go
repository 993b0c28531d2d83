package domain

import "time"

type SwipeType string

const (
	SwipeLike SwipeType = "LIKE"
	SwipePass SwipeType = "PASS"
)

func (t SwipeType) Valid() bool {
	return t == SwipeLike || t == SwipePass
}

// SwipeDecision is one profile's latest decision about another. There is at
// most one per ordered (from, to) pair; a newer decision replaces the older.
type SwipeDecision struct {
	ID            string    `json:"id" db:"id"`
	FromProfileID string    `json:"from_profile_id" db:"from_profile_id"`
	ToProfileID   string    `json:"to_profile_id" db:"to_profile_id"`
	Type          SwipeType `json:"type" db:"type"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

func (s *SwipeDecision) IsLike() bool {
	return s.Type == SwipeLike
}
