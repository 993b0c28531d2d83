package domain

import "time"

// Match is a confirmed mutual like. The pair is unordered; repositories store
// it normalized with ProfileAID < ProfileBID.
type Match struct {
	ID         string    `json:"id" db:"id"`
	ProfileAID string    `json:"profile_a_id" db:"profile_a_id"`
	ProfileBID string    `json:"profile_b_id" db:"profile_b_id"`
	IsClosed   bool      `json:"is_closed" db:"is_closed"`
	ClosedBy   *string   `json:"closed_by" db:"closed_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (m *Match) HasProfile(profileID string) bool {
	return m.ProfileAID == profileID || m.ProfileBID == profileID
}

func (m *Match) OtherProfileID(profileID string) (string, bool) {
	if m.ProfileAID == profileID {
		return m.ProfileBID, true
	}
	if m.ProfileBID == profileID {
		return m.ProfileAID, true
	}
	return "", false
}

// NormalizePair canonicalizes two profile ids and orders them the way
// matches are stored. Canonical UUID strings sort in the same order as the
// UUID values, which is what the database compares.
func NormalizePair(a, b string) (string, string) {
	a, b = CanonicalID(a), CanonicalID(b)
	if a > b {
		return b, a
	}
	return a, b
}

// MatchWithProfile is a match as seen by one of its parties.
type MatchWithProfile struct {
	*Match
	OtherProfile *ProfileSummary `json:"other_profile"`
}
