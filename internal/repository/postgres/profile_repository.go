package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const profileColumns = `id, role, email, password_hash, name, position, required_position,
	city, preferred_area, radius_km, availability_days, availability_hours, availability_date,
	salary_min, salary_max, job_type, experience_years, description, created_at, updated_at`

type profileRow struct {
	ID                string         `db:"id"`
	Role              string         `db:"role"`
	Email             string         `db:"email"`
	PasswordHash      string         `db:"password_hash"`
	Name              string         `db:"name"`
	Position          *string        `db:"position"`
	RequiredPosition  *string        `db:"required_position"`
	City              *string        `db:"city"`
	PreferredArea     *string        `db:"preferred_area"`
	RadiusKm          *int           `db:"radius_km"`
	AvailabilityDays  pq.StringArray `db:"availability_days"`
	AvailabilityHours *string        `db:"availability_hours"`
	AvailabilityDate  *time.Time     `db:"availability_date"`
	SalaryMin         *int           `db:"salary_min"`
	SalaryMax         *int           `db:"salary_max"`
	JobType           *string        `db:"job_type"`
	ExperienceYears   *int           `db:"experience_years"`
	Description       *string        `db:"description"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r *profileRow) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:               r.ID,
		Role:             domain.Role(r.Role),
		Email:            r.Email,
		PasswordHash:     r.PasswordHash,
		Name:             r.Name,
		Position:         r.Position,
		RequiredPosition: r.RequiredPosition,
		City:             r.City,
		PreferredArea:    r.PreferredArea,
		RadiusKm:         r.RadiusKm,
		Availability: domain.Availability{
			Days:      []string(r.AvailabilityDays),
			Hours:     r.AvailabilityHours,
			StartDate: r.AvailabilityDate,
		},
		Salary:          domain.SalaryRange{Min: r.SalaryMin, Max: r.SalaryMax},
		ExperienceYears: r.ExperienceYears,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.JobType != nil {
		jt := domain.JobType(*r.JobType)
		p.JobType = &jt
	}
	return p
}

func jobTypeArg(jt *domain.JobType) *string {
	if jt == nil {
		return nil
	}
	s := string(*jt)
	return &s
}

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *sqlx.DB, logger *zap.Logger) repository.ProfileRepository {
	return &profileRepository{db: db, logger: logger}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (
			id, role, email, password_hash, name, position, required_position,
			city, preferred_area, radius_km, availability_days, availability_hours, availability_date,
			salary_min, salary_max, job_type, experience_years, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, string(profile.Role), profile.Email, profile.PasswordHash, profile.Name,
		profile.Position, profile.RequiredPosition, profile.City, profile.PreferredArea, profile.RadiusKm,
		pq.Array(profile.Availability.Days), profile.Availability.Hours, profile.Availability.StartDate,
		profile.Salary.Min, profile.Salary.Max, jobTypeArg(profile.JobType),
		profile.ExperienceYears, profile.Description,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "profiles_email_key") {
			return domain.ErrEmailTaken
		}
		return wrapErr("create profile", err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	id, ok := canonicalUUID(id)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return r.getOne(ctx, "get profile", `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getOne(ctx, "get profile by email", `SELECT `+profileColumns+` FROM profiles WHERE lower(email) = lower($1)`, email)
}

func (r *profileRepository) getOne(ctx context.Context, op, query string, arg interface{}) (*domain.Profile, error) {
	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, wrapErr(op, err)
	}
	return row.toDomain(), nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if canonical, ok := canonicalUUID(id); ok {
			valid = append(valid, canonical)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	var rows []profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(valid)); err != nil {
		return nil, wrapErr("get profiles by ids", err)
	}
	return toProfiles(rows), nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, position = $2, required_position = $3, city = $4, preferred_area = $5,
		    radius_km = $6, availability_days = $7, availability_hours = $8, availability_date = $9,
		    salary_min = $10, salary_max = $11, job_type = $12, experience_years = $13,
		    description = $14, updated_at = CURRENT_TIMESTAMP
		WHERE id = $15
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.Position, profile.RequiredPosition, profile.City, profile.PreferredArea,
		profile.RadiusKm, pq.Array(profile.Availability.Days), profile.Availability.Hours,
		profile.Availability.StartDate, profile.Salary.Min, profile.Salary.Max,
		jobTypeArg(profile.JobType), profile.ExperienceYears, profile.Description,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return wrapErr("update profile", err)
	}
	return nil
}

func (r *profileRepository) ListCandidates(ctx context.Context, viewerID string, role domain.Role, limit, offset int) ([]*domain.Profile, error) {
	viewerID, ok := canonicalUUID(viewerID)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	var rows []profileRow
	query := `
		SELECT ` + profileColumns + ` FROM profiles p
		WHERE p.role = $1 AND p.id <> $2
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s WHERE s.from_profile_id = $2 AND s.to_profile_id = p.id
		  )
		ORDER BY p.created_at DESC, p.id ASC
		LIMIT $3 OFFSET $4
	`
	if err := r.db.SelectContext(ctx, &rows, query, string(role), viewerID, limit, offset); err != nil {
		return nil, wrapErr("list candidates", err)
	}
	r.logger.Debug("listed candidates",
		zap.String("role", string(role)),
		zap.Int("offset", offset),
		zap.Int("count", len(rows)),
	)
	return toProfiles(rows), nil
}

func toProfiles(rows []profileRow) []*domain.Profile {
	profiles := make([]*domain.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toDomain())
	}
	return profiles
}
