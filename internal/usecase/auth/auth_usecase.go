package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/clinicmatch-backend/internal/domain"
	"github.com/gdugdh24/clinicmatch-backend/internal/repository"
	"github.com/gdugdh24/clinicmatch-backend/internal/usecase/profile"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	sessionTTL  time.Duration
	logger      *zap.Logger
}

func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// RegisterRequest represents a new account
type RegisterRequest struct {
	Email    string      `json:"email" binding:"required,email,max=254"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Role     domain.Role `json:"role" binding:"required,oneof=clinic worker"`
	Name     string      `json:"name" binding:"required,max=100"`
}

// LoginRequest represents email/password credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *domain.Profile `json:"profile"`
	IsNew     bool            `json:"is_new"`
}

// Register creates the profile and opens a session for it. Repeating a
// registration whose session step failed is safe: when the email already
// belongs to a profile with the same role and password, a session is opened
// for that profile and IsNew is false.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return nil, domain.ValidationErrors{"password": "must be at least 8"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := &domain.Profile{
		Role:         req.Role,
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := profile.Validate(p); err != nil {
		return nil, err
	}

	if err := uc.profileRepo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return uc.resumeRegistration(ctx, req, err)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	token, expiresAt, err := uc.createSession(ctx, p)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("profile registered", zap.String("profile_id", p.ID), zap.String("role", string(p.Role)))
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: p, IsNew: true}, nil
}

// resumeRegistration reports taken unless req repeats the existing
// account's role and password.
func (uc *AuthUseCase) resumeRegistration(ctx context.Context, req *RegisterRequest, taken error) (*AuthResponse, error) {
	p, err := uc.profileRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, taken
		}
		return nil, err
	}
	if p.Role != req.Role {
		return nil, taken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, taken
	}

	token, expiresAt, err := uc.createSession(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("registration resumed", zap.String("profile_id", p.ID))
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: p}, nil
}

// Login checks credentials and opens a session
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	p, err := uc.profileRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, p)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, Profile: p}, nil
}

// createSession creates a new session and returns JWT token
func (uc *AuthUseCase) createSession(ctx context.Context, p *domain.Profile) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(uc.sessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"profile_id": p.ID,
		"role":       string(p.Role),
		"jti":        uuid.NewString(),
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	session := &domain.Session{
		ProfileID: p.ID,
		Role:      p.Role,
		ExpiresAt: expiresAt,
	}
	if err := uc.sessionRepo.Create(ctx, hashToken(tokenString), session, uc.sessionTTL); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Resolve verifies the bearer token and returns the live session behind it
func (uc *AuthUseCase) Resolve(ctx context.Context, tokenString string) (*domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return nil, domain.ErrInvalidToken
	}

	session, err := uc.sessionRepo.GetByToken(ctx, hashToken(tokenString))
	if err != nil {
		return nil, err
	}
	if session.ProfileID != profileID {
		return nil, domain.ErrInvalidToken
	}
	if session.IsExpired() {
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// Logout deletes the session behind the token
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	return uc.sessionRepo.DeleteByToken(ctx, hashToken(tokenString))
}

// hashToken creates SHA256 hash of token for storage
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
