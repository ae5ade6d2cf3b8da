package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/npapadam/openclaw-dashboard/internal/models"
	"github.com/npapadam/openclaw-dashboard/internal/repositories"
	"github.com/npapadam/openclaw-dashboard/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService issues and verifies dashboard sessions. The dashboard has a
// single human user authenticated by one bcrypt-hashed password; a login
// creates a Redis-backed session referenced by the token's jti claim, so
// logout actually revokes the token instead of waiting for expiry.
type AuthService struct {
	sessionRepo  repositories.SessionRepository
	passwordHash string
	jwtSecret    string
	sessionTTL   time.Duration
}

type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
}

func NewAuthService(
	sessionRepo repositories.SessionRepository,
	passwordHash string,
	jwtSecret string,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		sessionRepo:  sessionRepo,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, password string) (*LoginResponse, error) {
	// An unset password hash disables login entirely rather than matching
	// everything.
	if password == "" || s.passwordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(s.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.generateToken(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *AuthService) generateToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": "dashboard",
		"jti": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// Verify validates the token signature and then requires the referenced
// session to still exist in Redis.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*models.Session, error) {
	sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *AuthService) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sessionID, ok := claims["jti"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidToken
	}
	return sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
