package auth

import (
	"fmt"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PersonReader is the slice of the person repository the auth service needs
type PersonReader interface {
	GetByEmail(email string) (*models.Person, error)
}

// Claims are the JWT claims carried by access and refresh tokens
type Claims struct {
	PersonID uuid.UUID `json:"person_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Kind     string    `json:"kind"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// Service issues and validates JWTs and verifies credentials
type Service struct {
	people     PersonReader
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a new auth service
func NewService(people PersonReader, secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		people:     people,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// TokenPair bundles an access token with its refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login verifies email/password and issues a token pair
func (s *Service) Login(email, password string) (*TokenPair, *models.Person, error) {
	person, err := s.people.GetByEmail(email)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !person.IsActive {
		return nil, nil, apperrors.ErrPersonInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issuePair(person)
	if err != nil {
		return nil, nil, err
	}
	return pair, person, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if claims.Kind != "refresh" {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	person, err := s.people.GetByEmail(claims.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if !person.IsActive {
		return nil, apperrors.ErrPersonInactive
	}

	return s.issuePair(person)
}

// ValidateToken parses and verifies a token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// HashPassword produces a bcrypt hash for storage on a Person
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) issuePair(person *models.Person) (*TokenPair, error) {
	access, err := s.sign(person, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(person, "refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *Service) sign(person *models.Person, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		PersonID: person.ID,
		TenantID: person.TenantID,
		Email:    person.Email,
		Role:     string(person.Role),
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   person.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
