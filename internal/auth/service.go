package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/playkaro/video-catalog/internal/catalog/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const defaultTokenTTL = 24 * time.Hour

type Service struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
	idGen  func() uuid.UUID
}

func New(users UserStore, secret []byte) *Service {
	return &Service{
		users:  users,
		secret: secret,
		ttl:    defaultTokenTTL,
		clock:  time.Now,
		idGen:  uuid.New,
	}
}

// Register creates an account and returns a signed token plus the session it
// resolves to. New accounts are never admins; the flag is flipped out of band.
func (s *Service) Register(ctx context.Context, email, password string) (string, *Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || len(password) < 8 {
		return "", nil, models.NewValidationError("password", "email required and password must be at least 8 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", nil, models.ErrConflict
	} else if !errors.Is(err, models.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           s.idGen(),
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    s.clock(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", nil, err
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) issue(u *User) (string, *Session, error) {
	now := s.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID.String(),
		"email":    u.Email,
		"is_admin": u.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &Session{UserID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}, nil
}

// ParseToken validates a bearer token and resolves it into a Session.
func (s *Service) ParseToken(raw string) (*Session, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return &Session{UserID: userID, Email: email, IsAdmin: isAdmin}, nil
}
