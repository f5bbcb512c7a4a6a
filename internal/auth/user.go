package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserStore is the account storage needed by the auth service.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Session is the resolved identity of one request. It is passed explicitly
// into every catalog operation instead of living in ambient global state.
type Session struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}
