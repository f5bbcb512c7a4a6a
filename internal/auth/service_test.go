package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/playkaro/video-catalog/internal/catalog/models"
)

var testSecret = []byte("unit-test-secret")

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()
	svc := New(store, testSecret)

	token, sess, err := svc.Register(ctx, "Admin@PlayKaro.Test", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	// Email is normalized and fresh accounts never start as admins.
	require.Equal(t, "admin@playkaro.test", sess.Email)
	require.False(t, sess.IsAdmin)

	token, sess2, err := svc.Login(ctx, "admin@playkaro.test", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, sess.UserID, sess2.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := New(NewMemoryUserStore(), testSecret)

	_, _, err := svc.Register(ctx, "a@b.test", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "a@b.test", "correct-horse")
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_WeakPassword(t *testing.T) {
	ctx := context.Background()
	svc := New(NewMemoryUserStore(), testSecret)

	_, _, err := svc.Register(ctx, "a@b.test", "short")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := New(NewMemoryUserStore(), testSecret)

	_, _, err := svc.Register(ctx, "a@b.test", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.test", "wrong-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@b.test", "correct-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_RoundTripsSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()
	svc := New(store, testSecret)

	_, _, err := svc.Register(ctx, "admin@b.test", "correct-horse")
	require.NoError(t, err)
	store.SetAdmin("admin@b.test", true)

	token, sess, err := svc.Login(ctx, "admin@b.test", "correct-horse")
	require.NoError(t, err)
	require.True(t, sess.IsAdmin)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, sess.UserID, parsed.UserID)
	require.Equal(t, "admin@b.test", parsed.Email)
	require.True(t, parsed.IsAdmin)
}

func TestParseToken_RejectsGarbageAndWrongKey(t *testing.T) {
	svc := New(NewMemoryUserStore(), testSecret)

	_, err := svc.ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	other := New(NewMemoryUserStore(), []byte("different-secret"))
	token, _, err := other.Register(context.Background(), "a@b.test", "correct-horse")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	ctx := context.Background()
	svc := New(NewMemoryUserStore(), testSecret)

	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return issued }

	token, _, err := svc.Register(ctx, "a@b.test", "correct-horse")
	require.NoError(t, err)

	svc.clock = func() time.Time { return issued.Add(48 * time.Hour) }
	_, err = svc.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
