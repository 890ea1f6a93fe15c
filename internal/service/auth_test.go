package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-server/internal/domain"
	domainerrors "github.com/taskdeck/taskdeck-server/internal/errors"
)

func TestAuthService_Register_Success(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	resp, err := svc.auth.Register(ctx, RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
		Role:     "manager",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleManager, resp.User.Role)
	assert.NotEqual(t, "hunter22", resp.User.PasswordHash, "password must be hashed")

	// The issued token must verify and carry the new user's identity.
	claims, err := svc.auth.VerifyAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "hunter22", Name: "A", Role: "individual"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "hunter22", Name: "A", Role: "individual"}},
		{"password too short", RegisterRequest{Email: "a@example.com", Password: "short", Name: "A", Role: "individual"}},
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "hunter22", Role: "individual"}},
		{"unknown role", RegisterRequest{Email: "a@example.com", Password: "hunter22", Name: "A", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.auth.Register(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registerUser(t, svc, "alice@example.com")

	_, err := svc.auth.Register(ctx, RegisterRequest{
		Email:    "alice@example.com",
		Password: "different99",
		Name:     "Other Alice",
		Role:     "individual",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registered := registerUser(t, svc, "alice@example.com")

	resp, err := svc.auth.Login(ctx, LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registerUser(t, svc, "alice@example.com")

	_, err := svc.auth.Login(ctx, LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.auth.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_VerifyAccessToken_Garbage(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.auth.VerifyAccessToken("v4.local.garbage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_GetUser(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registered := registerUser(t, svc, "alice@example.com")

	user, err := svc.auth.GetUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.auth.GetUser(ctx, "user-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
