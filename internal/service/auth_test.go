package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omg-lab/omg-backend/internal/auth"
	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/service"
)

func newAuthFixture() (*service.AuthService, *fakeUsuarioRepo, *auth.TokenManager) {
	repo := newFakeUsuarioRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), "omg-api", "omg-webapp", time.Hour)
	return service.NewAuthService(repo, tokens), repo, tokens
}

func register(t *testing.T, svc *service.AuthService, email, password string) {
	t.Helper()
	resp, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Nome:            "Ana",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokens := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")

	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Email: "ana@x.com", Password: "s3cret!pw"})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Expiration)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "Ana", claims.Nome)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Email:           "ana@x.com",
		Password:        "one",
		ConfirmPassword: "two",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")

	resp, err := svc.Register(context.Background(), &entity.RegisterRequest{
		Email:           "ana@x.com",
		Password:        "other",
		ConfirmPassword: "other",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")

	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Email: "ana@x.com", Password: "nope"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Email: "who@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc, repo, _ := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		resp, err := svc.Login(ctx, &entity.LoginRequest{Email: "ana@x.com", Password: "nope"})
		require.NoError(t, err)
		require.False(t, resp.Success)
	}

	usuario, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, usuario.LockedUntil)

	// Even the correct password is rejected while locked.
	resp, err := svc.Login(ctx, &entity.LoginRequest{Email: "ana@x.com", Password: "s3cret!pw"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "bloqueada")
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")
	ctx := context.Background()

	resp, err := svc.ChangePassword(ctx, &entity.ChangePasswordRequest{
		Email:              "ana@x.com",
		CurrentPassword:    "s3cret!pw",
		NewPassword:        "newer!pw",
		ConfirmNewPassword: "newer!pw",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)

	// Old password no longer works, new one does.
	old, err := svc.Login(ctx, &entity.LoginRequest{Email: "ana@x.com", Password: "s3cret!pw"})
	require.NoError(t, err)
	assert.False(t, old.Success)

	fresh, err := svc.Login(ctx, &entity.LoginRequest{Email: "ana@x.com", Password: "newer!pw"})
	require.NoError(t, err)
	assert.True(t, fresh.Success)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _, _ := newAuthFixture()
	register(t, svc, "ana@x.com", "s3cret!pw")

	resp, err := svc.ChangePassword(context.Background(), &entity.ChangePasswordRequest{
		Email:              "ana@x.com",
		CurrentPassword:    "wrong",
		NewPassword:        "newer!pw",
		ConfirmNewPassword: "newer!pw",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
