package services

import (
	"context"
	"testing"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/config"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(userRepo *fakeUserRepo, tokenRepo *fakeRefreshTokenRepo) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return NewAuthService(userRepo, tokenRepo, cfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := &fakeRefreshTokenRepo{}
	s := newTestAuthService(userRepo, tokenRepo)

	registered, err := s.Register(context.Background(), &RegisterInput{
		FirstName: "Wei",
		LastName:  "Chen",
		Email:     "wei@example.com",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Len(t, tokenRepo.tokens, 1)

	loggedIn, err := s.Login(context.Background(), &LoginInput{
		Email:    "wei@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	claims, err := s.ValidateAccessToken(loggedIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "wei@example.com", claims.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{}
	s := newTestAuthService(userRepo, &fakeRefreshTokenRepo{})

	input := &RegisterInput{FirstName: "Wei", Email: "wei@example.com", Password: "supersecret"}
	_, err := s.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = s.Register(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	s := newTestAuthService(&fakeUserRepo{}, &fakeRefreshTokenRepo{})

	_, err := s.Register(context.Background(), &RegisterInput{
		FirstName: "Wei",
		Email:     "wei@example.com",
		Password:  "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	s := newTestAuthService(userRepo, &fakeRefreshTokenRepo{})

	_, err := s.Register(context.Background(), &RegisterInput{
		FirstName: "Wei", Email: "wei@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), &LoginInput{Email: "wei@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = s.Login(context.Background(), &LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := &fakeRefreshTokenRepo{}
	s := newTestAuthService(userRepo, tokenRepo)

	registered, err := s.Register(context.Background(), &RegisterInput{
		FirstName: "Wei", Email: "wei@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := s.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The rotated-out token must no longer be usable.
	_, err = s.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := &fakeRefreshTokenRepo{}
	s := newTestAuthService(userRepo, tokenRepo)

	registered, err := s.Register(context.Background(), &RegisterInput{
		FirstName: "Wei", Email: "wei@example.com", Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background(), registered.RefreshToken))

	_, err = s.RefreshToken(context.Background(), registered.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
