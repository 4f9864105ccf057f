package unit_test

import (
	"context"
	"testing"
	"time"

	"amlak-backend/internal/config"
	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/auth"
	"amlak-backend/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func hashedUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           uuid.New(),
		Name:         "Layla Hassan",
		Email:        "layla@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleManager,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig())

		user := hashedUser("correct horse battery staple")

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *repository.Session) bool {
			return s.UserID == user.ID && s.TokenHash != "" && s.ExpiresAt.After(time.Now())
		})).Return(nil).Once()
		userRepo.On("UpdateLastLogin", ctx, user.ID, mock.Anything).Return(nil).Once()

		loggedIn, tokens, err := svc.Login(ctx, domain.LoginInput{
			Email:    user.Email,
			Password: "correct horse battery staple",
		}, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)

		// The refresh token itself must never be what we persisted.
		sessionRepo.AssertExpectations(t)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleManager, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		user := hashedUser("right")
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "wrong"}, nil, nil)

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "whatever"}, nil, nil)

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("DisabledAccount", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		user := hashedUser("password123")
		user.IsActive = false
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "password123"}, nil, nil)

		assert.ErrorIs(t, err, auth.ErrAccountDisabled)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	t.Run("GarbageToken", func(t *testing.T) {
		svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), testAuthConfig())

		_, err := svc.ValidateAccessToken("not-a-jwt")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		ctx := context.Background()
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		issuer := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig())

		user := hashedUser("pw")
		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
		sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		userRepo.On("UpdateLastLogin", ctx, user.ID, mock.Anything).Return(nil).Once()

		_, tokens, err := issuer.Login(ctx, domain.LoginInput{Email: user.Email, Password: "pw"}, nil, nil)
		require.NoError(t, err)

		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "different-secret"
		verifier := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), new(mocks.EmailService), otherCfg)

		_, err = verifier.ValidateAccessToken(tokens.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownToken", func(t *testing.T) {
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(new(mocks.UserRepository), sessionRepo, new(mocks.EmailService), testAuthConfig())

		sessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(nil, nil).Once()

		_, err := svc.Refresh(ctx, "expired-or-bogus")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("RotatesSession", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, new(mocks.EmailService), testAuthConfig())

		user := hashedUser("pw")
		session := &repository.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: "stored-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}

		sessionRepo.On("GetByTokenHash", ctx, mock.Anything).Return(session, nil).Once()
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		sessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		tokens, err := svc.Refresh(ctx, "old-refresh-token")

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		sessionRepo.AssertExpectations(t)
	})
}
