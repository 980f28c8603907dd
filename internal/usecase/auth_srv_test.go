package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/dto/request"
	"cinema-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{TokenExpiryHours: 72},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new user without staff rights", func(t *testing.T) {
		store, repo := newFakeStore()
		svc := NewAuthService(repo, testConfig(), testLogger())

		resp, err := svc.Register(ctx, &request.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", resp.Email)
		assert.False(t, resp.IsStaff)

		stored, err := store.user.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.PasswordHash)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, repo := newFakeStore()
		svc := NewAuthService(repo, testConfig(), testLogger())

		req := &request.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "secret123",
		}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		requireKind(t, err, utils.KindConflict)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, repo := newFakeStore()
		svc := NewAuthService(repo, testConfig(), testLogger())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Email:    "bob@example.com",
			Username: "bob",
			Password: "abc",
		})
		requireKind(t, err, utils.KindValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) AuthService {
		_, repo := newFakeStore()
		svc := NewAuthService(repo, testConfig(), testLogger())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "secret123",
		})
		require.NoError(t, err)
		return svc
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		svc := setup(t)

		resp, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(72*time.Hour), resp.ExpiresAt, time.Minute)
	})

	t.Run("wrong password is unauthenticated", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		requireKind(t, err, utils.KindUnauthenticated)
	})

	t.Run("unknown email is unauthenticated", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		requireKind(t, err, utils.KindUnauthenticated)
	})
}

func TestUpdateMe(t *testing.T) {
	ctx := context.Background()

	t.Run("updates username and email", func(t *testing.T) {
		store, repo := newFakeStore()
		authSvc := NewAuthService(repo, testConfig(), testLogger())
		userSvc := NewUserService(repo, testLogger())

		created, err := authSvc.Register(ctx, &request.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "secret123",
		})
		require.NoError(t, err)

		stored, err := store.user.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)

		resp, err := userSvc.UpdateMe(ctx, stored.ID, &request.UpdateMeRequest{
			Email:    "alice@new.example.com",
			Username: "alice2",
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "alice@new.example.com", resp.Email)
		assert.Equal(t, "alice2", resp.Username)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		store, repo := newFakeStore()
		authSvc := NewAuthService(repo, testConfig(), testLogger())
		userSvc := NewUserService(repo, testLogger())

		for _, email := range []string{"alice@example.com", "bob@example.com"} {
			_, err := authSvc.Register(ctx, &request.RegisterRequest{
				Email:    email,
				Username: "user",
				Password: "secret123",
			})
			require.NoError(t, err)
		}

		alice, err := store.user.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)

		_, err = userSvc.UpdateMe(ctx, alice.ID, &request.UpdateMeRequest{Email: "bob@example.com"})
		requireKind(t, err, utils.KindConflict)
	})
}
