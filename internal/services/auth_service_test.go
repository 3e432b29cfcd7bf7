package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *memUserRepo, *auth.TokenManager) {
	t.Helper()

	userRepo := newMemUserRepo()
	tokens := auth.NewTokenManager("test-secret")
	return NewAuthService(userRepo, tokens, noopLogger{}), userRepo, tokens
}

func googleProfile() *ports.OAuthProfile {
	return &ports.OAuthProfile{
		Email:     "carla@example.com",
		FirstName: "Carla",
		LastName:  "Souza",
		AvatarURL: "https://lh3.example.com/photo.jpg",
	}
}

func TestAuthService_UpsertFromProfile(t *testing.T) {
	t.Run("cria o usuário no primeiro login", func(t *testing.T) {
		service, _, _ := newAuthFixture(t)

		user, err := service.UpsertFromProfile(context.Background(), googleProfile())
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "carla@example.com", user.Email.String())
		assert.Equal(t, entities.RoleUser, user.Role)
		require.NotNil(t, user.AvatarURL)
		assert.Equal(t, "https://lh3.example.com/photo.jpg", *user.AvatarURL)
	})

	t.Run("logins repetidos retornam o mesmo usuário", func(t *testing.T) {
		service, userRepo, _ := newAuthFixture(t)

		first, err := service.UpsertFromProfile(context.Background(), googleProfile())
		require.NoError(t, err)

		second, err := service.UpsertFromProfile(context.Background(), googleProfile())
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, userRepo.users, 1)
	})

	t.Run("email inválido no perfil é rejeitado", func(t *testing.T) {
		service, _, _ := newAuthFixture(t)

		profile := googleProfile()
		profile.Email = "not-an-email"

		_, err := service.UpsertFromProfile(context.Background(), profile)
		assert.Error(t, err)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("emite um token verificável com id e email do usuário", func(t *testing.T) {
		service, _, tokens := newAuthFixture(t)

		token, user, err := service.Authenticate(context.Background(), googleProfile())
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "carla@example.com", claims.Email)
	})
}
