package services

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
	"github.com/rcampos/vinylstore-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de autenticação via OAuth + JWT
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// UpsertFromProfile busca o usuário pelo email do perfil OAuth e cria um
// novo quando não existe. Chamadas repetidas com o mesmo email retornam
// sempre o mesmo usuário.
func (s *AuthService) UpsertFromProfile(ctx context.Context, profile *ports.OAuthProfile) (*entities.User, error) {
	email, err := valueobjects.NewEmail(profile.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &entities.User{
		Email:     email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Role:      entities.RoleUser,
	}
	if profile.AvatarURL != "" {
		avatar := profile.AvatarURL
		user.AvatarURL = &avatar
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created from oauth profile",
		"user_id", user.ID,
		"email", user.Email.String(),
	)

	return user, nil
}

// IssueToken emite o JWT do usuário (id + email, expiração de uma hora)
func (s *AuthService) IssueToken(user *entities.User) (string, error) {
	return s.tokens.Issue(user.ID, user.Email.String())
}

// Authenticate faz o upsert do perfil e emite o token em um passo
func (s *AuthService) Authenticate(ctx context.Context, profile *ports.OAuthProfile) (string, *entities.User, error) {
	user, err := s.UpsertFromProfile(ctx, profile)
	if err != nil {
		return "", nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
