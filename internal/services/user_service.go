package services

import (
	"context"
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// UserService contém a lógica de negócio de perfis de usuário
type UserService struct {
	userRepo     repositories.UserRepository
	reviewRepo   repositories.ReviewRepository
	purchaseRepo repositories.PurchaseRepository
	logger       ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	purchaseRepo repositories.PurchaseRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// UpdateProfileInput representa uma atualização parcial de perfil
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Birthdate *time.Time
	AvatarURL *string
}

// GetProfile busca o perfil de um usuário por ID
func (s *UserService) GetProfile(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile aplica um merge parcial dos campos informados
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Birthdate != nil {
		user.Birthdate = input.Birthdate
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", "user_id", id)
	return user, nil
}

// DeleteProfile remove o usuário; reviews e purchases caem em cascata
func (s *UserService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user profile deleted", "user_id", id)
	return nil
}

// ListReviews retorna as reviews do usuário; usuário inexistente é not-found
func (s *UserService) ListReviews(ctx context.Context, userID string) ([]*entities.Review, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.reviewRepo.ListByUser(ctx, userID)
}

// ListPurchases retorna as compras do usuário; usuário inexistente é not-found
func (s *UserService) ListPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	return s.purchaseRepo.ListByUser(ctx, userID)
}
