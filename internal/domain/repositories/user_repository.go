package repositories

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Os métodos Find* retornam (nil, nil) quando o usuário não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error

	// Delete remove o usuário; reviews e purchases caem em cascata (FK).
	// Retorna errors.ErrUserNotFound quando nenhuma linha é afetada.
	Delete(ctx context.Context, id string) error
}
