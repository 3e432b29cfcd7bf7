package repositories

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
)

// ReviewRepository define a interface para persistência de reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error

	// Delete retorna errors.ErrReviewNotFound quando nenhuma linha é afetada
	Delete(ctx context.Context, id string) error

	// ListByRecord retorna uma página de reviews do disco, mais recentes
	// primeiro, e o total de reviews do disco
	ListByRecord(ctx context.Context, recordID string, page, limit int) ([]*entities.Review, int64, error)

	// ListByUser retorna todas as reviews criadas pelo usuário
	ListByUser(ctx context.Context, userID string) ([]*entities.Review, error)
}
