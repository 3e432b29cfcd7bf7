package repositories

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
)

// PurchaseRepository define a interface para persistência de compras
type PurchaseRepository interface {
	// Create insere a compra. A coluna session_id tem índice único: uma
	// inserção duplicada para a mesma sessão retorna
	// errors.ErrDuplicatePurchase, nunca uma segunda linha.
	Create(ctx context.Context, purchase *entities.Purchase) error

	// FindBySessionID retorna (nil, nil) quando a sessão ainda não foi
	// reconciliada
	FindBySessionID(ctx context.Context, sessionID string) (*entities.Purchase, error)

	// ListByUser retorna todas as compras do usuário
	ListByUser(ctx context.Context, userID string) ([]*entities.Purchase, error)
}
