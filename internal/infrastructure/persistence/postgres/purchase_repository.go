package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// PurchaseRepository implementa repositories.PurchaseRepository
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository cria um novo PurchaseRepository
func NewPurchaseRepository(db *gorm.DB) repositories.PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *entities.Purchase) error {
	model := r.toModel(purchase)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// Índice único em session_id: entrega repetida do mesmo webhook
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicatePurchase
		}
		return err
	}

	purchase.ID = model.ID
	purchase.CreatedAt = model.CreatedAt
	return nil
}

func (r *PurchaseRepository) FindBySessionID(ctx context.Context, sessionID string) (*entities.Purchase, error) {
	var model PurchaseModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("session_id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	db := dbFromContext(ctx, r.db)

	var models []*PurchaseModel
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*entities.Purchase, 0, len(models))
	for _, model := range models {
		purchases = append(purchases, r.toEntity(model))
	}
	return purchases, nil
}

// Conversores
func (r *PurchaseRepository) toModel(purchase *entities.Purchase) *PurchaseModel {
	return &PurchaseModel{
		ID:            purchase.ID,
		UserID:        purchase.UserID,
		VinylRecordID: purchase.VinylRecordID,
		SessionID:     purchase.SessionID,
		CreatedAt:     purchase.CreatedAt,
	}
}

func (r *PurchaseRepository) toEntity(model *PurchaseModel) *entities.Purchase {
	return &entities.Purchase{
		ID:            model.ID,
		UserID:        model.UserID,
		VinylRecordID: model.VinylRecordID,
		SessionID:     model.SessionID,
		CreatedAt:     model.CreatedAt,
	}
}
