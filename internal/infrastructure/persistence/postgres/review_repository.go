package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := r.toModel(review)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	review.ID = model.ID
	review.CreatedAt = model.CreatedAt
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)

	res := db.Where("id = ?", id).Delete(&ReviewModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) ListByRecord(ctx context.Context, recordID string, page, limit int) ([]*entities.Review, int64, error) {
	db := dbFromContext(ctx, r.db)

	base := db.Model(&ReviewModel{}).Where("vinyl_record_id = ?", recordID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var models []*ReviewModel
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Review, error) {
	db := dbFromContext(ctx, r.db)

	var models []*ReviewModel
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores
func (r *ReviewRepository) toModel(review *entities.Review) *ReviewModel {
	return &ReviewModel{
		ID:            review.ID,
		Content:       review.Content,
		Score:         review.Score,
		UserID:        review.UserID,
		VinylRecordID: review.VinylRecordID,
		CreatedAt:     review.CreatedAt,
	}
}

func (r *ReviewRepository) toEntity(model *ReviewModel) *entities.Review {
	return &entities.Review{
		ID:            model.ID,
		Content:       model.Content,
		Score:         model.Score,
		UserID:        model.UserID,
		VinylRecordID: model.VinylRecordID,
		CreatedAt:     model.CreatedAt,
	}
}

func (r *ReviewRepository) toEntities(models []*ReviewModel) []*entities.Review {
	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		reviews = append(reviews, r.toEntity(model))
	}
	return reviews
}
