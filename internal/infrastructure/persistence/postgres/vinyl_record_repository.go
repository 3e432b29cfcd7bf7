package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// sortColumns mapeia os campos de ordenação da API para colunas reais.
// Nunca interpolar o valor vindo do cliente direto na query.
var sortColumns = map[repositories.SortField]string{
	repositories.SortByPrice:      "price",
	repositories.SortByName:       "name",
	repositories.SortByAuthorName: "author_name",
}

// VinylRecordRepository implementa repositories.VinylRecordRepository
type VinylRecordRepository struct {
	db *gorm.DB
}

// NewVinylRecordRepository cria um novo VinylRecordRepository
func NewVinylRecordRepository(db *gorm.DB) repositories.VinylRecordRepository {
	return &VinylRecordRepository{db: db}
}

func (r *VinylRecordRepository) Create(ctx context.Context, record *entities.VinylRecord) error {
	model := r.toModel(record)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateRecord
		}
		return err
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	return nil
}

func (r *VinylRecordRepository) FindByID(ctx context.Context, id string) (*entities.VinylRecord, error) {
	var model VinylRecordModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VinylRecordRepository) FindByNameAndAuthor(ctx context.Context, name, authorName string) (*entities.VinylRecord, error) {
	var model VinylRecordModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("name = ? AND author_name = ?", name, authorName).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VinylRecordRepository) Update(ctx context.Context, record *entities.VinylRecord) error {
	model := r.toModel(record)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *VinylRecordRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)

	res := db.Where("id = ?", id).Delete(&VinylRecordModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrRecordNotFound
	}
	return nil
}

// recordWithScore é a projeção da listagem com a média das reviews
type recordWithScore struct {
	VinylRecordModel
	AverageScore *float64
}

func (r *VinylRecordRepository) List(ctx context.Context, page, limit int) ([]*entities.VinylRecord, int64, error) {
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&VinylRecordModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var rows []recordWithScore
	err := db.Model(&VinylRecordModel{}).
		Select("vinyl_records.*, AVG(reviews.score) AS average_score").
		Joins("LEFT JOIN reviews ON reviews.vinyl_record_id = vinyl_records.id").
		Group("vinyl_records.id").
		Order("vinyl_records.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	records := make([]*entities.VinylRecord, 0, len(rows))
	for i := range rows {
		record := r.toEntity(&rows[i].VinylRecordModel)
		record.AverageScore = rows[i].AverageScore
		records = append(records, record)
	}

	return records, total, nil
}

func (r *VinylRecordRepository) Search(ctx context.Context, filters repositories.SearchFilters) ([]*entities.VinylRecord, int64, error) {
	column, ok := sortColumns[filters.SortBy]
	if !ok || !filters.Order.IsValid() {
		return nil, 0, domainerrors.ErrInvalidSort
	}

	db := dbFromContext(ctx, r.db)
	query := db.Model(&VinylRecordModel{})

	if filters.Term != "" {
		pattern := "%" + filters.Term + "%"
		query = query.Where("name ILIKE ? OR author_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit

	var models []*VinylRecordModel
	err := query.
		Order(column + " " + string(filters.Order)).
		Limit(filters.Limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	records := make([]*entities.VinylRecord, 0, len(models))
	for _, model := range models {
		records = append(records, r.toEntity(model))
	}

	return records, total, nil
}

// Conversores
func (r *VinylRecordRepository) toModel(record *entities.VinylRecord) *VinylRecordModel {
	return &VinylRecordModel{
		ID:          record.ID,
		Name:        record.Name,
		AuthorName:  record.AuthorName,
		Description: record.Description,
		Price:       record.Price,
		ImageURL:    record.ImageURL,
		CreatedAt:   record.CreatedAt,
	}
}

func (r *VinylRecordRepository) toEntity(model *VinylRecordModel) *entities.VinylRecord {
	return &entities.VinylRecord{
		ID:          model.ID,
		Name:        model.Name,
		AuthorName:  model.AuthorName,
		Description: model.Description,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		CreatedAt:   model.CreatedAt,
	}
}
