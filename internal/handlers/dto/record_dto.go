package dto

import (
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// CreateVinylRecordRequest representa a requisição para criar um disco
type CreateVinylRecordRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	AuthorName  string  `json:"authorName" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" binding:"required,url"`
}

// UpdateVinylRecordRequest representa uma atualização parcial de um disco
type UpdateVinylRecordRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	AuthorName  *string  `json:"authorName" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description" binding:"omitempty"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,url"`
}

// PaginationQuery são os parâmetros de paginação padrão
type PaginationQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// SearchRecordsQuery são os parâmetros da busca do catálogo.
// sortBy e order são validados contra o conjunto permitido antes de
// qualquer query ser executada.
type SearchRecordsQuery struct {
	Term   string `form:"searchTerm"`
	SortBy string `form:"sortBy,default=name" binding:"oneof=price name authorName"`
	Order  string `form:"order,default=ASC" binding:"oneof=ASC DESC"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// VinylRecordResponse representa a resposta de um disco
type VinylRecordResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AuthorName   string    `json:"authorName"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"imageUrl"`
	AverageScore *float64  `json:"averageScore,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordPageResponse representa uma página do catálogo
type RecordPageResponse struct {
	Data        []VinylRecordResponse `json:"data"`
	Total       int64                 `json:"total"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
}

// ToVinylRecordResponse converte uma entidade VinylRecord para VinylRecordResponse
func ToVinylRecordResponse(record *entities.VinylRecord) VinylRecordResponse {
	return VinylRecordResponse{
		ID:           record.ID,
		Name:         record.Name,
		AuthorName:   record.AuthorName,
		Description:  record.Description,
		Price:        record.Price,
		ImageURL:     record.ImageURL,
		AverageScore: record.AverageScore,
		CreatedAt:    record.CreatedAt,
	}
}

// ToRecordPageResponse converte uma página do catálogo para a resposta
func ToRecordPageResponse(page *services.RecordPage) RecordPageResponse {
	data := make([]VinylRecordResponse, len(page.Data))
	for i, record := range page.Data {
		data[i] = ToVinylRecordResponse(record)
	}

	return RecordPageResponse{
		Data:        data,
		Total:       page.Total,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
}
