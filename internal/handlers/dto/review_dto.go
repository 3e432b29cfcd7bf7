package dto

import (
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// CreateReviewRequest representa a requisição para criar uma review.
// O score é restringido a 1–5 já no binding, antes de chegar ao serviço.
type CreateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Score   int    `json:"score" binding:"required,min=1,max=5"`
}

// ReviewResponse representa a resposta de uma review
type ReviewResponse struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	Score         int       `json:"score"`
	UserID        string    `json:"userId"`
	VinylRecordID string    `json:"vinylRecordId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReviewPageResponse representa uma página de reviews
type ReviewPageResponse struct {
	Data        []ReviewResponse `json:"data"`
	Total       int64            `json:"total"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID,
		Content:       review.Content,
		Score:         review.Score,
		UserID:        review.UserID,
		VinylRecordID: review.VinylRecordID,
		CreatedAt:     review.CreatedAt,
	}
}

// ToReviewResponses converte uma lista de entidades Review
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}

// ToReviewPageResponse converte uma página de reviews para a resposta
func ToReviewPageResponse(page *services.ReviewPage) ReviewPageResponse {
	return ReviewPageResponse{
		Data:        ToReviewResponses(page.Data),
		Total:       page.Total,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
}
