package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/handlers/middleware"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// ReviewHandler lida com requisições HTTP de avaliações
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create cria uma avaliação para um disco
func (h *ReviewHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), user, c.Param("id"), req.Content, req.Score)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// ListByRecord retorna as avaliações de um disco, paginadas
func (h *ReviewHandler) ListByRecord(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.reviewService.ListByRecord(c.Request.Context(), c.Param("id"), query.Page, query.Limit)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewPageResponse(page))
}

// Delete remove uma avaliação (admin)
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "review.deleted")})
}
