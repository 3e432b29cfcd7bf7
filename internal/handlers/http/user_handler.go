package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/handlers/middleware"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// UserHandler lida com requisições HTTP do perfil do usuário
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile retorna o perfil do usuário autenticado
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}

// UpdateProfile atualiza parcialmente o perfil do usuário autenticado
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	var req dto.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), user.ID, req.ToUpdateProfileInput())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}

// DeleteProfile remove a conta do usuário autenticado
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	if err := h.userService.DeleteProfile(c.Request.Context(), user.ID); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "profile.deleted")})
}

// ListReviews retorna as avaliações feitas pelo usuário autenticado
func (h *UserHandler) ListReviews(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	reviews, err := h.userService.ListReviews(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

// ListPurchases retorna as compras do usuário autenticado
func (h *UserHandler) ListPurchases(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	purchases, err := h.userService.ListPurchases(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponses(purchases))
}
