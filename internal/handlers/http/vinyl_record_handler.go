package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// VinylRecordHandler lida com requisições HTTP do catálogo
type VinylRecordHandler struct {
	catalogService *services.CatalogService
}

// NewVinylRecordHandler cria um novo VinylRecordHandler
func NewVinylRecordHandler(catalogService *services.CatalogService) *VinylRecordHandler {
	return &VinylRecordHandler{
		catalogService: catalogService,
	}
}

// List retorna uma página do catálogo
func (h *VinylRecordHandler) List(c *gin.Context) {
	var query dto.PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.catalogService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordPageResponse(page))
}

// Get busca um disco por ID
func (h *VinylRecordHandler) Get(c *gin.Context) {
	record, err := h.catalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVinylRecordResponse(record))
}

// Search busca discos com filtro e ordenação
func (h *VinylRecordHandler) Search(c *gin.Context) {
	var query dto.SearchRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.catalogService.Search(
		c.Request.Context(),
		query.Term,
		repositories.SortField(query.SortBy),
		repositories.SortOrder(query.Order),
		query.Page,
		query.Limit,
	)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordPageResponse(page))
}

// Create cria um novo disco (admin)
func (h *VinylRecordHandler) Create(c *gin.Context) {
	var req dto.CreateVinylRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.catalogService.Create(c.Request.Context(), services.CreateRecordInput{
		Name:        req.Name,
		AuthorName:  req.AuthorName,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVinylRecordResponse(record))
}

// Update atualiza parcialmente um disco (admin)
func (h *VinylRecordHandler) Update(c *gin.Context) {
	var req dto.UpdateVinylRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	record, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), services.UpdateRecordInput{
		Name:        req.Name,
		AuthorName:  req.AuthorName,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVinylRecordResponse(record))
}

// Delete remove um disco (admin)
func (h *VinylRecordHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Import importa discos aleatórios do Discogs (admin)
func (h *VinylRecordHandler) Import(c *gin.Context) {
	var query struct {
		Limit int `form:"limit,default=10" binding:"min=1,max=50"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	created, err := h.catalogService.ImportFromDiscogs(c.Request.Context(), query.Limit)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created})
}
