package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/handlers/middleware"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// PurchaseHandler lida com checkout e com o webhook do provedor de pagamento
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
	logger          ports.Logger
}

// NewPurchaseHandler cria um novo PurchaseHandler
func NewPurchaseHandler(purchaseService *services.PurchaseService, logger ports.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// Checkout cria uma sessão de pagamento para um disco
func (h *PurchaseHandler) Checkout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		dto.UnauthorizedResponse(c)
		return
	}

	url, err := h.purchaseService.CreateCheckout(c.Request.Context(), c.Param("vinylRecordId"), user.Email.String())
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{CheckoutURL: url})
}

// Webhook recebe eventos assinados do provedor de pagamento
func (h *PurchaseHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("failed to read webhook payload", "error", err)
		dto.BadRequestResponse(c, "error.bad_request.title")
		return
	}

	if err := h.purchaseService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// Success confirma o retorno de um pagamento concluído
func (h *PurchaseHandler) Success(c *gin.Context) {
	c.String(http.StatusOK, dto.T(c, "purchase.success"))
}

// Cancel confirma o retorno de um pagamento cancelado
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	c.String(http.StatusOK, dto.T(c, "purchase.cancel"))
}
