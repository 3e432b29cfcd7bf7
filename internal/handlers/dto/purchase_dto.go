package dto

import (
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
)

// CheckoutResponse devolve a URL de redirecionamento do checkout
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// PurchaseResponse representa uma compra confirmada
type PurchaseResponse struct {
	ID            string    `json:"id"`
	VinylRecordID string    `json:"vinylRecordId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToPurchaseResponses converte uma lista de entidades Purchase
func ToPurchaseResponses(purchases []*entities.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		responses[i] = PurchaseResponse{
			ID:            purchase.ID,
			VinylRecordID: purchase.VinylRecordID,
			CreatedAt:     purchase.CreatedAt,
		}
	}
	return responses
}
