package entities

import (
	"errors"
	"time"
)

// Purchase representa uma compra confirmada pelo provedor de pagamento.
// SessionID é a chave de reconciliação: cada checkout session concluída
// gera no máximo uma Purchase.
type Purchase struct {
	ID            string
	UserID        string
	VinylRecordID string
	SessionID     string
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Purchase
func (p *Purchase) Validate() error {
	if p.UserID == "" || p.VinylRecordID == "" {
		return errors.New("purchase must link a user and a vinyl record")
	}

	if p.SessionID == "" {
		return errors.New("session id is required")
	}

	return nil
}
