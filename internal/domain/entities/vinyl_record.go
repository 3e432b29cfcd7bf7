package entities

import (
	"errors"
	"math"
	"time"
)

// VinylRecord representa um disco do catálogo
type VinylRecord struct {
	ID          string
	Name        string
	AuthorName  string
	Description string
	Price       float64
	ImageURL    string
	CreatedAt   time.Time

	// AverageScore é a média das reviews do disco (nil quando não há reviews)
	AverageScore *float64
}

// PriceInCents retorna o preço em centavos, como o provedor de pagamento espera
func (v *VinylRecord) PriceInCents() int64 {
	return int64(math.Round(v.Price * 100))
}

// Validate valida regras de negócio da entidade VinylRecord
func (v *VinylRecord) Validate() error {
	if v.Name == "" {
		return errors.New("name is required")
	}

	if v.AuthorName == "" {
		return errors.New("author name is required")
	}

	if v.Price <= 0 {
		return errors.New("price must be positive")
	}

	return nil
}
