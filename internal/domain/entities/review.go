package entities

import (
	"errors"
	"time"
)

const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Review representa a avaliação de um disco feita por um usuário
type Review struct {
	ID            string
	Content       string
	Score         int
	UserID        string
	VinylRecordID string
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Review
func (r *Review) Validate() error {
	if r.Content == "" {
		return errors.New("content is required")
	}

	if r.Score < MinReviewScore || r.Score > MaxReviewScore {
		return errors.New("score must be between 1 and 5")
	}

	if r.UserID == "" || r.VinylRecordID == "" {
		return errors.New("review must belong to a user and a vinyl record")
	}

	return nil
}
