package services

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// ReviewService contém a lógica de negócio de reviews
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	recordRepo repositories.VinylRecordRepository
	logger     ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	recordRepo repositories.VinylRecordRepository,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// ReviewPage é uma página de reviews de um disco
type ReviewPage struct {
	Data        []*entities.Review
	Total       int64
	CurrentPage int
	TotalPages  int
}

// Create cria uma review para um disco existente. Score fora de 1–5 é
// rejeitado antes de tocar o repositório.
func (s *ReviewService) Create(ctx context.Context, user *entities.User, recordID, content string, score int) (*entities.Review, error) {
	if score < entities.MinReviewScore || score > entities.MaxReviewScore {
		return nil, errors.ErrInvalidScore
	}

	record, err := s.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.ErrRecordNotFound
	}

	review := &entities.Review{
		Content:       content,
		Score:         score,
		UserID:        user.ID,
		VinylRecordID: record.ID,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review created",
		"review_id", review.ID,
		"record_id", record.ID,
		"user_id", user.ID,
		"score", score,
	)

	return review, nil
}

// ListByRecord retorna uma página de reviews de um disco
func (s *ReviewService) ListByRecord(ctx context.Context, recordID string, page, limit int) (*ReviewPage, error) {
	if page < 1 || limit < 1 {
		return nil, errors.ErrInvalidPagination
	}

	reviews, total, err := s.reviewRepo.ListByRecord(ctx, recordID, page, limit)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Data:        reviews,
		Total:       total,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
	}, nil
}

// Delete remove uma review; id inexistente sinaliza not-found
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", id)
	return nil
}
