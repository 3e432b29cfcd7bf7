package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	domainerrors "github.com/rcampos/vinylstore-backend/internal/domain/errors"
)

func newReviewFixture(t *testing.T) (*ReviewService, *memReviewRepo, *memRecordRepo, *entities.VinylRecord) {
	t.Helper()

	reviewRepo := newMemReviewRepo()
	recordRepo := newMemRecordRepo()

	record := &entities.VinylRecord{Name: "OK Computer", AuthorName: "Radiohead", Price: 44.90}
	require.NoError(t, recordRepo.Create(context.Background(), record))

	return NewReviewService(reviewRepo, recordRepo, noopLogger{}), reviewRepo, recordRepo, record
}

func testReviewer() *entities.User {
	return &entities.User{ID: "user-1", FirstName: "Ana", Role: entities.RoleUser}
}

func TestReviewService_Create(t *testing.T) {
	t.Run("cria uma review com sucesso", func(t *testing.T) {
		service, _, _, record := newReviewFixture(t)

		review, err := service.Create(context.Background(), testReviewer(), record.ID, "Great pressing", 5)
		require.NoError(t, err)

		assert.NotEmpty(t, review.ID)
		assert.Equal(t, record.ID, review.VinylRecordID)
		assert.Equal(t, "user-1", review.UserID)
	})

	t.Run("score fora de 1 a 5 é rejeitado antes de tocar o repositório", func(t *testing.T) {
		service, reviewRepo, _, record := newReviewFixture(t)

		for _, score := range []int{0, 6, -1} {
			_, err := service.Create(context.Background(), testReviewer(), record.ID, "bad score", score)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidScore)
		}

		assert.Zero(t, reviewRepo.createCalls)
	})

	t.Run("scores nos limites são aceitos", func(t *testing.T) {
		service, _, _, record := newReviewFixture(t)

		for _, score := range []int{1, 5} {
			_, err := service.Create(context.Background(), testReviewer(), record.ID, "boundary", score)
			assert.NoError(t, err)
		}
	})

	t.Run("disco inexistente é not-found", func(t *testing.T) {
		service, _, _, _ := newReviewFixture(t)

		_, err := service.Create(context.Background(), testReviewer(), "missing", "no record", 3)
		assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
	})
}

func TestReviewService_ListByRecord(t *testing.T) {
	t.Run("pagina as reviews do disco", func(t *testing.T) {
		service, _, _, record := newReviewFixture(t)

		for i := 0; i < 5; i++ {
			_, err := service.Create(context.Background(), testReviewer(), record.ID, "review", 4)
			require.NoError(t, err)
		}

		page, err := service.ListByRecord(context.Background(), record.ID, 2, 2)
		require.NoError(t, err)

		assert.Len(t, page.Data, 2)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("rejeita paginação inválida", func(t *testing.T) {
		service, _, _, record := newReviewFixture(t)

		_, err := service.ListByRecord(context.Background(), record.ID, 0, 10)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("remove uma review existente", func(t *testing.T) {
		service, _, _, record := newReviewFixture(t)

		review, err := service.Create(context.Background(), testReviewer(), record.ID, "to delete", 2)
		require.NoError(t, err)

		assert.NoError(t, service.Delete(context.Background(), review.ID))
	})

	t.Run("id inexistente é not-found", func(t *testing.T) {
		service, _, _, _ := newReviewFixture(t)

		err := service.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})
}
