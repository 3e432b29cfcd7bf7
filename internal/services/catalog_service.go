package services

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/domain/errors"
	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
	"github.com/rcampos/vinylstore-backend/internal/domain/repositories"
)

// defaultImportPrice é o preço atribuído a discos importados do Discogs,
// ajustável depois pelo admin
const defaultImportPrice = 29.99

// CatalogService contém a lógica de negócio do catálogo de discos
type CatalogService struct {
	recordRepo repositories.VinylRecordRepository
	source     ports.CatalogSource
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	recordRepo repositories.VinylRecordRepository,
	source ports.CatalogSource,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		recordRepo: recordRepo,
		source:     source,
		uow:        uow,
		logger:     logger,
	}
}

// RecordPage é uma página do catálogo
type RecordPage struct {
	Data        []*entities.VinylRecord
	Total       int64
	CurrentPage int
	TotalPages  int
}

// CreateRecordInput representa os dados para criar um disco
type CreateRecordInput struct {
	Name        string
	AuthorName  string
	Description string
	Price       float64
	ImageURL    string
}

// UpdateRecordInput representa uma atualização parcial de um disco
type UpdateRecordInput struct {
	Name        *string
	AuthorName  *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// Get busca um disco por ID
func (s *CatalogService) Get(ctx context.Context, id string) (*entities.VinylRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.ErrRecordNotFound
	}
	return record, nil
}

// List retorna uma página do catálogo ordenada por criação decrescente
func (s *CatalogService) List(ctx context.Context, page, limit int) (*RecordPage, error) {
	if page < 1 || limit < 1 {
		return nil, errors.ErrInvalidPagination
	}

	records, total, err := s.recordRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &RecordPage{
		Data:        records,
		Total:       total,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
	}, nil
}

// Search busca discos por substring em nome/artista com ordenação.
// Valores de ordenação fora do conjunto permitido são rejeitados antes
// de qualquer query.
func (s *CatalogService) Search(ctx context.Context, term string, sortBy repositories.SortField, order repositories.SortOrder, page, limit int) (*RecordPage, error) {
	if page < 1 || limit < 1 {
		return nil, errors.ErrInvalidPagination
	}

	if !sortBy.IsValid() || !order.IsValid() {
		return nil, errors.ErrInvalidSort
	}

	records, total, err := s.recordRepo.Search(ctx, repositories.SearchFilters{
		Term:   term,
		SortBy: sortBy,
		Order:  order,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &RecordPage{
		Data:        records,
		Total:       total,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
	}, nil
}

// Create cria um novo disco; nome+artista duplicados são um conflito
func (s *CatalogService) Create(ctx context.Context, input CreateRecordInput) (*entities.VinylRecord, error) {
	existing, err := s.recordRepo.FindByNameAndAuthor(ctx, input.Name, input.AuthorName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrDuplicateRecord
	}

	record := &entities.VinylRecord{
		Name:        input.Name,
		AuthorName:  input.AuthorName,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("vinyl record created",
		"record_id", record.ID,
		"name", record.Name,
		"author", record.AuthorName,
	)

	return record, nil
}

// Update aplica uma atualização parcial a um disco existente
func (s *CatalogService) Update(ctx context.Context, id string, input UpdateRecordInput) (*entities.VinylRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.ErrRecordNotFound
	}

	if input.Name != nil {
		record.Name = *input.Name
	}
	if input.AuthorName != nil {
		record.AuthorName = *input.AuthorName
	}
	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Price != nil {
		record.Price = *input.Price
	}
	if input.ImageURL != nil {
		record.ImageURL = *input.ImageURL
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("vinyl record updated", "record_id", id)
	return record, nil
}

// Delete remove um disco; reviews caem em cascata
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("vinyl record deleted", "record_id", id)
	return nil
}

// ImportFromDiscogs busca releases aleatórios no catálogo externo e cria
// os que ainda não existem, em uma única transação. Uma falha no meio do
// lote desfaz o lote inteiro. Retorna quantos discos foram criados.
func (s *CatalogService) ImportFromDiscogs(ctx context.Context, limit int) (int, error) {
	if limit < 1 {
		return 0, errors.ErrInvalidPagination
	}

	releases, err := s.source.FetchRandomReleases(ctx, limit)
	if err != nil {
		return 0, err
	}

	created := 0
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, release := range releases {
			existing, err := s.recordRepo.FindByNameAndAuthor(txCtx, release.Title, release.AuthorName)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			record := &entities.VinylRecord{
				Name:        release.Title,
				AuthorName:  release.AuthorName,
				Description: "Imported from Discogs",
				Price:       defaultImportPrice,
				ImageURL:    release.ImageURL,
			}
			if err := s.recordRepo.Create(txCtx, record); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("discogs import finished", "requested", limit, "created", created)
	return created, nil
}
