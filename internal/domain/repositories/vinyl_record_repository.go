package repositories

import (
	"context"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
)

// SortField enumera os campos aceitos para ordenação na busca do catálogo
type SortField string

const (
	SortByPrice      SortField = "price"
	SortByName       SortField = "name"
	SortByAuthorName SortField = "authorName"
)

// IsValid verifica se o campo de ordenação pertence ao conjunto permitido
func (f SortField) IsValid() bool {
	switch f {
	case SortByPrice, SortByName, SortByAuthorName:
		return true
	}
	return false
}

// SortOrder enumera as direções de ordenação aceitas
type SortOrder string

const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// IsValid verifica se a direção de ordenação é aceita
func (o SortOrder) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// SearchFilters contém os filtros da busca paginada do catálogo
type SearchFilters struct {
	Term   string
	SortBy SortField
	Order  SortOrder
	Page   int
	Limit  int
}

// VinylRecordRepository define a interface para persistência do catálogo.
// Os métodos Find* retornam (nil, nil) quando o disco não existe.
type VinylRecordRepository interface {
	Create(ctx context.Context, record *entities.VinylRecord) error
	FindByID(ctx context.Context, id string) (*entities.VinylRecord, error)
	FindByNameAndAuthor(ctx context.Context, name, authorName string) (*entities.VinylRecord, error)
	Update(ctx context.Context, record *entities.VinylRecord) error

	// Delete retorna errors.ErrRecordNotFound quando nenhuma linha é afetada
	Delete(ctx context.Context, id string) error

	// List retorna uma página de discos ordenada por criação decrescente,
	// com a média de score das reviews, e o total de discos do catálogo
	List(ctx context.Context, page, limit int) ([]*entities.VinylRecord, int64, error)

	// Search aplica filtro por substring (case-insensitive) em name/authorName
	// e ordenação validada. Filtros devem chegar aqui já validados.
	Search(ctx context.Context, filters SearchFilters) ([]*entities.VinylRecord, int64, error)
}
