package ports

import "context"

// ExternalRelease é um disco vindo de um catálogo externo (Discogs)
type ExternalRelease struct {
	Title      string
	AuthorName string
	ImageURL   string
}

// CatalogSource define a interface com um catálogo externo usado para
// importar discos
type CatalogSource interface {
	FetchRandomReleases(ctx context.Context, limit int) ([]ExternalRelease, error)
}
