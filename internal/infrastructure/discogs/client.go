package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rcampos/vinylstore-backend/internal/domain/ports"
)

const searchURL = "https://api.discogs.com/database/search"

// fetchPageSize é o tamanho da página pedida ao Discogs antes do sorteio
const fetchPageSize = 50

// Client implementa ports.CatalogSource sobre a API de busca do Discogs
type Client struct {
	token      string
	httpClient *http.Client
}

// NewClient cria um novo Client
func NewClient(token string) ports.CatalogSource {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) FetchRandomReleases(ctx context.Context, limit int) ([]ports.ExternalRelease, error) {
	q := url.Values{}
	q.Set("token", c.token)
	q.Set("type", "release")
	q.Set("per_page", strconv.Itoa(fetchPageSize))
	q.Set("page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discogs search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discogs search failed with status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			Title    string `json:"title"`
			CoverURL string `json:"cover_image"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode discogs response: %w", err)
	}

	releases := make([]ports.ExternalRelease, 0, len(body.Results))
	for _, r := range body.Results {
		releases = append(releases, parseRelease(r.Title, r.CoverURL))
	}

	rand.Shuffle(len(releases), func(i, j int) {
		releases[i], releases[j] = releases[j], releases[i]
	})

	if limit < len(releases) {
		releases = releases[:limit]
	}

	return releases, nil
}

// parseRelease separa o título do Discogs ("Artista - Título") em autor e
// nome. Sem separador, o autor fica desconhecido.
func parseRelease(title, coverURL string) ports.ExternalRelease {
	author := "Unknown Artist"
	name := title

	for i := 0; i+2 < len(title); i++ {
		if title[i] == ' ' && title[i+1] == '-' && title[i+2] == ' ' {
			author = title[:i]
			name = title[i+3:]
			break
		}
	}

	return ports.ExternalRelease{
		Title:      name,
		AuthorName: author,
		ImageURL:   coverURL,
	}
}
