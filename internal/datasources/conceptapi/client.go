package conceptapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

var _ datasources.ConceptMetadataFetcher = (*Client)(nil)

// Client fetches per-concept metadata from the backend concept API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new concept API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) FetchConceptMetadata(ctx context.Context, slug string) (domain.ConceptMetadata, error) {
	reqURL := fmt.Sprintf("%s/concept_data?id_or_slug=%s", c.baseURL, url.QueryEscape(slug))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.ConceptMetadata{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ConceptMetadata{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.ConceptMetadata{}, fmt.Errorf("concept API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result domain.ConceptMetadata
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.ConceptMetadata{}, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}
