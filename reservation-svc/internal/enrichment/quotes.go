package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"foodiefind/reservation-svc/internal/domain"
)

var fallbackQuotes = []domain.Quote{
	{Content: "Food is our common ground, a universal experience", Author: "James Beard"},
	{Content: "Good food is the foundation of genuine happiness", Author: "Auguste Escoffier"},
	{Content: "Life is too short for bad food", Author: "Julia Child"},
	{Content: "Food brings people together on many different levels", Author: "Emeril Lagasse"},
	{Content: "Cooking is love made visible", Author: "Anonymous"},
	{Content: "Food is symbolic of love when words are inadequate", Author: "Alan D. Wolfelt"},
	{Content: "The discovery of a new dish does more for human happiness than the discovery of a new star", Author: "Jean Anthelme Brillat-Savarin"},
	{Content: "Food is the thread that weaves our memories together", Author: "Anonymous"},
	{Content: "Great food is like music you can taste", Author: "Anonymous"},
	{Content: "A recipe has no soul. You must bring soul to the recipe", Author: "Thomas Keller"},
}

func FallbackQuotes() []domain.Quote {
	return append([]domain.Quote{}, fallbackQuotes...)
}

type QuotesClient struct {
	Client  HTTPClient
	BaseURL string
}

func NewQuotesClient(client HTTPClient, baseURL string) *QuotesClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &QuotesClient{Client: client, BaseURL: baseURL}
}

// FetchQuotes returns up to ten food quotes. Any failure yields the
// built-in list instead of an error.
func (c *QuotesClient) FetchQuotes(ctx context.Context) []domain.Quote {
	quotes, err := c.fetch(ctx)
	if err != nil {
		log.Printf("Warning: failed to fetch quotes, using fallback data: %v", err)
		return FallbackQuotes()
	}
	return quotes
}

func (c *QuotesClient) fetch(ctx context.Context) ([]domain.Quote, error) {
	q := url.Values{}
	q.Set("tags", "food")
	q.Set("limit", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quotes api status %d", resp.StatusCode)
	}

	var payload struct {
		Results []domain.Quote `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	if payload.Results == nil {
		return []domain.Quote{}, nil
	}
	return payload.Results, nil
}
