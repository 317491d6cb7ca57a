// Package categorize implements the client for the natural-language expense
// categorization service and the post-processing of its responses.
//
// The service extracts an amount, a description and a suggested category
// from free text like "12 bucks for lunch yesterday". Its answers are
// unreliable by nature, so everything it returns is post-processed with the
// same currency and date utilities the rest of the backend uses before a
// transaction is created from it.
package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// MinimumConfidence is the confidence below which a suggestion is not
// applied automatically. The response is still returned to the client so
// the user can confirm it manually.
const MinimumConfidence = 0.5

// Request is the payload sent to the categorization service.
type Request struct {
	Input      string   `json:"input"`      // The free-form user input
	Categories []string `json:"categories"` // Names of the available categories
}

// Result is the response of the categorization service.
type Result struct {
	Amount            decimal.Decimal `json:"amount"`            // The extracted amount
	Description       string          `json:"description"`       // A cleaned-up description
	SuggestedCategory string          `json:"suggestedCategory"` // The suggested category name
	Confidence        float64         `json:"confidence"`        // Confidence of the suggestion, 0 to 1
	Date              string          `json:"date,omitempty"`    // Date in YYYY-MM-DD form or a relative phrase, may be empty
}

// Client calls the categorization service.
type Client struct {
	url    string
	client *http.Client
}

// NewClient returns a client for the categorization service at the given URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Categorize sends the user input to the categorization service.
//
// Network and decoding failures are returned as errors; a low-confidence or
// zero-amount result is not an error, callers inspect the result and fall
// back to manual entry.
func (c *Client) Categorize(ctx context.Context, input string, categories []string) (Result, error) {
	body, err := json.Marshal(Request{Input: input, Categories: categories})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("categorization request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("categorization service returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("could not decode categorization response: %w", err)
	}

	return result, nil
}
