package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"motodesign/pkg/config"
	"motodesign/pkg/models"
)

// UpstreamError is returned when the store (through the proxy boundary)
// answers with a non-success status or an unreadable body.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

// Client fetches listings through the proxy boundary and maps them into
// normalized Records. Each call is independent; concurrent calls simply
// issue independent request sequences.
type Client struct {
	BaseURL       string // proxy endpoint, e.g. http://host/api/bikes
	HTTP          *http.Client
	PageSize      int
	RetryAttempts int
	RetryDelay    time.Duration
}

func NewClient(baseURL string, cfg config.API) *Client {
	return &Client{
		BaseURL:       baseURL,
		HTTP:          &http.Client{Timeout: 12 * time.Second},
		PageSize:      cfg.PageSize,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
	}
}

// listingsPage is one page of a collection response. A non-empty Offset
// means more pages remain.
type listingsPage struct {
	Records []airtableRecord `json:"records"`
	Offset  string           `json:"offset"`
}

// FetchCollection walks the store page by page and returns the full
// normalized collection. A failure anywhere in the page sequence aborts
// the attempt and the whole sequence is retried from scratch with a fresh
// accumulator, up to RetryAttempts retries with a fixed delay. The attempt
// counter is local to this call. The last error surfaces after exhaustion.
func (c *Client) FetchCollection(ctx context.Context) ([]models.Record, error) {
	var lastErr error

	for attempt := 0; attempt <= c.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.RetryDelay):
			}
		}

		records, err := c.fetchAllPages(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func (c *Client) fetchAllPages(ctx context.Context) ([]models.Record, error) {
	var all []models.Record

	offset := ""
	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Records {
			all = append(all, normalizeRecord(raw))
		}

		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

func (c *Client) fetchPage(ctx context.Context, offset string) (*listingsPage, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base url: %w", err)
	}

	q := u.Query()
	q.Set("pageSize", strconv.Itoa(c.PageSize))

	// The store pre-filters unavailable listings and pre-sorts featured
	// first, newest year first. This is a hint only; the query engine
	// re-sorts whenever the user picks a sort method.
	q.Set("filterByFormula", "{available} = TRUE()")
	q.Set("sort[0][field]", "featured")
	q.Set("sort[0][direction]", "desc")
	q.Set("sort[1][field]", "year")
	q.Set("sort[1][direction]", "desc")

	if offset != "" {
		q.Set("offset", offset)
	}
	u.RawQuery = q.Encode()

	var page listingsPage
	if err := c.getJSON(ctx, u.String(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchRecord fetches a single listing by its record ID. No retry: single
// page, callers handle the error (or skip it, for related listings).
func (c *Client) FetchRecord(ctx context.Context, id string) (models.Record, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return models.Record{}, fmt.Errorf("gateway: parse base url: %w", err)
	}
	q := u.Query()
	q.Set("id", id)
	u.RawQuery = q.Encode()

	var raw airtableRecord
	if err := c.getJSON(ctx, u.String(), &raw); err != nil {
		return models.Record{}, err
	}
	return normalizeRecord(raw), nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	return nil
}
