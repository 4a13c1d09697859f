package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// PageLimit is the Shopify maximum page size.
	PageLimit = 250

	// politeness delay between page requests
	defaultDelay = 700 * time.Millisecond
)

// Client walks a Shopify /products.json catalog page by page until an
// empty page. Products are kept as raw JSON so the importer's tolerant
// parser sees exactly what the store served.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Delay   time.Duration
	Logger  *log.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Delay:   defaultDelay,
	}
}

type productsPage struct {
	Products []json.RawMessage `json:"products"`
}

// FetchAll retrieves the full catalog. A failed page aborts the walk
// but the pages already collected are still returned, so a flaky store
// yields a partial catalog instead of nothing.
func (c *Client) FetchAll(ctx context.Context) ([]json.RawMessage, error) {
	var products []json.RawMessage

	for page := 1; ; page++ {
		chunk, err := c.fetchPage(ctx, page)
		if err != nil {
			return products, fmt.Errorf("page %d: %w", page, err)
		}
		if len(chunk) == 0 {
			break
		}

		products = append(products, chunk...)
		c.logf("page %d: %d products (%d total)", page, len(chunk), len(products))

		select {
		case <-ctx.Done():
			return products, ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]json.RawMessage, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("limit", strconv.Itoa(PageLimit))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body productsPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

func (c *Client) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
