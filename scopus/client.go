package scopus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/models"
)

// DefaultCount is the number of entries requested per keyword search.
const DefaultCount = 25

var (
	// ErrNoResults is returned when Scopus rejects the query with 400, which it
	// does for keyword combinations that match nothing.
	ErrNoResults = errors.New("scopus returned no results")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("scopus api key not configured")
)

// Client talks to the Scopus Search API.
type Client struct {
	baseURL      string
	apiKey       string
	afiliaciones []string
	http         *http.Client
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewClient builds a Scopus client restricted to the given affiliations.
func NewClient(baseURL, apiKey string, afiliaciones []string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		afiliaciones: afiliaciones,
		http:         &http.Client{Timeout: timeout},
		logger:       logger,
		metrics:      m,
	}
}

// KeywordQuery builds the Scopus query for keywords restricted to the
// configured affiliations.
func (c *Client) KeywordQuery(keywords []string) string {
	var keys []string
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, fmt.Sprintf(`KEY("%s")`, escape(k)))
		}
	}
	return fmt.Sprintf("(%s) AND (%s)", strings.Join(keys, " AND "), c.affilQuery())
}

func (c *Client) affilQuery() string {
	affs := make([]string, 0, len(c.afiliaciones))
	for _, a := range c.afiliaciones {
		affs = append(affs, fmt.Sprintf(`AFFIL("%s")`, escape(a)))
	}
	return strings.Join(affs, " OR ")
}

// SearchByKeywords returns the publications matching every keyword.
func (c *Client) SearchByKeywords(ctx context.Context, keywords []string, start, count int) (*models.ScopusResponse, error) {
	return c.search(ctx, c.KeywordQuery(keywords), start, count)
}

// Publications lists publications of the configured affiliations.
func (c *Client) Publications(ctx context.Context, start, count int) (*models.ScopusResponse, error) {
	return c.search(ctx, c.affilQuery(), start, count)
}

func (c *Client) search(ctx context.Context, query string, start, count int) (*models.ScopusResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if count <= 0 {
		count = DefaultCount
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("start", strconv.Itoa(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error building scopus request: %w", err)
	}
	req.Header.Set("X-ELS-APIKey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncScopus("error")
		return nil, fmt.Errorf("error querying scopus: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		c.metrics.IncScopus("empty")
		return nil, ErrNoResults
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.IncScopus("error")
		return nil, fmt.Errorf("scopus returned status %d", resp.StatusCode)
	}

	var out models.ScopusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.metrics.IncScopus("error")
		return nil, fmt.Errorf("error decoding scopus response: %w", err)
	}
	c.metrics.IncScopus("ok")
	return &out, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
