package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kelydev/explorador/config"
	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/models"
)

const sparqlResultsJSON = "application/sparql-results+json"

var (
	// ErrEndpointStatus is returned when the endpoint answers with a non 2xx status.
	ErrEndpointStatus = errors.New("sparql endpoint returned an error status")
	// ErrUnexpectedResponse is returned when the body is not a SPARQL JSON result.
	ErrUnexpectedResponse = errors.New("unexpected sparql response format")
)

// Client runs queries against a SPARQL endpoint.
type Client struct {
	endpoint     string
	maxGetLength int
	http         *http.Client
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewClient builds a client for endpoint. Queries whose GET URL would exceed
// maxGetLength are sent by POST.
func NewClient(endpoint string, timeout time.Duration, maxGetLength int, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:     endpoint,
		maxGetLength: maxGetLength,
		http:         &http.Client{Timeout: timeout},
		logger:       logger,
		metrics:      m,
	}
}

// Connect initializes the SPARQL client from cfg and checks the endpoint is
// reachable.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*Client, error) {
	logger.Info("initializing sparql endpoint connection", zap.String("endpoint", cfg.SparqlEndpoint))

	c := NewClient(cfg.SparqlEndpoint, cfg.SparqlTimeout, cfg.SparqlMaxGetLength, logger, m)
	if err := c.Ping(ctx); err != nil {
		return c, fmt.Errorf("failed to ping sparql endpoint: %w", err)
	}

	logger.Info("sparql endpoint connection successfully established")
	return c, nil
}

// Ping issues a trivial ASK query.
func (c *Client) Ping(ctx context.Context) error {
	rs, err := c.Select(ctx, "ASK {}")
	if err != nil {
		return err
	}
	if rs.Boolean == nil {
		return fmt.Errorf("ping: %w", ErrUnexpectedResponse)
	}
	return nil
}

// Select runs query and decodes the JSON result set.
func (c *Client) Select(ctx context.Context, query string) (*models.ResultSet, error) {
	start := time.Now()
	rs, err := c.do(ctx, query)
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.ObserveSparql(status, time.Since(start).Seconds())
	if err != nil {
		c.logger.Debug("sparql query failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}
	return rs, nil
}

func (c *Client) do(ctx context.Context, query string) (*models.ResultSet, error) {
	req, err := c.newRequest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error building sparql request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error querying sparql endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %d %s", ErrEndpointStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rs models.ResultSet
	var raw struct {
		Results *json.RawMessage `json:"results"`
		Boolean *bool            `json:"boolean"`
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading sparql response: %w", err)
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if raw.Results == nil && raw.Boolean == nil {
		return nil, fmt.Errorf("%w: missing results", ErrUnexpectedResponse)
	}
	if err := json.Unmarshal(body, &rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return &rs, nil
}

func (c *Client) newRequest(ctx context.Context, query string) (*http.Request, error) {
	form := url.Values{}
	form.Set("query", query)
	encoded := form.Encode()

	getURL := c.endpoint + "?" + encoded
	if strings.Contains(c.endpoint, "?") {
		getURL = c.endpoint + "&" + encoded
	}

	var req *http.Request
	var err error
	if len(getURL) <= c.maxGetLength {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, getURL, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(encoded))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", sparqlResultsJSON)
	return req, nil
}
