// Package catalog provides the client for the upstream TCG catalog and
// pricing service (RapidAPI). Every list endpoint answers with a
// {data, paging} envelope; callers decode data into their own types.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/codyseavey/tcg-roi/internal/metrics"
)

const (
	defaultBaseURL = "https://pokemon-tcg-api.p.rapidapi.com"
	rapidAPIHost   = "pokemon-tcg-api.p.rapidapi.com"

	defaultTimeout = 30 * time.Second

	// defaultRequestsPerSecond paces discovery-style calls so bulk
	// pagination does not hammer the upstream.
	defaultRequestsPerSecond = 2
)

// Paging reports the upstream's page cursor for list endpoints.
type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Envelope is the generic list response shape.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Paging Paging          `json:"paging"`
}

// DecodeData unmarshals the data array into v.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Fetcher is the single capability the analysis services consume.
type Fetcher interface {
	Fetch(path string, params map[string]string) (*Envelope, error)
}

// Client talks to the catalog service with RapidAPI authentication.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a catalog client authenticated with the given
// RapidAPI key.
func NewClient(apiKey string) *Client {
	http := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(defaultTimeout).
		SetHeader("X-RapidAPI-Key", apiKey).
		SetHeader("X-RapidAPI-Host", rapidAPIHost).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    http,
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
	}
}

// SetBaseURL overrides the upstream URL, used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.http.SetBaseURL(baseURL)
}

// Fetch performs a GET against a list endpoint and returns the decoded
// envelope. Non-2xx responses are errors; retries are the caller's
// concern, not the client's.
func (c *Client) Fetch(path string, params map[string]string) (*Envelope, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	resp, err := c.http.R().SetQueryParams(params).Get(path)
	metrics.UpstreamRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode())).Inc()
	if resp.IsError() {
		return nil, fmt.Errorf("catalog API returned status %d for %s", resp.StatusCode(), path)
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return &env, nil
}

// Ping makes a minimal request to verify connectivity and credentials.
func (c *Client) Ping() error {
	_, err := c.Fetch("/products", map[string]string{"per_page": "1"})
	return err
}
