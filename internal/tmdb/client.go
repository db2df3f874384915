// Package tmdb is the catalog client: paged popular-movie listings,
// optional per-movie detail fetches, and the genre dictionary.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrMissingAPIKey aborts an ingestion run before any page.
	ErrMissingAPIKey = errors.New("TMDB_API_KEY is not set")
	// ErrUpstreamUnavailable covers any non-success catalog response.
	ErrUpstreamUnavailable = errors.New("catalog request failed")
)

type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
	limiter  *rate.Limiter
	log      *zap.Logger
}

func NewClient(config utils.TMDbConfig, log *zap.Logger) *Client {
	var limiter *rate.Limiter
	if config.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RPS), 1)
	}

	return &Client{
		baseURL:  config.BaseURL,
		apiKey:   config.APIKey,
		language: config.Language,
		client:   &http.Client{Timeout: 15 * time.Second},
		limiter:  limiter,
		log:      log.With(zap.String("client", "tmdb")),
	}
}

// popularResponse is the paged listing envelope.
type popularResponse struct {
	Page       int            `json:"page"`
	Results    []MovieSummary `json:"results"`
	TotalPages int            `json:"total_pages"`
}

// PopularMovies fetches one page of the popular listing.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]MovieSummary, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be positive, got %d", page)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var resp popularResponse
	if err := c.get(ctx, "/movie/popular", query, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// MovieDetails fetches the full record for one movie.
func (c *Client) MovieDetails(ctx context.Context, tmdbID int64) (*MovieDetails, error) {
	var details MovieDetails
	path := fmt.Sprintf("/movie/%d", tmdbID)
	if err := c.get(ctx, path, url.Values{}, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// GenreList fetches the genre id-to-name dictionary.
func (c *Client) GenreList(ctx context.Context) ([]Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, &resp); err != nil {
		return nil, err
	}

	return resp.Genres, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.log.Warn("Catalog request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", time.Since(start)),
		)
		return fmt.Errorf("%w: %s returned %s", ErrUpstreamUnavailable, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	c.log.Debug("Catalog request",
		zap.String("path", path),
		zap.Duration("latency", time.Since(start)),
	)

	return nil
}
