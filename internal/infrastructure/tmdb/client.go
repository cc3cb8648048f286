package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cinema-backend/internal/config"
)

// Movie là một phim trong popular feed
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
}

// PageResult là một trang của popular feed
type PageResult struct {
	Page       int     `json:"page"`
	Results    []Movie `json:"results"`
	TotalPages int     `json:"total_pages"`
}

// CrewMember là một thành viên đoàn phim
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits là danh sách crew của một phim
type Credits struct {
	Crew []CrewMember `json:"crew"`
}

// Client định nghĩa contract với TMDb API
// Cho phép swap fake implementation trong tests
type Client interface {
	FetchPopular(ctx context.Context, page int) (*PageResult, error)
	FetchCredits(ctx context.Context, movieID int64) (*Credits, error)
}

type httpClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient tạo TMDb HTTP client
func NewClient(cfg *config.TMDBConfig) Client {
	return &httpClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *httpClient) FetchPopular(ctx context.Context, page int) (*PageResult, error) {
	url := fmt.Sprintf("%s/movie/popular?api_key=%s&page=%d", c.baseURL, c.apiKey, page)

	var result PageResult
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, fmt.Errorf("fetch popular page %d: %w", page, err)
	}

	return &result, nil
}

func (c *httpClient) FetchCredits(ctx context.Context, movieID int64) (*Credits, error) {
	url := fmt.Sprintf("%s/movie/%d/credits?api_key=%s", c.baseURL, movieID, c.apiKey)

	var result Credits
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, fmt.Errorf("fetch credits for movie %d: %w", movieID, err)
	}

	return &result, nil
}

func (c *httpClient) getJSON(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
