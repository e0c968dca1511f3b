package github

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

	"github.com/dshills/trendwatch/internal/trend"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Client provides access to the GitHub search API.
type Client struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates a new GitHub client. An empty token sends unauthenticated
// requests; an empty apiURL selects DefaultAPIURL.
func NewClient(token, apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		token:   token,
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned when the API answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether err is a 401 or 403 from the API.
func IsAuthError(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden
}

type searchResponse struct {
	TotalCount int          `json:"total_count"`
	Items      []repository `json:"items"`
}

type repository struct {
	FullName        string    `json:"full_name"`
	StargazersCount int       `json:"stargazers_count"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// SearchQuery builds the search qualifier for one topic.
func SearchQuery(topic, createdAfter string) string {
	q := "topic:" + topic
	if createdAfter != "" {
		q += " created:>" + createdAfter
	}
	return q
}

// SearchRepositories returns up to perPage repositories tagged with topic and
// created after createdAfter (YYYY-MM-DD), most starred first.
func (c *Client) SearchRepositories(ctx context.Context, topic, createdAfter string, perPage int) ([]trend.Candidate, error) {
	params := url.Values{}
	params.Set("q", SearchQuery(topic, createdAfter))
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	reqURL := fmt.Sprintf("%s/search/repositories?%s", c.apiURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching topic %s: %w", topic, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	candidates := make([]trend.Candidate, 0, len(result.Items))
	for _, item := range result.Items {
		desc := trend.NoDescription
		if item.Description != nil && *item.Description != "" {
			desc = *item.Description
		}
		candidates = append(candidates, trend.Candidate{
			FullName:    item.FullName,
			Stars:       item.StargazersCount,
			Description: desc,
			URL:         item.HTMLURL,
			CreatedAt:   item.CreatedAt,
			Topic:       topic,
		})
	}
	return candidates, nil
}

// TrendingQuery bounds a Trending call.
type TrendingQuery struct {
	Topics       []string
	MaxTopics    int    // only the first MaxTopics topics are queried
	CreatedAfter string // YYYY-MM-DD
	PerPage      int
	Limit        int // cap on the combined result
}

// TopicResult is the outcome of the search for a single topic.
type TopicResult struct {
	Topic string
	Count int
	Err   error
}

// Trending searches each consulted topic in order and concatenates the
// results, truncated to q.Limit. A failed topic contributes nothing; its
// error is reported in the matching TopicResult. Results are not
// deduplicated across topics.
func (c *Client) Trending(ctx context.Context, q TrendingQuery) ([]trend.Candidate, []TopicResult) {
	topics := q.Topics
	if q.MaxTopics > 0 && len(topics) > q.MaxTopics {
		topics = topics[:q.MaxTopics]
	}

	var all []trend.Candidate
	results := make([]TopicResult, 0, len(topics))
	for _, topic := range topics {
		found, err := c.SearchRepositories(ctx, topic, q.CreatedAfter, q.PerPage)
		if err != nil {
			results = append(results, TopicResult{Topic: topic, Err: err})
			continue
		}
		results = append(results, TopicResult{Topic: topic, Count: len(found)})
		all = append(all, found...)
	}

	if q.Limit > 0 && len(all) > q.Limit {
		all = all[:q.Limit]
	}
	return all, results
}
