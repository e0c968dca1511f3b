package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/dshills/trendwatch/internal/trend"
)

// DefaultLimit is the number of items taken from each feed.
const DefaultLimit = 5

const userAgent = "trendwatch/1.0 (+https://github.com/dshills/trendwatch)"

// Reader pulls the newest items from a fixed list of feeds.
type Reader struct {
	urls    []string
	limit   int
	httpCli *http.Client
}

// FeedResult reports what one feed contributed.
type FeedResult struct {
	URL   string
	Title string
	Count int
	Err   error
}

// New creates a Reader. limit <= 0 selects DefaultLimit.
func New(urls []string, limit int, timeout time.Duration) *Reader {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Reader{
		urls:    urls,
		limit:   limit,
		httpCli: &http.Client{Timeout: timeout},
	}
}

// Fetch reads every feed in order. A feed that cannot be fetched or parsed
// contributes no signals; its error is kept in the matching FeedResult.
func (r *Reader) Fetch(ctx context.Context) ([]trend.Signal, []FeedResult) {
	parser := gofeed.NewParser()
	var signals []trend.Signal
	results := make([]FeedResult, 0, len(r.urls))

	for _, u := range r.urls {
		feed, err := r.fetchOne(ctx, parser, u)
		if err != nil {
			results = append(results, FeedResult{URL: u, Err: err})
			continue
		}

		source := strings.TrimSpace(feed.Title)
		count := 0
		for _, it := range feed.Items {
			if count >= r.limit {
				break
			}
			title := strings.TrimSpace(it.Title)
			if title == "" {
				continue
			}
			signals = append(signals, trend.Signal{
				Title:       title,
				Link:        strings.TrimSpace(it.Link),
				Source:      source,
				PublishedAt: published(it),
			})
			count++
		}
		results = append(results, FeedResult{URL: u, Title: source, Count: count})
	}
	return signals, results
}

func (r *Reader) fetchOne(ctx context.Context, parser *gofeed.Parser, u string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	// Reddit and several blog hosts reject the default Go user agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed error (status %d)", resp.StatusCode)
	}

	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return feed, nil
}

func published(it *gofeed.Item) time.Time {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.UTC()
	}
	return time.Time{}
}
