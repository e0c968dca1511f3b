package trend

import "time"

// NoDescription replaces an absent upstream description.
const NoDescription = "No description"

// Candidate is one repository returned by the source search query.
type Candidate struct {
	FullName    string    `json:"fullName"`
	Stars       int       `json:"stars"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
	Topic       string    `json:"topic,omitempty"`
}

// CreatedDate returns the creation date as YYYY-MM-DD in UTC.
func (c Candidate) CreatedDate() string {
	if c.CreatedAt.IsZero() {
		return ""
	}
	return c.CreatedAt.UTC().Format("2006-01-02")
}

// Entry is a candidate together with its annotation.
type Entry struct {
	Rank      int       `json:"rank"`
	Candidate Candidate `json:"candidate"`
	Analysis  []string  `json:"analysis"`
}

// Signal is a community post picked up from an RSS or Atom feed.
type Signal struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

// SourceStatus records how one upstream query fared during a run.
type SourceStatus struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
	Error string `json:"error,omitempty"`
}

// Report is the top-level output of a run.
type Report struct {
	Tool        string         `json:"tool"`
	Version     string         `json:"version"`
	RunID       string         `json:"runId"`
	Locale      string         `json:"locale"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Entries     []Entry        `json:"entries"`
	Signals     []Signal       `json:"signals,omitempty"`
	Sources     []SourceStatus `json:"sources,omitempty"`
}
