package monitor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/dshills/trendwatch/internal/feeds"
	"github.com/dshills/trendwatch/internal/github"
	"github.com/dshills/trendwatch/internal/output"
	"github.com/dshills/trendwatch/internal/redact"
	"github.com/dshills/trendwatch/internal/sink"
	"github.com/dshills/trendwatch/internal/trend"
)

// Source yields trending repository candidates.
type Source interface {
	Trending(ctx context.Context, q github.TrendingQuery) ([]trend.Candidate, []github.TopicResult)
}

// SignalSource yields community signals.
type SignalSource interface {
	Fetch(ctx context.Context) ([]trend.Signal, []feeds.FeedResult)
}

// Notifier delivers the report text to a chat channel.
type Notifier interface {
	Post(ctx context.Context, title, text string) error
}

// Extra artifact formats written next to the markdown report.
const (
	FormatJSON = "json"
	FormatDocx = "docx"
)

// ValidateFormats rejects unknown extra artifact formats. "md" and "text"
// are accepted and ignored since the markdown report is always written.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		switch strings.ToLower(f) {
		case FormatJSON, FormatDocx, "md", "text", "markdown":
		default:
			return fmt.Errorf("unsupported report format: %s (valid: json, docx)", f)
		}
	}
	return nil
}

// Monitor holds everything one run needs. Source and Files are required;
// Signals and Notifier may be nil.
type Monitor struct {
	Source    Source
	Signals   SignalSource
	Notifier  Notifier
	Files     sink.Files
	Annotator trend.Annotator
	Query     github.TrendingQuery
	Formats   []string

	// DryRun prints the report without writing files or posting it.
	DryRun bool

	Stdout io.Writer
	Logger *zap.Logger
	Now    func() time.Time
}

// Result describes a completed run.
type Result struct {
	Report    *trend.Report
	Text      string
	Path      string   // markdown report, empty on a dry run
	Artifacts []string // extra formats
	Delivered bool     // webhook accepted the message
}

// Run performs one monitor pass. The only error returned is a failure to
// write the markdown report; everything else is logged.
func (m *Monitor) Run(ctx context.Context) (*Result, error) {
	log := m.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	stdout := m.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	if err := ValidateFormats(m.Formats); err != nil {
		return nil, err
	}

	log.Info("searching repositories",
		zap.Strings("topics", consulted(m.Query)),
		zap.String("createdAfter", m.Query.CreatedAfter))

	candidates, topics := m.Source.Trending(ctx, m.Query)
	var statuses []trend.SourceStatus
	for _, tr := range topics {
		if tr.Err != nil {
			log.Warn("topic search failed",
				zap.String("topic", tr.Topic),
				zap.Bool("auth", github.IsAuthError(tr.Err)),
				zap.String("error", redact.Error(tr.Err)))
		} else {
			log.Debug("topic searched", zap.String("topic", tr.Topic), zap.Int("count", tr.Count))
		}
		statuses = append(statuses, trend.SourceStatus{
			Name:  "github:" + tr.Topic,
			Items: tr.Count,
			Error: redact.Error(tr.Err),
		})
	}

	var signals []trend.Signal
	if m.Signals != nil {
		var fetched []feeds.FeedResult
		signals, fetched = m.Signals.Fetch(ctx)
		for _, fr := range fetched {
			name := fr.Title
			if name == "" {
				name = redact.Secrets(fr.URL)
			}
			if fr.Err != nil {
				log.Warn("feed fetch failed", zap.String("feed", name), zap.String("error", redact.Error(fr.Err)))
			}
			statuses = append(statuses, trend.SourceStatus{
				Name:  "feed:" + name,
				Items: fr.Count,
				Error: redact.Error(fr.Err),
			})
		}
	}

	stamp := now()
	report := trend.Build(candidates, signals, m.Annotator, stamp)
	report.Sources = statuses
	text := output.Render(report)

	res := &Result{Report: report, Text: text}
	log.Info("report built",
		zap.String("runId", report.RunID),
		zap.Int("entries", len(report.Entries)),
		zap.Int("signals", len(report.Signals)))

	if _, err := fmt.Fprintln(stdout, text); err != nil {
		log.Warn("printing report", zap.Error(err))
	}

	if m.DryRun {
		log.Info("dry run, skipping file and webhook")
		return res, nil
	}

	mdw, err := output.GetWriter("md")
	if err != nil {
		return res, err
	}
	path, size, err := m.save(mdw, report, stamp)
	if err != nil {
		return res, fmt.Errorf("saving report: %w", err)
	}
	res.Path = path
	log.Info("report saved", zap.String("path", path), zap.String("size", humanize.Bytes(size)))

	res.Artifacts = m.writeArtifacts(report, stamp, log)

	m.deliver(ctx, report, text, res, log)
	return res, nil
}

// save renders report with w into the dated file for w's extension.
func (m *Monitor) save(w output.Writer, report *trend.Report, stamp time.Time) (string, uint64, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf, report); err != nil {
		return "", 0, err
	}
	p, err := m.Files.Write(stamp, w.Ext(), buf.Bytes())
	if err != nil {
		return "", 0, err
	}
	return p, uint64(buf.Len()), nil
}

// writeArtifacts writes the extra formats. Failures are logged and skipped.
func (m *Monitor) writeArtifacts(report *trend.Report, stamp time.Time, log *zap.Logger) []string {
	var paths []string
	seen := map[string]bool{}
	for _, f := range m.Formats {
		f = strings.ToLower(f)
		if seen[f] || isMarkdown(f) {
			continue
		}
		seen[f] = true

		var (
			p    string
			size uint64
		)
		if f == FormatDocx {
			p = m.Files.Path(stamp, output.DocxExt)
			if err := output.SaveDocx(report, p); err != nil {
				log.Error("saving docx report", zap.Error(err))
				continue
			}
			if info, err := os.Stat(p); err == nil {
				size = uint64(info.Size())
			}
		} else {
			w, err := output.GetWriter(f)
			if err != nil {
				log.Error("unsupported artifact format", zap.String("format", f), zap.Error(err))
				continue
			}
			p, size, err = m.save(w, report, stamp)
			if err != nil {
				log.Error("saving artifact", zap.String("format", f), zap.Error(err))
				continue
			}
		}
		paths = append(paths, p)
		log.Info("artifact saved",
			zap.String("format", f),
			zap.String("path", p),
			zap.String("size", humanize.Bytes(size)))
	}
	return paths
}

func isMarkdown(format string) bool {
	switch format {
	case "md", "text", "markdown":
		return true
	}
	return false
}

func (m *Monitor) deliver(ctx context.Context, report *trend.Report, text string, res *Result, log *zap.Logger) {
	if m.Notifier == nil {
		log.Warn("webhook not configured, skipping delivery")
		return
	}
	l, err := trend.LookupLocale(report.Locale)
	if err != nil {
		l = trend.English
	}
	if err := m.Notifier.Post(ctx, l.WebhookTitle, text); err != nil {
		log.Error("webhook delivery failed", zap.String("error", redact.Error(err)))
		return
	}
	res.Delivered = true
	log.Info("webhook delivered")
}

func consulted(q github.TrendingQuery) []string {
	if q.MaxTopics > 0 && len(q.Topics) > q.MaxTopics {
		return q.Topics[:q.MaxTopics]
	}
	return q.Topics
}
