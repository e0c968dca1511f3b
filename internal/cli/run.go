package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/trendwatch/internal/config"
	"github.com/dshills/trendwatch/internal/feeds"
	"github.com/dshills/trendwatch/internal/github"
	"github.com/dshills/trendwatch/internal/monitor"
	"github.com/dshills/trendwatch/internal/redact"
	"github.com/dshills/trendwatch/internal/sink"
	"github.com/dshills/trendwatch/internal/trend"
)

// Run flags
var (
	flagTopics       string
	flagMaxTopics    int
	flagSince        string
	flagPerPage      int
	flagLimit        int
	flagReportDir    string
	flagLocale       string
	flagFormats      string
	flagFeeds        string
	flagLiteralMatch bool
	flagDryRun       bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTopics, "topics", "", "GitHub topics to search (comma-separated)")
	cmd.Flags().IntVar(&flagMaxTopics, "max-topics", 0, "Number of topics actually queried")
	cmd.Flags().StringVar(&flagSince, "since", "", "Only repositories created after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&flagPerPage, "per-page", 0, "Results requested per topic")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum repositories in the report")
	cmd.Flags().StringVar(&flagReportDir, "report-dir", "", "Directory for report files (must exist)")
	cmd.Flags().StringVar(&flagLocale, "locale", "", "Report language ("+strings.Join(trend.LocaleNames(), ", ")+")")
	cmd.Flags().StringVar(&flagFormats, "formats", "", "Extra artifacts to write (json, docx)")
	cmd.Flags().StringVar(&flagFeeds, "feeds", "", "RSS/Atom feed URLs for community signals (comma-separated)")
	cmd.Flags().BoolVar(&flagLiteralMatch, "literal-match", false, "Match \"ui\" anywhere in a description, not only as a word")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the report without saving or posting it")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagTopics != "" {
		m["topics"] = flagTopics
	}
	if flagMaxTopics > 0 {
		m["maxTopics"] = fmt.Sprintf("%d", flagMaxTopics)
	}
	if flagSince != "" {
		m["createdAfter"] = flagSince
	}
	if flagPerPage > 0 {
		m["perPage"] = fmt.Sprintf("%d", flagPerPage)
	}
	if flagLimit > 0 {
		m["limit"] = fmt.Sprintf("%d", flagLimit)
	}
	if flagReportDir != "" {
		m["reportDir"] = flagReportDir
	}
	if flagLocale != "" {
		m["locale"] = flagLocale
	}
	if flagFormats != "" {
		m["formats"] = flagFormats
	}
	if flagFeeds != "" {
		m["feeds"] = flagFeeds
	}
	// An explicit --literal-match=false must beat a true in the config file.
	if flagLiteralMatch || runCmd.Flags().Changed("literal-match") {
		m["literalMatch"] = strconv.FormatBool(flagLiteralMatch)
	}
	return m
}

// newMonitor assembles a monitor from the effective config. Only configured
// optional components are attached.
func newMonitor(cfg config.Config) (*monitor.Monitor, error) {
	locale, err := trend.LookupLocale(cfg.Report.Locale)
	if err != nil {
		return nil, err
	}
	if err := monitor.ValidateFormats(cfg.Report.Formats); err != nil {
		return nil, err
	}

	m := &monitor.Monitor{
		Source:    github.NewClient(cfg.Source.Token, cfg.Source.APIURL, cfg.SourceTimeout()),
		Files:     sink.Files{Dir: cfg.Report.Dir},
		Annotator: trend.NewAnnotator(locale, trend.Options{LiteralUI: cfg.Report.LiteralMatch}),
		Query: github.TrendingQuery{
			Topics:       cfg.Source.Topics,
			MaxTopics:    cfg.Source.MaxTopics,
			CreatedAfter: cfg.Source.CreatedAfter,
			PerPage:      cfg.Source.PerPage,
			Limit:        cfg.Source.Limit,
		},
		Formats: cfg.Report.Formats,
		DryRun:  flagDryRun,
	}
	if len(cfg.Feeds.URLs) > 0 {
		m.Signals = feeds.New(cfg.Feeds.URLs, cfg.Feeds.Limit, cfg.FeedsTimeout())
	}
	if cfg.Webhook.URL != "" {
		m.Notifier = sink.NewWebhook(cfg.Webhook.URL, cfg.Webhook.MaxChars, cfg.WebhookTimeout())
	}
	return m, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search, report and notify once",
	Long: `Run one monitor pass: search GitHub for the configured topics, print the
annotated report, save it as reports/report_YYYYMMDD_HHMM.md and post it to
the webhook named by TRENDWATCH_WEBHOOK_URL (or FEISHU_WEBHOOK).

Network failures are logged and do not change the exit code. A report that
cannot be saved exits with status 1.`,
	Args: cobra.NoArgs,
}

// runRunE is attached in init to avoid an initialization cycle through
// buildOverrides, which reads runCmd's flags.
func runRunE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	m, err := newMonitor(cfg)
	if err != nil {
		return err
	}
	m.Stdout = cmd.OutOrStdout()
	m.Logger = log()

	if cfg.Source.Token == "" {
		log().Debug("no GitHub token configured, searching unauthenticated")
	}
	if m.Notifier != nil {
		log().Debug("webhook configured", zap.String("url", redact.URL(cfg.Webhook.URL)))
	}

	if _, err := m.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
	}
	return nil
}

func init() {
	runCmd.RunE = runRunE
	addRunFlags(runCmd)
}
