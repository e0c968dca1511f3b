package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the trendwatch configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Report  ReportConfig  `yaml:"report"`
	Webhook WebhookConfig `yaml:"webhook"`
	Feeds   FeedsConfig   `yaml:"feeds"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig controls the GitHub search.
type SourceConfig struct {
	APIURL         string   `yaml:"apiURL"`
	Token          string   `yaml:"-"`
	Topics         []string `yaml:"topics"`
	MaxTopics      int      `yaml:"maxTopics"`
	CreatedAfter   string   `yaml:"createdAfter"`
	PerPage        int      `yaml:"perPage"`
	Limit          int      `yaml:"limit"`
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
}

// ReportConfig controls report rendering and the files written per run.
type ReportConfig struct {
	Dir          string   `yaml:"dir"`
	Locale       string   `yaml:"locale"`
	Formats      []string `yaml:"formats,omitempty"`
	LiteralMatch bool     `yaml:"literalMatch"`
}

// WebhookConfig controls delivery to the chat webhook.
type WebhookConfig struct {
	URL            string `yaml:"-"`
	MaxChars       int    `yaml:"maxChars"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// FeedsConfig lists optional community feeds (RSS or Atom).
type FeedsConfig struct {
	URLs           []string `yaml:"urls,omitempty"`
	Limit          int      `yaml:"limit"`
	TimeoutSeconds int      `yaml:"timeoutSeconds"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Source: SourceConfig{
			APIURL:         "https://api.github.com",
			Topics:         []string{"artificial-intelligence", "machine-learning", "llm", "claude", "openai"},
			MaxTopics:      2,
			CreatedAfter:   "2026-01-01",
			PerPage:        5,
			Limit:          5,
			TimeoutSeconds: 30,
		},
		Report: ReportConfig{
			Dir:    "reports",
			Locale: "en",
		},
		Webhook: WebhookConfig{
			MaxChars:       3000,
			TimeoutSeconds: 30,
		},
		Feeds: FeedsConfig{
			Limit:          5,
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SourceTimeout returns the search request timeout.
func (c Config) SourceTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// WebhookTimeout returns the webhook request timeout.
func (c Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutSeconds) * time.Second
}

// FeedsTimeout returns the per-feed request timeout.
func (c Config) FeedsTimeout() time.Duration {
	return time.Duration(c.Feeds.TimeoutSeconds) * time.Second
}

// ConfigDir returns the platform-appropriate config directory for trendwatch.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trendwatch"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "trendwatch"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "trendwatch"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "trendwatch"), nil
	default:
		return filepath.Join(home, ".config", "trendwatch"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Source.APIURL != "" {
		dst.Source.APIURL = src.Source.APIURL
	}
	if len(src.Source.Topics) > 0 {
		dst.Source.Topics = src.Source.Topics
	}
	if src.Source.MaxTopics > 0 {
		dst.Source.MaxTopics = src.Source.MaxTopics
	}
	if src.Source.CreatedAfter != "" {
		dst.Source.CreatedAfter = src.Source.CreatedAfter
	}
	if src.Source.PerPage > 0 {
		dst.Source.PerPage = src.Source.PerPage
	}
	if src.Source.Limit > 0 {
		dst.Source.Limit = src.Source.Limit
	}
	if src.Source.TimeoutSeconds > 0 {
		dst.Source.TimeoutSeconds = src.Source.TimeoutSeconds
	}
	if src.Report.Dir != "" {
		dst.Report.Dir = src.Report.Dir
	}
	if src.Report.Locale != "" {
		dst.Report.Locale = src.Report.Locale
	}
	if len(src.Report.Formats) > 0 {
		dst.Report.Formats = src.Report.Formats
	}
	// LiteralMatch defaults to false, so a true in the file is always deliberate.
	dst.Report.LiteralMatch = src.Report.LiteralMatch || dst.Report.LiteralMatch
	if src.Webhook.MaxChars > 0 {
		dst.Webhook.MaxChars = src.Webhook.MaxChars
	}
	if src.Webhook.TimeoutSeconds > 0 {
		dst.Webhook.TimeoutSeconds = src.Webhook.TimeoutSeconds
	}
	if len(src.Feeds.URLs) > 0 {
		dst.Feeds.URLs = src.Feeds.URLs
	}
	if src.Feeds.Limit > 0 {
		dst.Feeds.Limit = src.Feeds.Limit
	}
	if src.Feeds.TimeoutSeconds > 0 {
		dst.Feeds.TimeoutSeconds = src.Feeds.TimeoutSeconds
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
}

// firstEnv returns the value of the first non-empty variable in keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func mergeEnv(cfg *Config) error {
	if v := firstEnv("TRENDWATCH_WEBHOOK_URL", "FEISHU_WEBHOOK"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := firstEnv("TRENDWATCH_GITHUB_TOKEN", "AI_TREND_MONITOR", "GITHUB_TOKEN"); v != "" {
		cfg.Source.Token = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.Source.APIURL = v
	}
	if v := os.Getenv("TRENDWATCH_TOPICS"); v != "" {
		cfg.Source.Topics = SplitList(v)
	}
	if v := os.Getenv("TRENDWATCH_REPORT_DIR"); v != "" {
		cfg.Report.Dir = v
	}
	if v := os.Getenv("TRENDWATCH_LOCALE"); v != "" {
		cfg.Report.Locale = v
	}
	if v := os.Getenv("TRENDWATCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TRENDWATCH_MAX_TOPICS"); v != "" {
		if err := setInt(&cfg.Source.MaxTopics, "TRENDWATCH_MAX_TOPICS", v); err != nil {
			return err
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the keys accepted by SetField.
var Keys = []string{
	"apiURL", "topics", "maxTopics", "createdAfter", "perPage", "limit",
	"reportDir", "locale", "formats", "literalMatch", "webhookMaxChars",
	"feeds", "feedLimit", "logLevel",
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "apiURL":
		cfg.Source.APIURL = value
	case "topics":
		cfg.Source.Topics = SplitList(value)
	case "maxTopics":
		return setInt(&cfg.Source.MaxTopics, key, value)
	case "createdAfter":
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("createdAfter must be a YYYY-MM-DD date: %w", err)
		}
		cfg.Source.CreatedAfter = value
	case "perPage":
		return setInt(&cfg.Source.PerPage, key, value)
	case "limit":
		return setInt(&cfg.Source.Limit, key, value)
	case "reportDir":
		cfg.Report.Dir = value
	case "locale":
		cfg.Report.Locale = value
	case "formats":
		cfg.Report.Formats = SplitList(value)
	case "literalMatch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("literalMatch must be a boolean: %w", err)
		}
		cfg.Report.LiteralMatch = b
	case "webhookMaxChars":
		return setInt(&cfg.Webhook.MaxChars, key, value)
	case "feeds":
		cfg.Feeds.URLs = SplitList(value)
	case "feedLimit":
		return setInt(&cfg.Feeds.Limit, key, value)
	case "logLevel":
		cfg.Logging.Level = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// setInt parses a count. Zero is rejected because the consumers read it as
// "unbounded".
func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", key, n)
	}
	*dst = n
	return nil
}

// SplitList splits a comma-separated list, trimming blanks.
func SplitList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
