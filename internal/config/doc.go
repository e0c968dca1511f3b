// Package config loads and merges trendwatch configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (TRENDWATCH_TOPICS, TRENDWATCH_REPORT_DIR, etc.)
//  3. Config file ($XDG_CONFIG_HOME/trendwatch/config.yaml)
//  4. Built-in defaults
//
// Secrets (the webhook URL and the GitHub token) are only ever read from the
// environment and are never written to the config file.
package config
