// Trendwatch is a CLI that watches GitHub for new, fast-rising AI
// repositories and publishes an annotated report.
//
// Each run searches the first two configured topics, prints the report,
// saves it as reports/report_YYYYMMDD_HHMM.md and posts the first 3000
// characters to a Feishu/Lark bot webhook.
//
// Usage:
//
//	trendwatch run                         # one monitor pass
//	trendwatch run --dry-run --locale zh   # print only, Chinese wording
//	trendwatch annotate "LLM agent" --stars 500
//	trendwatch config show
//
// The webhook is read from TRENDWATCH_WEBHOOK_URL (or FEISHU_WEBHOOK) and an
// optional GitHub token from TRENDWATCH_GITHUB_TOKEN, AI_TREND_MONITOR or
// GITHUB_TOKEN.
package main
