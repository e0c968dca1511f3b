package redact

import (
	"net/url"
	"regexp"
)

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for credentials that can show up in
// request URLs, headers or API error bodies.
var secretPatterns = []*regexp.Regexp{
	// Chat webhook tokens embedded in the URL path (Feishu/Lark, Slack, Discord)
	regexp.MustCompile(`(?i)(/hook/)[A-Za-z0-9_-]{8,}`),
	regexp.MustCompile(`(hooks\.slack\.com/services/)[A-Za-z0-9/_-]+`),
	regexp.MustCompile(`(?i)(/api/webhooks/)[0-9]+/[A-Za-z0-9_-]+`),
	// Bearer and token authorization values
	regexp.MustCompile(`(?i)(Bearer\s+)[A-Za-z0-9._-]{20,}`),
	regexp.MustCompile(`(?i)(token\s+)[A-Za-z0-9_]{20,}`),
	// GitHub tokens
	regexp.MustCompile(`()gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`()github_pat_[A-Za-z0-9_]{22,}`),
	// Secrets passed as query parameters
	regexp.MustCompile(`(?i)([?&](?:access_token|token|key|sign|secret)=)[^&\s"]+`),
}

// Secrets replaces detected credentials in text with [REDACTED], keeping the
// prefix that identifies what was removed.
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, "${1}"+placeholder)
	}
	return result
}

// URL returns scheme://host/[REDACTED] for a URL with a non-empty path, so a
// webhook can be identified in output without exposing its token.
func URL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return placeholder
	}
	if u.Path == "" || u.Path == "/" {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/" + placeholder
}

// Error returns err's message with credentials removed. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return Secrets(err.Error())
}
