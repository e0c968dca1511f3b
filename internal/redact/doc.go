// Package redact scrubs credentials from text before it reaches a log line
// or the terminal.
//
// Webhook URLs carry their secret in the path (Feishu, Lark, Slack and
// Discord hook tokens), and transport errors from net/http quote the full
// request URL, so every error a run logs passes through [Secrets] first.
// [URL] reduces a secret-bearing URL to its scheme and host for display.
package redact
