// Package sink delivers a finished report: one dated file per run on disk
// and a truncated copy posted to a Feishu/Lark custom-bot webhook.
package sink
