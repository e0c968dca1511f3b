package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultMaxChars is how much of the report a webhook message carries.
const DefaultMaxChars = 3000

// Webhook posts rich-text messages to a Feishu/Lark custom bot.
type Webhook struct {
	url      string
	maxChars int
	httpCli  *http.Client
}

// NewWebhook creates a webhook client. maxChars <= 0 selects DefaultMaxChars.
func NewWebhook(url string, maxChars int, timeout time.Duration) *Webhook {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Webhook{
		url:      url,
		maxChars: maxChars,
		httpCli:  &http.Client{Timeout: timeout},
	}
}

// Message is the JSON body of a Feishu rich-text post.
type Message struct {
	MsgType string         `json:"msg_type"`
	Content MessageContent `json:"content"`
}

// MessageContent maps a language key to its rich-text post.
type MessageContent struct {
	Post map[string]RichPost `json:"post"`
}

// RichPost is a titled post made of paragraphs of inline nodes.
type RichPost struct {
	Title   string       `json:"title"`
	Content [][]TextNode `json:"content"`
}

// TextNode is a plain-text inline element of a RichPost.
type TextNode struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// feishuReply covers both the current and the legacy bot response shapes.
type feishuReply struct {
	Code          *int   `json:"code"`
	Msg           string `json:"msg"`
	StatusCode    *int   `json:"StatusCode"`
	StatusMessage string `json:"StatusMessage"`
}

// BuildMessage returns the post payload carrying title and text, with text
// truncated to maxChars characters.
func BuildMessage(title, text string, maxChars int) Message {
	return Message{
		MsgType: "post",
		Content: MessageContent{
			Post: map[string]RichPost{
				"zh_cn": {
					Title: title,
					Content: [][]TextNode{
						{{Tag: "text", Text: Truncate(text, maxChars)}},
					},
				},
			},
		},
	}
}

// Post sends title and the leading part of text to the webhook. Transport
// failures, non-2xx statuses and bot-level error codes are all returned.
func (h *Webhook) Post(ctx context.Context, title, text string) error {
	payload, err := json.Marshal(BuildMessage(title, text, h.maxChars))
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook error (status %d): %s", resp.StatusCode, string(body))
	}

	var reply feishuReply
	if err := json.Unmarshal(body, &reply); err != nil {
		// Not every compatible endpoint answers with JSON.
		return nil
	}
	if reply.Code != nil && *reply.Code != 0 {
		return fmt.Errorf("webhook rejected message (code %d): %s", *reply.Code, reply.Msg)
	}
	if reply.StatusCode != nil && *reply.StatusCode != 0 {
		return fmt.Errorf("webhook rejected message (code %d): %s", *reply.StatusCode, reply.StatusMessage)
	}
	return nil
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
