package messenger

import (
	"context"

	"github.com/yashx/asha/internal/bot"
)

type recipient struct {
	ID string `json:"id"`
}

type quickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

type messageBody struct {
	Text         string       `json:"text"`
	QuickReplies []quickReply `json:"quick_replies,omitempty"`
}

type sendRequest struct {
	Recipient recipient    `json:"recipient"`
	Message   *messageBody `json:"message,omitempty"`
}

// SendText delivers a plain text message via the Send API.
func (c *Client) SendText(ctx context.Context, psid, text string) error {
	_, err := c.post(ctx, "send", "/me/messages", sendRequest{
		Recipient: recipient{ID: psid},
		Message:   &messageBody{Text: text},
	})

	return err
}

// SendQuickReplies delivers a text message with tappable options attached.
// The options keep their slice order; the platform renders them as given.
func (c *Client) SendQuickReplies(ctx context.Context, psid, text string, options []bot.QuickReplyOption) error {
	replies := make([]quickReply, 0, len(options))
	for _, option := range options {
		replies = append(replies, quickReply{
			ContentType: "text",
			Title:       option.Label,
			Payload:     string(option.Payload),
		})
	}

	_, err := c.post(ctx, "send", "/me/messages", sendRequest{
		Recipient: recipient{ID: psid},
		Message:   &messageBody{Text: text, QuickReplies: replies},
	})

	return err
}
