package messenger

import "context"

type senderActionRequest struct {
	Recipient    recipient `json:"recipient"`
	SenderAction string    `json:"sender_action"`
}

// MarkSeen shows the user their message was read.
func (c *Client) MarkSeen(ctx context.Context, psid string) error {
	return c.senderAction(ctx, psid, "mark_seen")
}

// MarkTyping shows the typing indicator while a response is prepared.
func (c *Client) MarkTyping(ctx context.Context, psid string) error {
	return c.senderAction(ctx, psid, "typing_on")
}

func (c *Client) senderAction(ctx context.Context, psid, action string) error {
	_, err := c.post(ctx, "presence", "/me/messages", senderActionRequest{
		Recipient:    recipient{ID: psid},
		SenderAction: action,
	})

	return err
}
