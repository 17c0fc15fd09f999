package messenger

import "context"

type passThreadControlRequest struct {
	Recipient   recipient `json:"recipient"`
	TargetAppID string    `json:"target_app_id"`
	Metadata    string    `json:"metadata,omitempty"`
}

// Pass hands the conversation to the configured target app. It returns the
// platform status code; callers treat 200 as acceptance. A non-200 response
// is reported through the status code, not as an error, so the caller can
// decide how hard to fail.
func (c *Client) Pass(ctx context.Context, psid, metadata string) (int, error) {
	code, err := c.post(ctx, "thread_control", "/me/pass_thread_control", passThreadControlRequest{
		Recipient:   recipient{ID: psid},
		TargetAppID: c.targetAppID,
		Metadata:    metadata,
	})
	if err != nil && code != 0 {
		// the API answered; surface the code and let the caller treat
		// the rejected transfer as non-fatal
		c.log.Warn("pass_thread_control rejected", "psid", psid, "status", code)
		return code, nil
	}

	return code, err
}
