package messenger

import (
	"context"

	"github.com/yashx/asha/internal/bot"
	"github.com/yashx/asha/internal/messages"
)

type getStartedSetting struct {
	Payload string `json:"payload"`
}

type greetingSetting struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

type menuAction struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

type persistentMenuSetting struct {
	Locale        string       `json:"locale"`
	CallToActions []menuAction `json:"call_to_actions"`
}

type profileRequest struct {
	GetStarted     getStartedSetting       `json:"get_started"`
	Greeting       []greetingSetting       `json:"greeting"`
	PersistentMenu []persistentMenuSetting `json:"persistent_menu"`
}

// SetupProfile configures the page's get-started button, greeting and
// persistent menu. This is a one-time administrative call, run from
// cmd/profile rather than the bot process.
func (c *Client) SetupProfile(ctx context.Context) error {
	_, err := c.post(ctx, "messenger_profile", "/me/messenger_profile", profileRequest{
		GetStarted: getStartedSetting{Payload: string(bot.PayloadGetStarted)},
		Greeting: []greetingSetting{
			{Locale: "default", Text: messages.Greeting},
		},
		PersistentMenu: []persistentMenuSetting{
			{
				Locale: "default",
				CallToActions: []menuAction{
					{Type: "postback", Title: messages.TellJoke, Payload: string(bot.PayloadTellAJoke)},
				},
			},
		},
	})

	return err
}
