package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/yashx/asha/internal/bot"
)

// callback mirrors the page webhook envelope: a batch of entries, each
// carrying messaging objects.
type callback struct {
	Object string  `json:"object"`
	Entry  []entry `json:"entry"`
}

type entry struct {
	Messaging []messagingObject `json:"messaging"`
}

type messagingObject struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Message           *messagePart       `json:"message,omitempty"`
	Postback          *postbackPart      `json:"postback,omitempty"`
	PassThreadControl *threadControlPart `json:"pass_thread_control,omitempty"`
}

type messagePart struct {
	Text       string `json:"text"`
	QuickReply *struct {
		Payload string `json:"payload"`
	} `json:"quick_reply,omitempty"`
}

type postbackPart struct {
	Payload string `json:"payload"`
}

type threadControlPart struct {
	Metadata string `json:"metadata"`
}

// parseEvents decodes the webhook body into normalized bot events.
// Messaging objects that carry none of the known parts are skipped.
func parseEvents(body []byte) ([]bot.Event, error) {
	var cb callback
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}

	var events []bot.Event
	for _, e := range cb.Entry {
		for _, m := range e.Messaging {
			if event, ok := toEvent(m); ok {
				events = append(events, event)
			}
		}
	}

	return events, nil
}

func toEvent(m messagingObject) (bot.Event, bool) {
	event := bot.Event{PSID: m.Sender.ID}
	if event.PSID == "" {
		return bot.Event{}, false
	}

	switch {
	case m.Message != nil && m.Message.QuickReply != nil:
		event.Type = bot.EventTypeQuickReply
		event.Payload = bot.Payload(m.Message.QuickReply.Payload)
	case m.Message != nil:
		event.Type = bot.EventTypeText
		event.Text = m.Message.Text
	case m.Postback != nil:
		event.Type = bot.EventTypePostback
		event.Payload = bot.Payload(m.Postback.Payload)
	case m.PassThreadControl != nil:
		event.Type = bot.EventTypeThreadControl
		event.Metadata = m.PassThreadControl.Metadata
	default:
		return bot.Event{}, false
	}

	return event, true
}
