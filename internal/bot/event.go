package bot

// EventType classifies an inbound webhook event.
type EventType string

const (
	// EventTypeText is a free-text message typed by the user.
	EventTypeText EventType = "text"
	// EventTypeQuickReply is a tapped quick-reply option carrying a payload.
	EventTypeQuickReply EventType = "quick_reply"
	// EventTypePostback is a button press carrying a payload.
	EventTypePostback EventType = "postback"
	// EventTypeThreadControl is a thread-control return from another handler.
	EventTypeThreadControl EventType = "thread_control"
)

// Event is a normalized inbound webhook event. Exactly one of Text, Payload
// or Metadata is meaningful depending on Type.
type Event struct {
	Type     EventType
	PSID     string
	Text     string
	Payload  Payload
	Metadata string
}
