// Package bot contains the conversation core: payload dispatch, context
// resolution for typed-out replies, and webhook event routing.
package bot

// Payload identifies one of the fixed outbound actions. Payload values travel
// inside quick-reply buttons and postbacks; they are never user-authored text.
type Payload string

const (
	// PayloadGetStarted greets a new user and offers the first joke.
	PayloadGetStarted Payload = "GET_STARTED_PAYLOAD"
	// PayloadStartAgain re-engages a user after a cancel or a thread-control return.
	PayloadStartAgain Payload = "START_AGAIN_PAYLOAD"
	// PayloadTellAJoke fetches and sends one joke.
	PayloadTellAJoke Payload = "TELL_A_JOKE"
	// PayloadCancel ends the conversation and explains how to restart.
	PayloadCancel Payload = "CANCEL_PAYLOAD"
)

// QuickReplyOption is one tappable option offered alongside a message.
// Options are an ordered slice: button order is user-visible.
type QuickReplyOption struct {
	Label   string
	Payload Payload
}
