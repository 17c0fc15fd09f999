package state

import "time"

// Context represents what the bot is currently waiting for from a user.
type Context string

const (
	// ContextGetStartedDecision indicates the user was asked whether they want a joke after getting started.
	ContextGetStartedDecision Context = "get_started_decision"
	// ContextStartAgainDecision indicates the user was asked whether they want a joke after a restart.
	ContextStartAgainDecision Context = "start_again_decision"
	// ContextCancelled indicates the conversation was cancelled and the bot is waiting for "Start".
	ContextCancelled Context = "cancelled"
	// ContextToldJoke indicates a joke was just told and the bot is waiting for "Tell me more" or "Exit".
	ContextToldJoke Context = "told_joke"
	// ContextSOS indicates the conversation was handed off after a safe word; only a
	// thread-control return re-engages the user.
	ContextSOS Context = "sos"
)

// UserContext captures the stored conversation context for a Messenger user.
type UserContext struct {
	PSID      string    `json:"psid"`
	Current   Context   `json:"current_context"`
	UpdatedAt time.Time `json:"updated_at"`
}
