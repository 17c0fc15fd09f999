package bot

import "context"

// Sender delivers outbound messages to a user.
type Sender interface {
	SendText(ctx context.Context, psid, text string) error
	SendQuickReplies(ctx context.Context, psid, text string, options []QuickReplyOption) error
}

// Presence surfaces seen/typing indicators to a user.
type Presence interface {
	MarkSeen(ctx context.Context, psid string) error
	MarkTyping(ctx context.Context, psid string) error
}

// ProfileSource looks up user profile data.
type ProfileSource interface {
	FirstName(ctx context.Context, psid string) (string, error)
}

// ThreadControl hands the conversation to another handler.
// It returns the platform status code; 200 signals the handoff was accepted.
type ThreadControl interface {
	Pass(ctx context.Context, psid, metadata string) (int, error)
}

// JokeSource produces one joke per call.
type JokeSource interface {
	Joke(ctx context.Context) (string, error)
}
