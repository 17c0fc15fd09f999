package bot

import (
	"context"
	"log/slog"

	"github.com/yashx/asha/internal/messages"
	"github.com/yashx/asha/internal/state"
	"github.com/yashx/asha/internal/textmatch"
	"github.com/yashx/asha/pkg/metrics"
)

// Resolver interprets free-text replies against the stored conversation
// context. Users sometimes type an option out instead of tapping it, so each
// context has a small fixed list of expected answers; anything else gets the
// fallback message and leaves the context untouched.
type Resolver struct {
	dispatcher *Dispatcher
	sender     Sender
	log        *slog.Logger
}

// NewResolver creates a Resolver that delegates matched options to the dispatcher.
func NewResolver(dispatcher *Dispatcher, sender Sender, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}

	return &Resolver{
		dispatcher: dispatcher,
		sender:     sender,
		log:        log,
	}
}

// Resolve matches text against the options expected for current and either
// dispatches the matching payload or sends the fallback message. An absent or
// unrecognized context always falls back.
func (r *Resolver) Resolve(ctx context.Context, psid string, current state.Context, text string) error {
	switch current {
	case state.ContextGetStartedDecision, state.ContextStartAgainDecision:
		if textmatch.Equal(text, messages.Yes) {
			return r.dispatcher.Dispatch(ctx, psid, PayloadTellAJoke)
		}
		if textmatch.Equal(text, messages.No) {
			return r.dispatcher.Dispatch(ctx, psid, PayloadCancel)
		}

	case state.ContextCancelled:
		if textmatch.Equal(text, messages.Start) {
			return r.dispatcher.Dispatch(ctx, psid, PayloadStartAgain)
		}

	case state.ContextToldJoke:
		if textmatch.Equal(text, messages.TellMeMore) {
			return r.dispatcher.Dispatch(ctx, psid, PayloadTellAJoke)
		}
		if textmatch.Equal(text, messages.Exit) {
			return r.dispatcher.Dispatch(ctx, psid, PayloadCancel)
		}
	}

	r.log.Debug("unrecognized reply", slog.String("psid", psid), slog.String("context", string(current)))
	metrics.RecordFallback()

	return r.sender.SendText(ctx, psid, messages.CannotUnderstand)
}
