package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yashx/asha/internal/messages"
	"github.com/yashx/asha/internal/state"
	"github.com/yashx/asha/pkg/metrics"
)

// Dispatcher executes the outbound action for a payload and records the
// resulting conversation context. The payload-to-action mapping is total and
// static; anything outside it is a logged no-op.
type Dispatcher struct {
	store    state.Storage
	sender   Sender
	presence Presence
	profile  ProfileSource
	jokes    JokeSource
	log      *slog.Logger
}

// NewDispatcher creates a Dispatcher with the given collaborators.
func NewDispatcher(store state.Storage, sender Sender, presence Presence, profile ProfileSource, jokes JokeSource, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	return &Dispatcher{
		store:    store,
		sender:   sender,
		presence: presence,
		profile:  profile,
		jokes:    jokes,
		log:      log,
	}
}

// Dispatch performs the action for the given payload. The new context is
// stored only after the action's sends succeed, so a failed send leaves the
// conversation where it was.
func (d *Dispatcher) Dispatch(ctx context.Context, psid string, payload Payload) error {
	switch payload {
	case PayloadGetStarted:
		metrics.RecordDispatch(string(payload))
		return d.getStarted(ctx, psid)
	case PayloadStartAgain:
		metrics.RecordDispatch(string(payload))
		return d.startAgain(ctx, psid)
	case PayloadTellAJoke:
		metrics.RecordDispatch(string(payload))
		return d.tellAJoke(ctx, psid)
	case PayloadCancel:
		metrics.RecordDispatch(string(payload))
		return d.cancel(ctx, psid)
	default:
		// stale or malformed quick replies must not crash the conversation
		d.log.Warn("unknown payload ignored", slog.String("psid", psid), slog.String("payload", string(payload)))
		return nil
	}
}

func (d *Dispatcher) getStarted(ctx context.Context, psid string) error {
	firstName, err := d.profile.FirstName(ctx, psid)
	if err != nil {
		return err
	}

	if err := d.sender.SendText(ctx, psid, fmt.Sprintf(messages.FirstMessage, firstName)); err != nil {
		return err
	}

	if err := d.sender.SendQuickReplies(ctx, psid, messages.FirstChoiceText, yesNoMenu()); err != nil {
		return err
	}

	return d.storeContext(ctx, psid, state.ContextGetStartedDecision)
}

func (d *Dispatcher) startAgain(ctx context.Context, psid string) error {
	firstName, err := d.profile.FirstName(ctx, psid)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf(messages.RestartChoiceText, firstName)
	if err := d.sender.SendQuickReplies(ctx, psid, prompt, yesNoMenu()); err != nil {
		return err
	}

	return d.storeContext(ctx, psid, state.ContextStartAgainDecision)
}

func (d *Dispatcher) tellAJoke(ctx context.Context, psid string) error {
	if err := d.presence.MarkTyping(ctx, psid); err != nil {
		return err
	}

	joke, err := d.jokes.Joke(ctx)
	if err != nil {
		return err
	}

	if err := d.sender.SendQuickReplies(ctx, psid, joke, jokeMenu()); err != nil {
		return err
	}

	return d.storeContext(ctx, psid, state.ContextToldJoke)
}

func (d *Dispatcher) cancel(ctx context.Context, psid string) error {
	for _, message := range messages.CancelSequence {
		if err := d.sender.SendText(ctx, psid, message); err != nil {
			return err
		}
	}

	return d.storeContext(ctx, psid, state.ContextCancelled)
}

func (d *Dispatcher) storeContext(ctx context.Context, psid string, next state.Context) error {
	previous := "none"
	if current, err := d.store.GetContext(ctx, psid); err == nil && current != nil {
		previous = string(current.Current)
	} else if err != nil && !errors.Is(err, state.ErrContextNotFound) {
		d.log.Warn("failed to read previous context", slog.String("psid", psid), slog.Any("error", err))
	}

	if err := d.store.SetContext(ctx, psid, &state.UserContext{PSID: psid, Current: next}); err != nil {
		return err
	}

	metrics.RecordTransition(previous, string(next))
	return nil
}
