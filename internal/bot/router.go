package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yashx/asha/internal/messages"
	"github.com/yashx/asha/internal/state"
	"github.com/yashx/asha/internal/textmatch"
	"github.com/yashx/asha/pkg/metrics"
)

const (
	// sosMetadata tags the thread-control transfer triggered by a safe word.
	sosMetadata = "sos"
	// catalogDumpToken in thread-control metadata dumps the static joke catalog.
	catalogDumpToken = "list all"
)

// Router is the single entry point for inbound events. It classifies each
// event and hands it to the dispatcher (payload events), the resolver (free
// text) or the thread-control path.
type Router struct {
	dispatcher    *Dispatcher
	resolver      *Resolver
	store         state.Storage
	sender        Sender
	presence      Presence
	threadControl ThreadControl
	safeWords     []string
	catalog       []string
	log           *slog.Logger
}

// RouterConfig holds the collaborators for creating a Router.
type RouterConfig struct {
	Dispatcher    *Dispatcher
	Resolver      *Resolver
	Store         state.Storage
	Sender        Sender
	Presence      Presence
	ThreadControl ThreadControl
	SafeWords     []string
	Catalog       []string
	Logger        *slog.Logger
}

// NewRouter builds a Router from the provided configuration.
func NewRouter(cfg RouterConfig) *Router {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Router{
		dispatcher:    cfg.Dispatcher,
		resolver:      cfg.Resolver,
		store:         cfg.Store,
		sender:        cfg.Sender,
		presence:      cfg.Presence,
		threadControl: cfg.ThreadControl,
		safeWords:     cfg.SafeWords,
		catalog:       cfg.Catalog,
		log:           log,
	}
}

// Route directs the incoming event to the appropriate handler.
func (r *Router) Route(ctx context.Context, event Event) error {
	switch event.Type {
	case EventTypeText:
		return r.handleText(ctx, event.PSID, event.Text)
	case EventTypeQuickReply, EventTypePostback:
		if err := r.presence.MarkSeen(ctx, event.PSID); err != nil {
			return err
		}
		// the payload came from an offered option, no text matching needed
		return r.dispatcher.Dispatch(ctx, event.PSID, event.Payload)
	case EventTypeThreadControl:
		return r.handleThreadControl(ctx, event.PSID, event.Metadata)
	default:
		r.log.Warn("unrecognized event type", slog.String("type", string(event.Type)), slog.String("psid", event.PSID))
		return nil
	}
}

func (r *Router) handleText(ctx context.Context, psid, text string) error {
	if err := r.presence.MarkSeen(ctx, psid); err != nil {
		return err
	}

	// the cancel keyword works from any context
	if textmatch.Equal(text, messages.Cancel) {
		return r.dispatcher.Dispatch(ctx, psid, PayloadCancel)
	}

	if textmatch.EqualAny(text, r.safeWords) {
		return r.handleSafeWord(ctx, psid)
	}

	current := state.Context("")
	userCtx, err := r.store.GetContext(ctx, psid)
	if err != nil && !errors.Is(err, state.ErrContextNotFound) {
		return err
	}
	if userCtx != nil {
		current = userCtx.Current
	}

	return r.resolver.Resolve(ctx, psid, current, text)
}

// handleSafeWord escalates to the crisis handler. The SOS context is stored
// only when the platform accepts the transfer; a rejected transfer changes
// nothing and sends nothing.
func (r *Router) handleSafeWord(ctx context.Context, psid string) error {
	code, err := r.threadControl.Pass(ctx, psid, sosMetadata)
	if err != nil {
		return err
	}

	if code != http.StatusOK {
		r.log.Warn("thread control transfer rejected", slog.String("psid", psid), slog.Int("status", code))
		return nil
	}

	previous := "none"
	if current, err := r.store.GetContext(ctx, psid); err == nil && current != nil {
		previous = string(current.Current)
	}

	if err := r.store.SetContext(ctx, psid, &state.UserContext{PSID: psid, Current: state.ContextSOS}); err != nil {
		return err
	}

	metrics.RecordTransition(previous, string(state.ContextSOS))
	return nil
}

func (r *Router) handleThreadControl(ctx context.Context, psid, metadata string) error {
	if metadata == catalogDumpToken {
		dump := strings.Join(r.catalog, "\n\n")
		// the catalog is dumped twice, preserved from day one
		if err := r.sender.SendText(ctx, psid, dump); err != nil {
			return err
		}
		if err := r.sender.SendText(ctx, psid, dump); err != nil {
			return err
		}
	}

	return r.dispatcher.Dispatch(ctx, psid, PayloadStartAgain)
}
