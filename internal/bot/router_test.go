package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yashx/asha/internal/messages"
	"github.com/yashx/asha/internal/state"
)

type routerFixture struct {
	router        *Router
	store         state.Storage
	sender        *mockSender
	presence      *mockPresence
	profile       *mockProfile
	jokes         *mockJokes
	threadControl *mockThreadControl
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		store:         state.NewMemoryStorage(),
		sender:        &mockSender{},
		presence:      &mockPresence{},
		profile:       &mockProfile{},
		jokes:         &mockJokes{},
		threadControl: &mockThreadControl{},
	}

	dispatcher := NewDispatcher(f.store, f.sender, f.presence, f.profile, f.jokes, testLogger())
	f.router = NewRouter(RouterConfig{
		Dispatcher:    dispatcher,
		Resolver:      NewResolver(dispatcher, f.sender, testLogger()),
		Store:         f.store,
		Sender:        f.sender,
		Presence:      f.presence,
		ThreadControl: f.threadControl,
		SafeWords:     []string{"sos", "help me", "emergency"},
		Catalog:       []string{"first joke", "second joke"},
		Logger:        testLogger(),
	})

	return f
}

func (f *routerFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.sender.AssertExpectations(t)
	f.presence.AssertExpectations(t)
	f.profile.AssertExpectations(t)
	f.jokes.AssertExpectations(t)
	f.threadControl.AssertExpectations(t)
}

func TestRouter_QuickReplyDispatchesPayload(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.presence.On("MarkTyping", mock.Anything, testPSID).Return(nil).Once()
	f.jokes.On("Joke", mock.Anything).Return("a joke", nil).Once()
	f.sender.On("SendQuickReplies", mock.Anything, testPSID, "a joke", jokeMenu()).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeQuickReply, PSID: testPSID, Payload: PayloadTellAJoke}))

	assert.Equal(t, state.ContextToldJoke, storedContext(t, f.store))
	f.assertExpectations(t)
}

func TestRouter_PostbackDispatchesPayload(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.profile.On("FirstName", mock.Anything, testPSID).Return("Riya", nil).Once()
	f.sender.On("SendText", mock.Anything, testPSID, "Hi Riya, I know a lot of jokes.").Return(nil).Once()
	f.sender.On("SendQuickReplies", mock.Anything, testPSID, messages.FirstChoiceText, yesNoMenu()).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypePostback, PSID: testPSID, Payload: PayloadGetStarted}))

	assert.Equal(t, state.ContextGetStartedDecision, storedContext(t, f.store))
	f.assertExpectations(t)
}

func TestRouter_TextResolvedAgainstStoredContext(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	require.NoError(t, f.store.SetContext(ctx, testPSID, &state.UserContext{PSID: testPSID, Current: state.ContextToldJoke}))

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.presence.On("MarkTyping", mock.Anything, testPSID).Return(nil).Once()
	f.jokes.On("Joke", mock.Anything).Return("another joke", nil).Once()
	f.sender.On("SendQuickReplies", mock.Anything, testPSID, "another joke", jokeMenu()).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeText, PSID: testPSID, Text: "tell me more"}))

	f.assertExpectations(t)
}

func TestRouter_TextWithoutContextFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.sender.On("SendText", mock.Anything, testPSID, messages.CannotUnderstand).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeText, PSID: testPSID, Text: "hello there"}))

	f.assertExpectations(t)
}

func TestRouter_CancelKeywordWorksFromAnyContext(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	require.NoError(t, f.store.SetContext(ctx, testPSID, &state.UserContext{PSID: testPSID, Current: state.ContextToldJoke}))

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.sender.On("SendText", mock.Anything, testPSID, messages.SadFaceEmoji).Return(nil).Once()
	f.sender.On("SendText", mock.Anything, testPSID, messages.StartAgain).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeText, PSID: testPSID, Text: "Cancel!"}))

	assert.Equal(t, state.ContextCancelled, storedContext(t, f.store))
	f.assertExpectations(t)
}

func TestRouter_SafeWordHandsOffThread(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.threadControl.On("Pass", mock.Anything, testPSID, "sos").Return(200, nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeText, PSID: testPSID, Text: "Help me"}))

	assert.Equal(t, state.ContextSOS, storedContext(t, f.store))
	f.sender.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRouter_SafeWordRejectedTransferChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	require.NoError(t, f.store.SetContext(ctx, testPSID, &state.UserContext{PSID: testPSID, Current: state.ContextToldJoke}))

	f.presence.On("MarkSeen", mock.Anything, testPSID).Return(nil).Once()
	f.threadControl.On("Pass", mock.Anything, testPSID, "sos").Return(400, nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeText, PSID: testPSID, Text: "sos"}))

	assert.Equal(t, state.ContextToldJoke, storedContext(t, f.store))
	f.sender.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRouter_ThreadControlCatalogDump(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	dump := "first joke\n\nsecond joke"
	f.sender.On("SendText", mock.Anything, testPSID, dump).Return(nil).Twice()
	f.profile.On("FirstName", mock.Anything, testPSID).Return("Riya", nil).Once()
	f.sender.On("SendQuickReplies", mock.Anything, testPSID, "Hi Riya, Would you like to hear a joke?", yesNoMenu()).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeThreadControl, PSID: testPSID, Metadata: "list all"}))

	assert.Equal(t, state.ContextStartAgainDecision, storedContext(t, f.store))
	f.assertExpectations(t)
}

func TestRouter_ThreadControlWithoutDumpTokenRestartsOnly(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	f.profile.On("FirstName", mock.Anything, testPSID).Return("Riya", nil).Once()
	f.sender.On("SendQuickReplies", mock.Anything, testPSID, "Hi Riya, Would you like to hear a joke?", yesNoMenu()).Return(nil).Once()

	require.NoError(t, f.router.Route(ctx, Event{Type: EventTypeThreadControl, PSID: testPSID, Metadata: "returned"}))

	f.sender.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestRouter_UnknownEventTypeIgnored(t *testing.T) {
	ctx := context.Background()
	f := newRouterFixture(t)

	require.NoError(t, f.router.Route(ctx, Event{Type: EventType("read"), PSID: testPSID}))

	f.assertExpectations(t)
}
