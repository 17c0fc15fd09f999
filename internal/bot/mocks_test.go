package bot

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendText(ctx context.Context, psid, text string) error {
	args := m.Called(ctx, psid, text)
	return args.Error(0)
}

func (m *mockSender) SendQuickReplies(ctx context.Context, psid, text string, options []QuickReplyOption) error {
	args := m.Called(ctx, psid, text, options)
	return args.Error(0)
}

type mockPresence struct {
	mock.Mock
}

func (m *mockPresence) MarkSeen(ctx context.Context, psid string) error {
	args := m.Called(ctx, psid)
	return args.Error(0)
}

func (m *mockPresence) MarkTyping(ctx context.Context, psid string) error {
	args := m.Called(ctx, psid)
	return args.Error(0)
}

type mockProfile struct {
	mock.Mock
}

func (m *mockProfile) FirstName(ctx context.Context, psid string) (string, error) {
	args := m.Called(ctx, psid)
	return args.String(0), args.Error(1)
}

type mockJokes struct {
	mock.Mock
}

func (m *mockJokes) Joke(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockThreadControl struct {
	mock.Mock
}

func (m *mockThreadControl) Pass(ctx context.Context, psid, metadata string) (int, error) {
	args := m.Called(ctx, psid, metadata)
	return args.Int(0), args.Error(1)
}
