package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	name   string
	err    error
	titles []string
}

func (f *fakeSender) Send(_ context.Context, title, _ string) error {
	f.titles = append(f.titles, title)
	return f.err
}

func (f *fakeSender) Name() string { return f.name }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyAllNoSenders(t *testing.T) {
	n := NewNotifier(nil, testLogger())
	assert.NoError(t, n.NotifyAll(context.Background(), "title", "message"))
}

func TestNotifyAllDeliversToEverySender(t *testing.T) {
	a := &fakeSender{name: "a"}
	b := &fakeSender{name: "b"}

	n := NewNotifier([]Sender{a, b}, testLogger())
	require.NoError(t, n.NotifyAll(context.Background(), "hello", "body"))

	assert.Equal(t, []string{"hello"}, a.titles)
	assert.Equal(t, []string{"hello"}, b.titles)
}

func TestNotifyAllFailureDoesNotBlockOthers(t *testing.T) {
	broken := &fakeSender{name: "broken", err: errors.New("down")}
	healthy := &fakeSender{name: "healthy"}

	n := NewNotifier([]Sender{broken, healthy}, testLogger())
	err := n.NotifyAll(context.Background(), "hello", "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken: down")
	assert.Equal(t, []string{"hello"}, healthy.titles)
}

func TestDiscordSenderPostsWebhook(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewDiscordSender(srv.URL)
	require.NoError(t, s.Send(context.Background(), "Top pick", "reason line"))
	assert.Equal(t, "**Top pick**\nreason line", got["content"])
}

func TestDiscordSenderRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad webhook", http.StatusBadRequest)
	}))
	defer srv.Close()

	s := NewDiscordSender(srv.URL)
	err := s.Send(context.Background(), "t", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
