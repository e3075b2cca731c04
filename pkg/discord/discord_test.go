package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(nil, "", "token")
	assert.Error(t, err)
	_, err = New(nil, "id", "")
	assert.Error(t, err)
}

func TestSendErrorPostsEmbed(t *testing.T) {
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hook-id/hook-token", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	d, err := newWithConfig(nil, "hook-id", "hook-token", cfg)
	require.NoError(t, err)

	err = d.SendError(context.Background(), "fetch failed", "source unreachable", errors.New("boom"))
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "fetch failed", got.Embeds[0].Title)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	require.Len(t, got.Embeds[0].Fields, 1)
	assert.Equal(t, "boom", got.Embeds[0].Fields[0].Value)
}

func TestSendRetriesOnFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.RetryDelay = time.Millisecond
	d, err := newWithConfig(nil, "id", "token", cfg)
	require.NoError(t, err)

	err = d.ReportBug(context.Background(), "panic")
	assert.Error(t, err)
	assert.Equal(t, int32(cfg.RetryCount+1), atomic.LoadInt32(&calls))
}
