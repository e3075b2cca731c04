package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"member-admin/internal/alert"
	"member-admin/pkg/discord"
	"member-admin/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiscord struct {
	sent []discord.MessageOptions
	err  error
}

func (f *fakeDiscord) SendEmbed(ctx context.Context, options discord.MessageOptions) error {
	f.sent = append(f.sent, options)
	return f.err
}

func (f *fakeDiscord) SendError(ctx context.Context, title, description string, err error) error {
	return nil
}

func (f *fakeDiscord) ReportBug(ctx context.Context, message string) error { return nil }

func (f *fakeDiscord) Close() error { return nil }

func TestDispatchFetchFailure(t *testing.T) {
	d := &fakeDiscord{}
	uc := New(log.NewNop(), d)

	err := uc.DispatchFetchFailure(context.Background(), alert.FetchFailureInput{
		ViewID:     "v1",
		SourceName: "http",
		Err:        errors.New("unexpected status 503"),
		Duration:   2 * time.Second,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, discord.MessageTypeError, msg.Type)
	assert.Contains(t, msg.Title, "http")
	assert.Equal(t, "unexpected status 503", msg.Fields[3].Value)
}

func TestDispatchFetchFailureRequiresError(t *testing.T) {
	uc := New(log.NewNop(), &fakeDiscord{})
	err := uc.DispatchFetchFailure(context.Background(), alert.FetchFailureInput{SourceName: "http"})
	assert.ErrorIs(t, err, alert.ErrInvalidInput)
}

func TestDispatchFetchFailureWithoutDiscord(t *testing.T) {
	uc := New(log.NewNop(), nil)
	err := uc.DispatchFetchFailure(context.Background(), alert.FetchFailureInput{Err: errors.New("boom")})
	assert.NoError(t, err)
}

func TestDispatchFetchFailurePropagatesSendError(t *testing.T) {
	d := &fakeDiscord{err: errors.New("webhook down")}
	uc := New(log.NewNop(), d)
	err := uc.DispatchFetchFailure(context.Background(), alert.FetchFailureInput{Err: errors.New("boom")})
	assert.EqualError(t, err, "webhook down")
}

func TestBuildFieldTruncates(t *testing.T) {
	f := buildField("Error", strings.Repeat("x", 2000), false)
	assert.Len(t, f.Value, discord.MaxFieldValueLen)
	assert.True(t, strings.HasSuffix(f.Value, "..."))

	assert.Equal(t, "N/A", buildField("View", "", true).Value)
}
