package discord

import (
	"context"
	"errors"

	"member-admin/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord reports diagnostics to a Discord channel through a webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New builds a webhook client. Logger may be nil.
func New(l log.Logger, id, token string) (IDiscord, error) {
	return newWithConfig(l, id, token, DefaultConfig())
}

func newWithConfig(l log.Logger, id, token string, cfg Config) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:      l,
		id:     id,
		token:  token,
		config: cfg,
		client: newHTTPClient(cfg.Timeout),
	}, nil
}
