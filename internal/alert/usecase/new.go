package usecase

import (
	"member-admin/internal/alert"
	"member-admin/pkg/discord"
	"member-admin/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
}

// New returns an alert dispatcher. A nil discord client turns every dispatch into a no-op.
func New(logger log.Logger, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		discord: discord,
	}
}
