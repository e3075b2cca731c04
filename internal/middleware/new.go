package middleware

import (
	"member-admin/pkg/discord"
	"member-admin/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New returns the shared middleware set. discord may be nil.
func New(l log.Logger, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: d,
	}
}
