package http

import (
	"embed"
	"html/template"

	"member-admin/internal/member"
	"member-admin/pkg/discord"
	pkgLog "member-admin/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	l       pkgLog.Logger
	uc      member.UseCase
	discord discord.IDiscord
	tmpl    *template.Template
}

// New returns the member table handler. discord may be nil.
func New(l pkgLog.Logger, uc member.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
		tmpl:    template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")),
	}
}
