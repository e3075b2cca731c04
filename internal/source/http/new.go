package http

import (
	"net/http"
	"time"

	"member-admin/internal/source"
	pkgLog "member-admin/pkg/log"
)

const (
	sourceName     = "http"
	defaultTimeout = 10 * time.Second
	userAgent      = "member-admin/1.0"
)

type implSource struct {
	l      pkgLog.Logger
	url    string
	client *http.Client
}

var _ source.Source = &implSource{}

// New returns a Source that GETs a JSON member array from url.
func New(l pkgLog.Logger, url string, timeout time.Duration) source.Source {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implSource{
		l:      l,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}
