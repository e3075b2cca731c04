package http

import (
	"context"
	"io"
	"net/http"

	"member-admin/internal/model"
	"member-admin/internal/source"

	"github.com/friendsofgo/errors"
)

func (s *implSource) Name() string {
	return sourceName
}

func (s *implSource) Fetch(ctx context.Context) ([]model.Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.l.Errorf(ctx, "internal.source.http.Fetch.NewRequest: %v", err)
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.l.Errorf(ctx, "internal.source.http.Fetch.Do: %v", err)
		return nil, errors.Wrapf(err, "GET %s", s.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 512)
		s.l.Errorf(ctx, "internal.source.http.Fetch: GET %s returned %d", s.url, resp.StatusCode)
		return nil, errors.Wrapf(source.ErrUnexpectedStatus, "GET %s: %d", s.url, resp.StatusCode)
	}

	members, err := source.Decode(resp.Body)
	if err != nil {
		s.l.Errorf(ctx, "internal.source.http.Fetch.Decode: %v", err)
		return nil, err
	}

	return members, nil
}
