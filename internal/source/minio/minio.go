package minio

import (
	"context"
	"fmt"

	"member-admin/internal/model"
	"member-admin/internal/source"
	pkgMinio "member-admin/pkg/minio"

	"github.com/friendsofgo/errors"
)

func (s *implSource) Name() string {
	return sourceName
}

func (s *implSource) Fetch(ctx context.Context) ([]model.Member, error) {
	rc, _, err := s.client.GetObject(ctx, &pkgMinio.ObjectRequest{
		BucketName: s.bucket,
		ObjectName: s.object,
	})
	if err != nil {
		s.l.Errorf(ctx, "internal.source.minio.Fetch.GetObject: %v", err)
		if pkgMinio.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", source.ErrPayloadNotFound, err)
		}
		return nil, errors.Wrapf(err, "get %s/%s", s.bucket, s.object)
	}
	defer rc.Close()

	members, err := source.Decode(rc)
	if err != nil {
		s.l.Errorf(ctx, "internal.source.minio.Fetch.Decode: %v", err)
		return nil, err
	}

	return members, nil
}
