package minio

import (
	"member-admin/internal/source"
	pkgLog "member-admin/pkg/log"
	pkgMinio "member-admin/pkg/minio"
)

const sourceName = "minio"

type implSource struct {
	l      pkgLog.Logger
	client pkgMinio.MinIO
	bucket string
	object string
}

var _ source.Source = &implSource{}

// New returns a Source that reads a JSON member array from one object.
func New(l pkgLog.Logger, client pkgMinio.MinIO, bucket, object string) source.Source {
	return &implSource{
		l:      l,
		client: client,
		bucket: bucket,
		object: object,
	}
}
