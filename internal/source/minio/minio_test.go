package minio

import (
	"context"
	"io"
	"strings"
	"testing"

	"member-admin/internal/source"
	pkgLog "member-admin/pkg/log"
	pkgMinio "member-admin/pkg/minio"

	"github.com/friendsofgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinIO struct {
	body string
	err  error
	req  *pkgMinio.ObjectRequest
}

func (f *fakeMinIO) Connect(ctx context.Context) error     { return nil }
func (f *fakeMinIO) HealthCheck(ctx context.Context) error { return nil }
func (f *fakeMinIO) Close() error                          { return nil }

func (f *fakeMinIO) GetObject(ctx context.Context, req *pkgMinio.ObjectRequest) (io.ReadCloser, *pkgMinio.ObjectInfo, error) {
	f.req = req
	if f.err != nil {
		return nil, nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), &pkgMinio.ObjectInfo{}, nil
}

func TestFetch(t *testing.T) {
	client := &fakeMinIO{body: `[{"id":"7","name":"Ana","email":"ana@x.io","role":"admin"}]`}
	s := New(pkgLog.NewNop(), client, "adminui", "members.json")

	got, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "adminui", client.req.BucketName)
	assert.Equal(t, "members.json", client.req.ObjectName)
	assert.Equal(t, "minio", s.Name())
}

func TestFetchNotFound(t *testing.T) {
	client := &fakeMinIO{err: pkgMinio.NewObjectNotFoundError("members.json")}
	_, err := New(pkgLog.NewNop(), client, "adminui", "members.json").Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, pkgMinio.IsNotFound(err))
	assert.True(t, errors.Is(err, source.ErrPayloadNotFound))

	client = &fakeMinIO{err: pkgMinio.NewConnectionError(errors.New("dial tcp"))}
	_, err = New(pkgLog.NewNop(), client, "adminui", "members.json").Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, source.ErrPayloadNotFound))
}

func TestFetchMalformed(t *testing.T) {
	client := &fakeMinIO{body: `nope`}
	_, err := New(pkgLog.NewNop(), client, "adminui", "members.json").Fetch(context.Background())
	assert.True(t, errors.Is(err, source.ErrMalformedPayload))
}
