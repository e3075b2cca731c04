package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Connect checks that the configured bucket exists.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ok, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect", m.config.Bucket, "")
	}
	if !ok {
		m.connected = false
		return NewBucketNotFoundError(m.config.Bucket)
	}

	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()

	if !connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check", m.config.Bucket, "")
	}
	return nil
}

// Close marks the client disconnected. The underlying client pools its own connections.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

func (m *implMinIO) GetObject(ctx context.Context, req *ObjectRequest) (io.ReadCloser, *ObjectInfo, error) {
	if err := validateObjectRequest(req); err != nil {
		return nil, nil, err
	}

	stat, err := m.minioClient.StatObject(ctx, req.BucketName, req.ObjectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "stat_object", req.BucketName, req.ObjectName)
	}

	obj, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "get_object", req.BucketName, req.ObjectName)
	}

	return obj, &ObjectInfo{
		Key:          stat.Key,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		ETag:         stat.ETag,
		LastModified: stat.LastModified,
	}, nil
}
