package minio

import (
	"context"
	"fmt"
	"time"

	"member-admin/config"
	"member-admin/pkg/log"
	miniopkg "member-admin/pkg/minio"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultMaxRetries     = 3
)

// Connect builds a MinIO client for the member source and checks that the bucket is reachable.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	l.Infof(ctx, "config.minio.Connect: connecting to %s (SSL: %v, Region: %s)", cfg.Endpoint, cfg.UseSSL, cfg.Region)

	client, err := miniopkg.NewMinIO(&cfg)
	if err != nil {
		l.Errorf(ctx, "config.minio.Connect: failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := client.Connect(connectCtx); err != nil {
		l.Errorf(ctx, "config.minio.Connect: failed to verify bucket %s: %v", cfg.Bucket, err)
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	l.Infof(ctx, "config.minio.Connect: connected to %s, bucket %s", cfg.Endpoint, cfg.Bucket)
	return client, nil
}

// ConnectWithRetry calls Connect with exponential backoff between attempts.
func ConnectWithRetry(ctx context.Context, l log.Logger, cfg config.MinIOConfig, maxRetries int) (miniopkg.MinIO, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		client, err := Connect(ctx, l, cfg)
		if err == nil {
			return client, nil
		}

		lastErr = err
		if i < maxRetries-1 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			l.Warnf(ctx, "config.minio.ConnectWithRetry: attempt %d/%d failed, retrying in %v", i+1, maxRetries, backoff)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}
