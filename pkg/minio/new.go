package minio

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"member-admin/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 20
	maxIdleConnsPerHost = 20
	idleConnTimeout     = 90 * time.Second
)

// MinIO is the read side of an S3-compatible object store.
type MinIO interface {
	// Connect verifies the configured bucket is reachable.
	Connect(ctx context.Context) error
	// HealthCheck re-checks bucket reachability.
	HealthCheck(ctx context.Context) error
	Close() error

	// GetObject opens an object for reading. The caller closes the reader.
	GetObject(ctx context.Context, req *ObjectRequest) (io.ReadCloser, *ObjectInfo, error)
}

type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// NewMinIO creates a client for cfg. It does not contact the server; call Connect for that.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	var creds *credentials.Credentials
	if cfg.AccessKey != "" {
		creds = credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	} else {
		creds = credentials.NewStatic("", "", "", credentials.SignatureAnonymous)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     creds,
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
