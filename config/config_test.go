package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := fromViper(newDefaults())
	require.NoError(t, err)

	assert.Equal(t, SourceHTTP, cfg.Source.Type)
	assert.Equal(t, DefaultSourceURL, cfg.Source.URL)
	assert.Equal(t, 10, cfg.View.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.View.TTL)
	assert.False(t, cfg.View.ValidateEdits)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
	}{
		{"unknown source", map[string]any{"source.type": "ftp"}, "source.type"},
		{"http without url", map[string]any{"source.url": ""}, "source.url"},
		{"minio without endpoint", map[string]any{"source.type": "minio", "minio.bucket": "b"}, "minio.endpoint"},
		{"minio without bucket", map[string]any{"source.type": "minio", "minio.endpoint": "s3:9000"}, "minio.bucket"},
		{"postgres without host", map[string]any{"source.type": "postgres", "postgres.dbname": "db"}, "postgres.host"},
		{"zero page size", map[string]any{"view.page_size": 0}, "view.page_size"},
		{"bad port", map[string]any{"server.port": 0}, "server.port"},
		{"unknown log format", map[string]any{"logger.format": "xml"}, "logger.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newDefaults()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSourceTypeCaseInsensitive(t *testing.T) {
	v := newDefaults()
	v.Set("source.type", "MinIO")
	v.Set("minio.endpoint", "s3.local:9000")
	v.Set("minio.bucket", "adminui")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, SourceMinIO, cfg.Source.Type)
}
