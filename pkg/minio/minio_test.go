package minio

import (
	"errors"
	"testing"

	"member-admin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinIOValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr bool
	}{
		{"valid anonymous", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "adminui", Object: "members.json"}, false},
		{"valid keyed", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b", Object: "o", AccessKey: "a", SecretKey: "s"}, false},
		{"no endpoint", config.MinIOConfig{Bucket: "b", Object: "o"}, true},
		{"no bucket", config.MinIOConfig{Endpoint: "localhost:9000", Object: "o"}, true},
		{"no object", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"}, true},
		{"half credentials", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b", Object: "o", AccessKey: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			_, err := NewMinIO(&cfg)
			if tt.wantErr {
				require.Error(t, err)
				var se *StorageError
				assert.True(t, errors.As(err, &se))
				assert.Equal(t, ErrCodeInvalidInput, se.Code)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewObjectNotFoundError("members.json")))
	assert.True(t, IsNotFound(NewBucketNotFoundError("adminui")))
	assert.False(t, IsNotFound(NewConnectionError(errors.New("dial"))))
	assert.False(t, IsNotFound(errors.New("other")))
}

func TestValidateObjectRequest(t *testing.T) {
	assert.Error(t, validateObjectRequest(nil))
	assert.Error(t, validateObjectRequest(&ObjectRequest{ObjectName: "o"}))
	assert.Error(t, validateObjectRequest(&ObjectRequest{BucketName: "b", ObjectName: "/o"}))
	assert.NoError(t, validateObjectRequest(&ObjectRequest{BucketName: "b", ObjectName: "dir/o.json"}))
}
