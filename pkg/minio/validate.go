package minio

import (
	"strings"

	"member-admin/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if cfg.Object == "" {
		return NewInvalidInputError("object is required")
	}
	if (cfg.AccessKey == "") != (cfg.SecretKey == "") {
		return NewInvalidInputError("access key and secret key must be set together")
	}
	return nil
}

func validateObjectRequest(req *ObjectRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if req.BucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if req.ObjectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.HasPrefix(req.ObjectName, "/") {
		return NewInvalidInputError("object name cannot start with '/'")
	}
	return nil
}
