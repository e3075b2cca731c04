package minio

import "time"

// ObjectRequest names one object in a bucket.
type ObjectRequest struct {
	BucketName string `json:"bucket_name"`
	ObjectName string `json:"object_name"`
}

// ObjectInfo is the subset of object metadata the service reads.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}
