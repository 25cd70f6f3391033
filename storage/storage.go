// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrNotConfigured = errors.New("object storage credentials not configured")

// Store puts an object and returns the public URL it is served from
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// S3Store writes to an S3-compatible bucket
type S3Store struct {
	client      *minio.Client
	bucket      string
	accessKeyID string
	publicBase  string
}

// NewS3Store returns a store for bucket on endpoint. With empty credentials
// it returns a store whose Put always fails with ErrNotConfigured.
func NewS3Store(endpoint, bucket, accessKeyID, secretKey, publicBase string) (Store, error) {
	if accessKeyID == "" || secretKey == "" {
		return unconfigured{}, nil
	}

	endpoint, secure := splitScheme(endpoint)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretKey, ""),
		Secure: secure,
		Region: "us-east-1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &S3Store{
		client:      client,
		bucket:      bucket,
		accessKeyID: accessKeyID,
		publicBase:  strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return PublicURL(s.publicBase, s.accessKeyID, key), nil
}

// PublicURL builds the CDN address of key. It depends only on its inputs.
func PublicURL(base, accessKeyID, key string) string {
	return strings.TrimRight(base, "/") + "/" + accessKeyID + "/bucket/" + strings.TrimLeft(key, "/")
}

// splitScheme accepts "host", "https://host" or "http://host"
func splitScheme(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	default:
		return endpoint, true
	}
}

type unconfigured struct{}

func (unconfigured) Put(context.Context, string, []byte, string) (string, error) {
	return "", ErrNotConfigured
}
