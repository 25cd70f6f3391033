// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"testing"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{"plain", "https://cdn.poehali.dev/projects", "works/a.pdf", "https://cdn.poehali.dev/projects/AKID/bucket/works/a.pdf"},
		{"trailing slash on base", "https://cdn.poehali.dev/projects/", "works/a.pdf", "https://cdn.poehali.dev/projects/AKID/bucket/works/a.pdf"},
		{"leading slash on key", "https://cdn.example.com", "/contests/b.png", "https://cdn.example.com/AKID/bucket/contests/b.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicURL(tt.base, "AKID", tt.key); got != tt.want {
				t.Errorf("PublicURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitScheme(t *testing.T) {
	tests := []struct {
		endpoint   string
		wantHost   string
		wantSecure bool
	}{
		{"bucket.poehali.dev", "bucket.poehali.dev", true},
		{"https://bucket.poehali.dev", "bucket.poehali.dev", true},
		{"http://localhost:9000", "localhost:9000", false},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			host, secure := splitScheme(tt.endpoint)
			if host != tt.wantHost || secure != tt.wantSecure {
				t.Errorf("splitScheme(%q) = (%q, %v), want (%q, %v)", tt.endpoint, host, secure, tt.wantHost, tt.wantSecure)
			}
		})
	}
}

func TestNewS3Store_Unconfigured(t *testing.T) {
	store, err := NewS3Store("bucket.poehali.dev", "files", "", "", "https://cdn.poehali.dev/projects")
	if err != nil {
		t.Fatalf("NewS3Store() error = %v", err)
	}

	_, err = store.Put(context.Background(), "works/a.pdf", []byte("x"), "application/pdf")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewS3Store_Configured(t *testing.T) {
	store, err := NewS3Store("http://localhost:9000", "files", "AKID", "SECRET", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("NewS3Store() error = %v", err)
	}
	s3, ok := store.(*S3Store)
	if !ok {
		t.Fatalf("expected *S3Store, got %T", store)
	}
	if s3.bucket != "files" || s3.accessKeyID != "AKID" {
		t.Errorf("unexpected store fields: %+v", s3)
	}
}
