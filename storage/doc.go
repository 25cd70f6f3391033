// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage uploads files to S3-compatible object storage.

	store, err := storage.NewS3Store(cfg.S3Endpoint, cfg.S3Bucket,
		cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.CDNBaseURL)
	url, err := store.Put(ctx, "works/sunset.jpg", data, "image/jpeg")

Public URLs follow the CDN layout

	<base>/<access key id>/bucket/<key>

Without credentials NewS3Store still succeeds; Put then returns
ErrNotConfigured so the upload handlers can answer 500.
*/
package storage
