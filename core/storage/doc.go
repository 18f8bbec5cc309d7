// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so both AWS S3 and
// self-hosted MinIO can hold published strings files and translation imports.
// Tests use the testify mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket before publishing.
//   - PutObject: uploads a written strings file.
//   - GetObject: downloads a translation import file.
//   - ListObjects: lists published files under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
