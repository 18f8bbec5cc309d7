package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"l10n-manager/core/errs"
	"l10n-manager/core/resource"
	"l10n-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const contentType = "application/xml"

// Object describes a published file.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Publisher uploads locale files.
type Publisher struct {
	client storage.Client
	bucket string
	region string
	prefix string
	layout resource.Layout
	logger *zap.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(client storage.Client, cfg storage.Config, prefix string, layout resource.Layout, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: strings.Trim(prefix, "/"),
		layout: layout,
		logger: logger,
	}
}

// Prepare makes sure the bucket exists.
func (p *Publisher) Prepare(ctx context.Context) error {
	return storage.EnsureBucket(ctx, p.client, p.bucket, p.region)
}

// ObjectName is the key a locale file is published under.
func (p *Publisher) ObjectName(locale string) string {
	return path.Join(p.prefix, p.layout.RelLocalePath(locale))
}

// Publish uploads the written strings file of locale.
func (p *Publisher) Publish(ctx context.Context, locale, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errs.Resource(file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errs.Resource(file, err)
	}

	key := p.ObjectName(locale)
	if _, err := p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return errs.Write(key, err)
	}

	p.logger.Info("Published strings file",
		zap.String("locale", locale),
		zap.String("bucket", p.bucket),
		zap.String("key", key),
		zap.Int64("size", info.Size()))
	return nil
}

// List returns the published files below the prefix.
func (p *Publisher) List(ctx context.Context) ([]Object, error) {
	prefix := p.prefix
	if prefix != "" {
		prefix += "/"
	}

	var out []Object
	for obj := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", p.bucket, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, "/"+p.layout.StringsFile) {
			continue
		}
		out = append(out, Object{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return out, nil
}
