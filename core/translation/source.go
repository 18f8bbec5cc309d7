package translation

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"l10n-manager/core/errs"
	"l10n-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens the import file of a mapping.
type Source interface {
	// Load reads and parses the import file of m.
	Load(ctx context.Context, m Mapping) ([]Row, error)
	// Location describes where the import file of m is read from.
	Location(m Mapping) string
}

// DirSource reads <Dir>/<name>.csv.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Location(m Mapping) string {
	return filepath.Join(s.Dir, m.FileName())
}

func (s *DirSource) Load(_ context.Context, m Mapping) ([]Row, error) {
	return ReadRowsFile(s.Location(m))
}

// StorageSource reads <prefix>/<name>.csv from a bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a StorageSource.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *StorageSource) objectName(m Mapping) string {
	return path.Join(s.prefix, m.FileName())
}

func (s *StorageSource) Location(m Mapping) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.objectName(m))
}

func (s *StorageSource) Load(ctx context.Context, m Mapping) ([]Row, error) {
	loc := s.Location(m)
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(m), minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.Resource(loc, err)
	}
	defer obj.Close()
	return ReadRows(obj, loc)
}

// NewSource builds the Source selected by cfg.
func NewSource(cfg Config, dir string, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceDir, "":
		return NewDirSource(dir), nil
	case SourceStorage:
		if client == nil {
			return nil, errs.Argument("import source %q requires a storage client", cfg.Source)
		}
		return NewStorageSource(client, bucket, cfg.Prefix), nil
	default:
		return nil, errs.Argument("unknown import source %q", cfg.Source)
	}
}

