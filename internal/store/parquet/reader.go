// Package parquet implements the columnar-store data source: a table reader
// over local Parquet files (or any blob backend), the row schemas of the
// three tables, and the standardizers that convert rows into the shared
// entity model.
package parquet

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/alanyoungcy/polyscope/internal/apperr"
)

// TableReader fetches the raw bytes of one named table. Implementations do
// pure I/O; all interpretation happens in the decoders and standardizers.
type TableReader interface {
	ReadTable(ctx context.Context, table string) ([]byte, error)
}

// DirReader reads `<table>.parquet` files from a local directory.
type DirReader struct {
	dataDir string
}

// NewDirReader creates a reader over the given data directory.
func NewDirReader(dataDir string) *DirReader {
	return &DirReader{dataDir: dataDir}
}

// ReadTable returns the file contents for a table. A missing or unreadable
// file surfaces as a transport-layer error carrying the full path.
func (r *DirReader) ReadTable(ctx context.Context, table string) ([]byte, error) {
	p := filepath.Join(r.dataDir, table+".parquet")
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &apperr.TableReadError{Table: table, Path: p, Err: err}
	}
	return data, nil
}

// BlobGetter fetches one object from a blob store. Implemented by the S3
// blob reader.
type BlobGetter interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// BlobReader reads `<prefix>/<table>.parquet` objects from a blob store.
type BlobReader struct {
	getter BlobGetter
	prefix string
}

// NewBlobReader creates a reader over a blob backend. prefix may be empty.
func NewBlobReader(getter BlobGetter, prefix string) *BlobReader {
	return &BlobReader{getter: getter, prefix: prefix}
}

// ReadTable fetches the table object. Fetch failures surface as
// transport-layer errors carrying the object key.
func (r *BlobReader) ReadTable(ctx context.Context, table string) ([]byte, error) {
	key := path.Join(r.prefix, table+".parquet")
	data, err := r.getter.Get(ctx, key)
	if err != nil {
		return nil, &apperr.TableReadError{Table: table, Path: key, Err: err}
	}
	return data, nil
}
