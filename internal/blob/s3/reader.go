package s3blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Reader fetches whole objects from the configured bucket. Parquet decoding
// needs random access, so objects are downloaded into memory rather than
// streamed.
type Reader struct {
	client     *s3.Client
	downloader *manager.Downloader
	bucket     string
}

// NewReader creates a Reader over the given client's bucket.
func NewReader(c *Client) *Reader {
	return &Reader{
		client:     c.S3(),
		downloader: manager.NewDownloader(c.S3()),
		bucket:     c.Bucket(),
	}
}

// Get downloads the object at key and returns its contents. Returns
// domain.ErrNotFound when the object does not exist.
func (r *Reader) Get(ctx context.Context, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)

	_, err := r.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3blob: get %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("s3blob: get %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

// Exists checks whether an object exists at key via HeadObject.
func (r *Reader) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("s3blob: exists %s: %w", key, err)
	}
	return true, nil
}

// isNotFound returns true when the error indicates a missing object. It
// checks the SDK typed errors and falls back to the HTTP status, since
// HeadObject reports a generic 404 and S3-compatible providers vary.
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	type httpResponseError interface {
		HTTPStatusCode() int
	}
	var httpErr httpResponseError
	return errors.As(err, &httpErr) && httpErr.HTTPStatusCode() == 404
}
