package source

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"node-config/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket reads override files stored as objects under a prefix of an S3/MinIO bucket.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a source reading objects named prefix+file from bucket.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{client: client, bucket: bucket, prefix: prefix}
}

func (b *Bucket) Read(ctx context.Context, file string) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, b.prefix+file, minio.GetObjectOptions{})
	if err != nil {
		return nil, b.classify(file, err)
	}
	defer obj.Close()

	// GetObject is lazy; a missing key only shows up on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, b.classify(file, err)
	}
	return data, nil
}

func (b *Bucket) classify(file string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, b.Location(file))
	}
	return fmt.Errorf("failed to read %s: %w", b.Location(file), err)
}

func (b *Bucket) Location(file string) string {
	return fmt.Sprintf("s3://%s/%s%s", b.bucket, b.prefix, file)
}

func (b *Bucket) List(ctx context.Context, ext string) ([]string, error) {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s", ErrNotFound, b.bucket)
	}

	var names []string
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: b.prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, b.prefix)
		if strings.Contains(name, "/") || !strings.HasSuffix(name, ext) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
