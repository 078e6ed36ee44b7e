package source_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"node-config/core/storage/mocks"
	"node-config/feature/nodeconfig/source"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestBucket_Read(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "configs", "nodes/lake.toml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("sleep_interval = 10")), nil)

		data, err := source.NewBucket(client, "configs", "nodes/").Read(context.Background(), "lake.toml")
		require.NoError(t, err)
		assert.Equal(t, "sleep_interval = 10", string(data))
		client.AssertExpectations(t)
	})

	t.Run("NoSuchKeyOnRead", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "configs", "nodes/garden.toml", mock.Anything).
			Return(io.NopCloser(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}}), nil)

		_, err := source.NewBucket(client, "configs", "nodes/").Read(context.Background(), "garden.toml")
		assert.ErrorIs(t, err, source.ErrNotFound)
		assert.Contains(t, err.Error(), "s3://configs/nodes/garden.toml")
	})

	t.Run("TransportError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "configs", "nodes/lake.toml", mock.Anything).
			Return(nil, assert.AnError)

		_, err := source.NewBucket(client, "configs", "nodes/").Read(context.Background(), "lake.toml")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, source.ErrNotFound)
	})
}

func TestBucket_List(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "configs").Return(true, nil)

	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "nodes/lake.toml"}
	ch <- minio.ObjectInfo{Key: "nodes/archive/old.toml"}
	ch <- minio.ObjectInfo{Key: "nodes/garden.toml"}
	ch <- minio.ObjectInfo{Key: "nodes/readme.md"}
	close(ch)
	client.On("ListObjects", mock.Anything, "configs", minio.ListObjectsOptions{Prefix: "nodes/"}).
		Return((<-chan minio.ObjectInfo)(ch))

	names, err := source.NewBucket(client, "configs", "nodes/").List(context.Background(), ".toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"garden.toml", "lake.toml"}, names)
}

func TestBucket_ListMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "configs").Return(false, nil)

	_, err := source.NewBucket(client, "configs", "nodes/").List(context.Background(), ".toml")
	assert.ErrorIs(t, err, source.ErrNotFound)
}
