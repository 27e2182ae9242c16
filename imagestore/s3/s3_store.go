// Package s3 implements imagestore.Store for AWS S3.
package s3

import (
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/matchgo/imagestore"
)

// Store implements imagestore.Store backed by an S3 bucket.
type Store struct {
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewStore creates an S3 image store.
// rootPrefix is prepended to all keys (e.g. "uploads/").
func NewStore(client *s3.Client, bucket, rootPrefix string) *Store {
	return &Store{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     rootPrefix,
	}
}

// NewStoreFromConfig creates an S3 image store using the default AWS
// configuration chain (environment, shared config, instance role).
func NewStoreFromConfig(ctx context.Context, bucket, rootPrefix string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

func (s *Store) key(ref string) string {
	return path.Join(s.prefix, ref)
}

// Fetch implements imagestore.Store.
func (s *Store) Fetch(ctx context.Context, ref string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, imagestore.ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, imagestore.ErrNotFound
		}
		return nil, err
	}

	return buf.Bytes(), nil
}
