package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// MinIO stores uploads in an S3-compatible bucket and hands back the
// object URL.
type MinIO struct {
	client   *minio.Client
	bucket   string
	endpoint string
	secure   bool

	bucketOnce sync.Once
	bucketErr  error
}

func NewMinIO(endpoint, accessKey, secretKey, bucket string, secure bool) (*MinIO, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}
	return &MinIO{client: client, bucket: bucket, endpoint: endpoint, secure: secure}, nil
}

// ensureBucket creates the bucket on first use.
func (m *MinIO) ensureBucket(ctx context.Context) error {
	m.bucketOnce.Do(func() {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			m.bucketErr = errors.Wrapf(err, "check bucket %s", m.bucket)
			return
		}
		if !exists {
			if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
				m.bucketErr = errors.Wrapf(err, "create bucket %s", m.bucket)
			}
		}
	})
	return m.bucketErr
}

func (m *MinIO) Upload(ctx context.Context, f File, folder string) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", errors.Wrap(ErrUploadFailed, err.Error())
	}
	key := objectKey(folder, f)
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(f.Data), f.Size(), minio.PutObjectOptions{
		ContentType: f.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(ErrUploadFailed, err.Error())
	}
	return m.objectURL(key), nil
}

func (m *MinIO) objectURL(key string) string {
	scheme := "http"
	if m.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key)
}

func objectKey(folder string, f File) string {
	return path.Join(strings.Trim(folder, "/"), uuid.NewString()+f.Extension())
}
