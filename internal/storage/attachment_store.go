package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AttachmentStore keeps uploaded sheet documents (task evidence files,
// launch release PDFs) in a MinIO bucket. A nil client degrades every
// operation to ErrStoreUnavailable, so the server can run without an
// object store in development.
type AttachmentStore struct {
	client *minio.Client
	bucket string
}

var ErrStoreUnavailable = fmt.Errorf("attachment store is not configured")

// Options mirrors the minio connection settings.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New connects to MinIO. An empty endpoint yields a store whose
// operations fail with ErrStoreUnavailable rather than an error here.
func New(opts Options) (*AttachmentStore, error) {
	if opts.Endpoint == "" {
		return &AttachmentStore{bucket: opts.Bucket}, nil
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}
	return &AttachmentStore{client: client, bucket: opts.Bucket}, nil
}

// Put stores the file under attachments/<yyyy/mm/dd>/<random><ext> and
// returns the object key.
func (s *AttachmentStore) Put(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (string, error) {
	if s.client == nil {
		return "", ErrStoreUnavailable
	}
	objectName := fmt.Sprintf("attachments/%s/%s%s",
		time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	return objectName, nil
}

// Get opens the stored object for streaming back to the client.
func (s *AttachmentStore) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if s.client == nil {
		return nil, ErrStoreUnavailable
	}
	object, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return object, nil
}

// Delete removes the stored object.
func (s *AttachmentStore) Delete(ctx context.Context, objectName string) error {
	if s.client == nil {
		return ErrStoreUnavailable
	}
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
