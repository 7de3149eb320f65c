package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioBackend stores assets in an S3-compatible object store under a fixed
// logical folder. The public URL is served by the store or a CDN in front of
// it; this service never proxies reads for remote assets.
type MinioBackend struct {
	client     *minio.Client
	bucket     string
	folder     string
	publicBase string
}

// NewMinioBackend creates a MinIO client, ensures the bucket exists with a
// public-read policy, and returns a ready-to-use backend.
func NewMinioBackend(endpoint, accessKey, secretKey, bucket, folder, publicBase string, useSSL bool) (*MinioBackend, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	log.Printf("storage: minio backend, endpoint=%s bucket=%s folder=%s", endpoint, bucket, folder)
	return &MinioBackend{
		client:     client,
		bucket:     bucket,
		folder:     strings.Trim(folder, "/"),
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Store uploads the stream under <folder>/<uuid>. Any remote failure
// (network, auth, quota) is wrapped in ErrUnavailable; the raw cause is for
// server logs and never reaches the client.
func (b *MinioBackend) Store(ctx context.Context, r io.Reader, size int64, contentType, originalFilename string) (*StoredObject, error) {
	key := NewIdentifier()
	if b.folder != "" {
		key = b.folder + "/" + key
	}

	_, err := b.client.PutObject(ctx, b.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: put object %q: %v", ErrUnavailable, key, err)
	}

	// The object key is the public_id handed back to the caller; it is the
	// only handle for a later delete.
	return &StoredObject{
		Identifier: key,
		PublicURL:  b.publicBase + "/" + key,
	}, nil
}

// Delete removes the object at identifier. S3 deletes are silently
// idempotent, so a Stat runs first to report ErrNotFound for unknown keys.
func (b *MinioBackend) Delete(ctx context.Context, identifier string) error {
	if _, err := b.client.StatObject(ctx, b.bucket, identifier, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrNotFound
		}
		return fmt.Errorf("%w: stat object %q: %v", ErrUnavailable, identifier, err)
	}
	if err := b.client.RemoveObject(ctx, b.bucket, identifier, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: remove object %q: %v", ErrUnavailable, identifier, err)
	}
	return nil
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET
// on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
