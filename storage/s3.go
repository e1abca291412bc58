package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store persists objects in an S3 bucket
type S3Store struct {
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	region   string
	basePath string
}

// S3Option customizes an S3Store
type S3Option func(*S3Store)

// WithBasePath prefixes every key with the given path
func WithBasePath(path string) S3Option {
	return func(s *S3Store) { s.basePath = path }
}

// NewS3Store wraps an existing S3 client
func NewS3Store(client *s3.Client, bucket, region string, opts ...S3Option) *S3Store {
	store := &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		region:  region,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// NewS3StoreFromEnv builds a store from the default AWS credential chain.
// The bucket comes from OWM_S3_BUCKET and the region from AWS_REGION.
func NewS3StoreFromEnv(ctx context.Context, opts ...S3Option) (*S3Store, error) {
	bucket := os.Getenv("OWM_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("storage: OWM_S3_BUCKET is not set")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	return NewS3Store(s3.NewFromConfig(cfg), bucket, cfg.Region, opts...), nil
}

func (s *S3Store) key(key string) string {
	if s.basePath == "" {
		return key
	}
	return s.basePath + "/" + key
}

func (s *S3Store) Put(ctx context.Context, obj Object) error {
	if obj.Key == "" {
		return fmt.Errorf("storage: empty key")
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(obj.Key)),
		Body:   bytes.NewReader(obj.Data),
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("storage: put %s: %w", obj.Key, err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	obj := &Object{Key: key, Data: data}
	if out.ContentType != nil {
		obj.ContentType = *out.ContentType
	}
	return obj, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Presign(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("storage: presign %s: %w", key, err)
	}
	return req.URL, nil
}

// PublicURL reports the virtual-hosted URL for a key. It does not check
// that the object exists or that the bucket allows public reads.
func (s *S3Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s.key(key))
}
