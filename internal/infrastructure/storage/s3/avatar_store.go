// Package s3 implements the avatar object store on any S3-compatible backend
// (AWS S3 or MinIO). The default avatar asset lives in the same bucket and is
// copied server-side to a per-user key when a profile is provisioned.
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const headTimeout = 5 * time.Second

// Config captures the settings for the avatar bucket.
type Config struct {
	Endpoint      string // empty = default AWS endpoint; set for MinIO
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string // base URL prepended to object keys in rendered views
	DefaultKey    string // object key of the fixed default avatar asset
}

// AvatarStore implements ports.AvatarStore on top of an S3 client.
type AvatarStore struct {
	client     *s3.Client
	uploader   *manager.Uploader
	bucket     string
	baseURL    string
	defaultKey string
}

// New builds the store and verifies that both the bucket and the default
// avatar asset are reachable. A missing default asset is a startup error:
// provisioning can never succeed without it.
func New(ctx context.Context, cfg Config) (*AvatarStore, error) {
	if cfg.Bucket == "" || cfg.Region == "" || cfg.DefaultKey == "" {
		return nil, fmt.Errorf("s3 avatar store: bucket, region and default key must be configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO requires path-style addressing
			o.UsePathStyle = true
		}
	})

	headCtx, cancel := context.WithTimeout(ctx, headTimeout)
	defer cancel()

	if _, err := client.HeadObject(headCtx, &s3.HeadObjectInput{
		Bucket: aws.String(cfg.Bucket),
		Key:    aws.String(cfg.DefaultKey),
	}); err != nil {
		return nil, fmt.Errorf("default avatar asset %q unreachable: %w", cfg.DefaultKey, err)
	}

	return &AvatarStore{
		client:     client,
		uploader:   manager.NewUploader(client),
		bucket:     cfg.Bucket,
		baseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		defaultKey: cfg.DefaultKey,
	}, nil
}

// CopyDefault copies the default avatar asset to destKey server-side.
func (s *AvatarStore) CopyDefault(ctx context.Context, destKey string) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + s.defaultKey),
		Key:        aws.String(destKey),
	})
	if err != nil {
		return fmt.Errorf("copy default avatar to %s: %w", destKey, err)
	}
	return nil
}

// Put uploads a replacement avatar, overwriting whatever is under key.
func (s *AvatarStore) Put(ctx context.Context, key, contentType string, content io.Reader) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload avatar %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL under which the avatar is served.
func (s *AvatarStore) URL(key string) string {
	if s.baseURL == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}
	return s.baseURL + "/" + s.bucket + "/" + key
}
