package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const (
	imagePrefix = "Assets/Images/"
	videoPrefix = "Assets/Videos/"
)

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var videoContentTypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

type IStorageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
	UploadVideo(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

type s3Storage struct {
	client *s3.Client
	host   string
	bucket string
}

// NewS3Storage targets an S3-compatible endpoint (path-style addressing,
// static credentials).
func NewS3Storage(host, bucket, accessKey, secretKey string) (IStorageService, error) {
	cfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion("auto"),
		awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = &host
		o.UsePathStyle = true
	})

	return &s3Storage{
		client: client,
		host:   strings.TrimSuffix(host, "/"),
		bucket: bucket,
	}, nil
}

func (s *s3Storage) upload(ctx context.Context, file *multipart.FileHeader, prefix string, allowed map[string]string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	ext, ok := allowed[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	key := prefix + uuid.NewString() + ext

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &s.bucket,
		Key:           &key,
		Body:          src,
		ContentType:   &contentType,
		ContentLength: &file.Size,
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.host, s.bucket, key), nil
}

func (s *s3Storage) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.upload(ctx, file, imagePrefix, imageContentTypes)
}

func (s *s3Storage) UploadVideo(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.upload(ctx, file, videoPrefix, videoContentTypes)
}

// Delete removes the object behind a public URL produced by this service.
// Old versions are cleaned up best-effort; their failures are swallowed.
func (s *s3Storage) Delete(ctx context.Context, objectURL string) error {
	base := s.host + "/" + s.bucket + "/"
	if !strings.HasPrefix(objectURL, base) {
		return fmt.Errorf("url does not belong to this bucket")
	}
	key := strings.TrimPrefix(objectURL, base)
	if !strings.HasPrefix(key, "Assets/") {
		return fmt.Errorf("url does not point at an asset")
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	// Versioned buckets keep older copies around; removing them is
	// housekeeping, not correctness.
	versions, err := s.client.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{
		Bucket: &s.bucket,
		Prefix: &key,
	})
	if err != nil {
		return nil
	}
	for _, v := range versions.Versions {
		if v.Key == nil || *v.Key != key {
			continue
		}
		_, _ = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket:    &s.bucket,
			Key:       v.Key,
			VersionId: v.VersionId,
		})
	}

	return nil
}
