package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds connection settings for an S3-compatible backend
// (AWS or MinIO).
type S3Config struct {
	Region       string
	RootUser     string
	RootPassword string
	BaseEndpoint string
	ShareExpiry  time.Duration
}

// s3API is the object-level subset of the S3 client used by S3Storage.
type s3API interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage performs object operations for s3://bucket/key URIs.
type S3Storage struct {
	client      s3API
	presign     func(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
	shareExpiry time.Duration
}

// NewS3Storage builds an S3 client from cfg. Credentials are static, as
// with a MinIO root user.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.RootUser,
			cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	expiry := cfg.ShareExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presignClient := s3.NewPresignClient(client)
	presign := func(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
		req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(expiry))
		if err != nil {
			return "", err
		}
		return req.URL, nil
	}

	return &S3Storage{client: client, presign: presign, shareExpiry: expiry}, nil
}

// splitURI parses s3://bucket/key.
func splitURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed s3 uri: %s", uri)
	}
	return bucket, key, nil
}

func (s *S3Storage) Copy(ctx context.Context, sourceURI, destinationURI string) error {
	srcBucket, srcKey, err := splitURI(sourceURI)
	if err != nil {
		return err
	}
	dstBucket, dstKey, err := splitURI(destinationURI)
	if err != nil {
		return err
	}
	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(srcBucket + "/" + srcKey),
	})
	if err != nil {
		return fmt.Errorf("copy object: %w", err)
	}
	return nil
}

func (s *S3Storage) Move(ctx context.Context, sourceURI, destinationURI string) error {
	if err := s.Copy(ctx, sourceURI, destinationURI); err != nil {
		return err
	}
	return s.Delete(ctx, sourceURI)
}

func (s *S3Storage) Delete(ctx context.Context, uri string) error {
	bucket, key, err := splitURI(uri)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Storage) Stat(ctx context.Context, uri string) (Info, error) {
	bucket, key, err := splitURI(uri)
	if err != nil {
		return Info{}, err
	}
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return Info{URI: uri}, nil
		}
		return Info{}, fmt.Errorf("head object: %w", err)
	}

	info := Info{
		URI:         uri,
		Exists:      true,
		IsDirectory: strings.HasSuffix(key, "/"),
	}
	if out.ContentLength != nil {
		info.Size = *out.ContentLength
	}
	if out.LastModified != nil {
		info.ModTime = *out.LastModified
	}
	return info, nil
}

// MakeDirectory creates a zero-byte folder marker, the common S3 convention.
func (s *S3Storage) MakeDirectory(ctx context.Context, uri string) error {
	bucket, key, err := splitURI(uri)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(key, "/") {
		key += "/"
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("put folder marker: %w", err)
	}
	return nil
}

// Share returns a presigned GET URL for the object.
func (s *S3Storage) Share(ctx context.Context, uri string) (string, error) {
	bucket, key, err := splitURI(uri)
	if err != nil {
		return "", err
	}
	url, err := s.presign(ctx, bucket, key, s.shareExpiry)
	if err != nil {
		return "", fmt.Errorf("presign share url: %w", err)
	}
	return url, nil
}
