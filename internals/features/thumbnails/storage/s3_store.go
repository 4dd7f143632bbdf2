package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Store: upload public-read ke S3 atau layanan kompatibel (endpoint kustom).
type S3Store struct {
	client   *s3.S3
	bucket   string
	prefix   string
	endpoint string
	region   string
}

func NewS3Store(bucket, prefix, region, endpoint, accessKey, secretKey string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for s3 thumbnail backend")
	}

	cfg := aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	} else {
		log.Warn().Msg("no S3 credentials provided, falling back to the default AWS credential chain")
	}

	sess, err := session.NewSession(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		client:   s3.New(sess),
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		endpoint: strings.TrimSuffix(endpoint, "/"),
		region:   region,
	}, nil
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objKey := s.objectKey(key)
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(objKey),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		ACL:          aws.String(s3.ObjectCannedACLPublicRead),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object to S3: %w", err)
	}
	log.Debug().Str("bucket", s.bucket).Str("key", objKey).Int("bytes", len(data)).Msg("thumbnail uploaded")
	return s.PublicURL(objKey), nil
}

func (s *S3Store) PublicURL(objKey string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objKey)
}
