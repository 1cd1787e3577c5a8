package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const uploadTimeout = 30 * time.Second

// Uploader stores rendered frames in an S3-compatible bucket.
type Uploader struct {
	bucket string
	client *s3.S3
}

// NewUploaderFromEnv builds an uploader from the S3_* environment
// variables. Returns nil without error when no credentials are set.
func NewUploaderFromEnv() (*Uploader, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	if accessKey == "" && secretKey == "" && bucket == "" {
		return nil, nil
	}
	if accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("incomplete S3 configuration, need S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET")
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(os.Getenv("S3_ENDPOINT")),
		Region:           aws.String(os.Getenv("S3_REGION")),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{bucket: bucket, client: s3.New(sess)}, nil
}

// Upload stores data under key with the given content type.
func (u *Uploader) Upload(ctx context.Context, data []byte, key, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return nil
}
