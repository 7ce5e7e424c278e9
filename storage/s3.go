package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Client wraps the S3 API for media objects. Retrieval URLs are never asked
// of the service; they are a pure function of bucket, region and key.
type Client struct {
	api    *s3.Client
	bucket string
	region string
}

// NewClientFromEnv builds a Client from AWS_BUCKET_NAME, AWS_REGION and,
// when present, static AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY credentials.
func NewClientFromEnv(ctx context.Context) (*Client, error) {
	bucket := os.Getenv("AWS_BUCKET_NAME")
	region := os.Getenv("AWS_REGION")
	if bucket == "" || region == "" {
		return nil, fmt.Errorf("storage: AWS_BUCKET_NAME and AWS_REGION must be set")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	return &Client{api: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

func (c *Client) Bucket() string { return c.bucket }
func (c *Client) Region() string { return c.region }

// Put writes body under key with the given content type.
func (c *Client) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object under key.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// URLFor returns the public retrieval URL for key.
func (c *Client) URLFor(key string) string {
	return PublicURL(c.bucket, c.region, key)
}

// KeyFor reports whether url points into this bucket and, if so, the object
// key it refers to. Data URIs and foreign hosts return false.
func (c *Client) KeyFor(url string) (string, bool) {
	prefix := PublicURL(c.bucket, c.region, "")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// PublicURL is the canonical virtual-hosted retrieval URL convention.
func PublicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// ObjectKey derives a collision-free storage key for an upload:
// folder/YYYY/MM/DD/<uuid4>_<filename>. Concurrent uploads of the same
// filename on the same day still get distinct keys.
func ObjectKey(folder, filename string) string {
	filename = strings.ReplaceAll(filename, " ", "_")
	return fmt.Sprintf("%s/%s/%s_%s",
		folder, time.Now().UTC().Format("2006/01/02"), uuid.NewString(), filename)
}
