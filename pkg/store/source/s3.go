package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetObjectAPI is the subset of the S3 client used by the loader.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Loader reads CSV rows from s3://bucket/key.
func NewS3Loader(client GetObjectAPI, bucket, key string) Loader {
	return &csvLoader{
		location: fmt.Sprintf("s3://%s/%s", bucket, key),
		open: func(ctx context.Context) (io.ReadCloser, error) {
			out, err := client.GetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				return nil, err
			}
			return out.Body, nil
		},
	}
}

// S3Factory builds an S3 client from the default AWS credential chain.
func S3Factory(ctx context.Context, location *url.URL) (Loader, error) {
	bucket := location.Host
	key := strings.TrimPrefix(location.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 location must be s3://bucket/key, got %q", location.String())
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Loader(s3.NewFromConfig(cfg), bucket, key), nil
}
