package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
)

// Uploader sube objetos a un bucket S3-compatible y devuelve la URL
// pública. Hoy solo lo usan las fotos de barberos.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		"",
	)

	client := s3.New(s3.Options{
		Credentials:  aws.NewCredentialsCache(creds),
		Region:       cfg.S3.Region,
		BaseEndpoint: aws.String(cfg.S3.Endpoint),
		UsePathStyle: true,
	})

	return &Uploader{
		client:        client,
		bucket:        cfg.S3.Bucket,
		publicBaseURL: cfg.S3.PublicBaseURL,
	}
}

func (u *Uploader) Upload(
	ctx context.Context,
	directory string,
	name string,
	contentType string,
	data []byte,
) (string, error) {

	key := path.Join(directory, name)
	reader := bytes.NewReader(data)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.publicBaseURL, key), nil
}
