package storage

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const basePath = "imports/"

// S3Client keeps a copy of every uploaded import file.
type S3Client interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)
}

// PutObjectAPI is the subset of *s3.Client used by the archive.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type storageClient struct {
	bucket string
	client PutObjectAPI
}

func NewStorageClient(ctx context.Context, region, bucket string) (S3Client, error) {
	if bucket == "" {
		return nil, errors.New("bucket name is empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewWithAPI(s3.NewFromConfig(cfg), bucket), nil
}

func NewWithAPI(api PutObjectAPI, bucket string) S3Client {
	return &storageClient{
		bucket: bucket,
		client: api,
	}
}

// UploadFile stores data under imports/<filename> and returns the object key.
func (s *storageClient) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	if filename == "" {
		return "", errors.New("filename is empty")
	}

	key := basePath + filename
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return "", err
	}
	return key, nil
}
