package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var S3Client *s3.Client

// InitS3 initializes the S3 client
func InitS3(ctx context.Context, region string) error {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config, %v", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	log.Println("S3 Client Initialized")
	return nil
}

// UploadFileToS3 uploads data to bucket under objectKey and returns the key
func UploadFileToS3(ctx context.Context, bucket, objectKey string, data []byte, contentType string) (string, error) {
	if S3Client == nil {
		return "", fmt.Errorf("S3 client is not initialized")
	}

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return objectKey, nil
}
