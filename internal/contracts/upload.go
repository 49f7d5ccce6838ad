// internal/contracts/upload.go

package contracts

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const evidenceFolder = "contracts"

// UploadService stores evidence documents and returns their locator URL
type UploadService interface {
	UploadEvidence(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

// LocalUploadService implements local file storage
type LocalUploadService struct {
	uploadDir string
	baseURL   string
}

// NewLocalUploadService creates a new local upload service
func NewLocalUploadService(uploadDir, baseURL string) UploadService {
	return &LocalUploadService{
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// UploadEvidence writes the file under the local upload directory
func (s *LocalUploadService) UploadEvidence(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	fullPath := filepath.Join(s.uploadDir, evidenceFolder)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := evidenceFilename(header.Filename)
	dst, err := os.Create(filepath.Join(fullPath, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, evidenceFolder, filename), nil
}

// S3UploadService implements AWS S3 file storage
type S3UploadService struct {
	s3Client *s3.S3
	bucket   string
	baseURL  string
}

// NewS3UploadService creates a new S3 upload service
func NewS3UploadService(bucket, region string) (UploadService, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3UploadService{
		s3Client: s3.New(sess),
		bucket:   bucket,
		baseURL:  fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region),
	}, nil
}

// UploadEvidence stores the file in the configured bucket
func (s *S3UploadService) UploadEvidence(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	key := fmt.Sprintf("%s/%s", evidenceFolder, evidenceFilename(header.Filename))

	// s3manager needs a ReadSeeker; multipart files already are one
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(header.Size),
		ContentType:   aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// evidenceFilename generates a unique name preserving the extension
func evidenceFilename(original string) string {
	return fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(original))
}
