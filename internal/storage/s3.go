package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"heartbank/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the part of *s3.Client the exporter needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ExportStorage writes deposit archives to an S3 bucket.
type ExportStorage struct {
	client ObjectPutter
	bucket string
	now    func() time.Time
}

func NewExportStorage(client ObjectPutter, bucket string) *ExportStorage {
	return &ExportStorage{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

// ExportKey is exports/<userID>/<UTC timestamp>.json.
func ExportKey(userID string, at time.Time) string {
	return fmt.Sprintf("exports/%s/%s.json", userID, at.UTC().Format("20060102T150405Z"))
}

// UploadExport stores the user's deposits and returns the object key.
func (s *ExportStorage) UploadExport(ctx context.Context, user *types.User, deposits []*types.Deposit) (string, error) {
	exportedAt := s.now().UTC()

	doc := types.DepositExport{
		UserID:     user.ID,
		Language:   user.Language,
		ExportedAt: exportedAt,
		Deposits:   deposits,
	}
	if doc.Deposits == nil {
		doc.Deposits = []*types.Deposit{}
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	key := ExportKey(user.ID, exportedAt)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("application/json; charset=utf-8"),
		ContentLength: aws.Int64(int64(len(body))),
		Metadata: map[string]string{
			"user-id":       user.ID,
			"deposit-count": fmt.Sprint(len(doc.Deposits)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export to s3://%s/%s: %w", s.bucket, key, err)
	}

	return key, nil
}

// URI returns the s3:// location of key.
func (s *ExportStorage) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, key)
}
