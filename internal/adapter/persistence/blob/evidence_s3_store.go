package blob

import (
	"bytes"
	"context"
	"errors"
	"io"

	"paydesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const defaultEvidenceBucketName = "payment-evidence"

// EvidenceS3Store keeps evidence attachments as immutable S3 objects. The
// object key doubles as the blob identifier recorded on the payment.

type EvidenceS3Store struct {
	s3c    *s3.Client
	bucket string
}

var _ interfaces.IEvidenceStore = (*EvidenceS3Store)(nil)

func NewEvidenceS3Store(s3c *s3.Client) *EvidenceS3Store {
	return &EvidenceS3Store{
		s3c:    s3c,
		bucket: getenvDefault("EVIDENCE_BUCKET", defaultEvidenceBucketName),
	}
}

func (s *EvidenceS3Store) Put(ctx context.Context, data []byte, name string) (string, error) {
	_, err := s.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// Get returns (nil, nil) when the blob does not exist; the caller decides how
// absence surfaces.
func (s *EvidenceS3Store) Get(ctx context.Context, blobID string) ([]byte, error) {
	out, err := s.s3c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(blobID),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
