package interfaces

import "context"

// IEvidenceStore abstracts blob storage for evidence attachments (S3).
//
// Blobs are immutable once stored; there is no update or delete path.
// Get returns (nil, nil) when the blob id does not exist.

type IEvidenceStore interface {
	Put(ctx context.Context, data []byte, name string) (blobID string, err error)
	Get(ctx context.Context, blobID string) ([]byte, error)
}
