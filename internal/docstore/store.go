// Package docstore fetches evidence document content from the external
// document store, addressed by document URL.
package docstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

// EvidenceStore retrieves raw document bytes by document URL.
type EvidenceStore interface {
	Fetch(ctx context.Context, documentURL string) ([]byte, error)
}

// blobEvidenceStore implements EvidenceStore over a gocloud blob bucket. The
// document URL's path identifies the object key inside the bucket.
type blobEvidenceStore struct {
	bucket *blob.Bucket
}

// NewBlobEvidenceStore creates an EvidenceStore backed by the given bucket.
func NewBlobEvidenceStore(bucket *blob.Bucket) EvidenceStore {
	return &blobEvidenceStore{bucket: bucket}
}

// Fetch reads the document content. A missing object maps to
// casedomain.ErrDocumentNotFound.
func (s *blobEvidenceStore) Fetch(ctx context.Context, documentURL string) ([]byte, error) {
	key, err := keyFromURL(documentURL)
	if err != nil {
		return nil, err
	}

	content, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrapf(casedomain.ErrDocumentNotFound, "document %q", key)
		}
		return nil, fmt.Errorf("failed to fetch document %q: %w", key, err)
	}

	return content, nil
}

// keyFromURL extracts the bucket key from a document URL. Bare keys are
// accepted as-is.
func keyFromURL(documentURL string) (string, error) {
	if documentURL == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "document url is empty")
	}

	if !strings.Contains(documentURL, "://") {
		return documentURL, nil
	}

	parsed, err := url.Parse(documentURL)
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid document url %q", documentURL)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "document url %q has no path", documentURL)
	}

	return key, nil
}
