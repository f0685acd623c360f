package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	casedomain "github.com/allisson/caseflow/internal/caserecord/domain"
	apperrors "github.com/allisson/caseflow/internal/errors"
)

func TestBlobEvidenceStore_Fetch(t *testing.T) {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	require.NoError(t, bucket.WriteAll(ctx, "documents/doc-1", []byte("pdf-bytes"), nil))

	store := NewBlobEvidenceStore(bucket)

	t.Run("Success_FetchByFullURL", func(t *testing.T) {
		content, err := store.Fetch(ctx, "http://docstore/documents/doc-1")

		require.NoError(t, err)
		assert.Equal(t, []byte("pdf-bytes"), content)
	})

	t.Run("Success_FetchByBareKey", func(t *testing.T) {
		content, err := store.Fetch(ctx, "documents/doc-1")

		require.NoError(t, err)
		assert.Equal(t, []byte("pdf-bytes"), content)
	})

	t.Run("Error_MissingDocument", func(t *testing.T) {
		_, err := store.Fetch(ctx, "documents/missing")
		assert.ErrorIs(t, err, casedomain.ErrDocumentNotFound)
	})

	t.Run("Error_EmptyURL", func(t *testing.T) {
		_, err := store.Fetch(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestKeyFromURL(t *testing.T) {
	t.Run("Success_FullURL", func(t *testing.T) {
		key, err := keyFromURL("https://docstore.example.com/documents/abc?download=true")
		require.NoError(t, err)
		assert.Equal(t, "documents/abc", key)
	})

	t.Run("Error_NoPath", func(t *testing.T) {
		_, err := keyFromURL("https://docstore.example.com")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
