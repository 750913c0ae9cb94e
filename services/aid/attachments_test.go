package aid

import (
	"fmt"
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAttachments(count int, prefix string) []models.AidAttachment {
	docs := make([]models.AidAttachment, count)
	for i := range docs {
		docs[i] = models.AidAttachment{FileName: fmt.Sprintf("%s-%d.pdf", prefix, i)}
	}
	return docs
}

func TestAppendDocumentsWithinCap(t *testing.T) {
	existing := createAttachments(2, "existing")
	picked := createAttachments(2, "picked")

	merged := AppendDocuments(existing, picked)
	require.Len(t, merged, 4)
	assert.Equal(t, "existing-0.pdf", merged[0].FileName)
	assert.Equal(t, "picked-1.pdf", merged[3].FileName)
}

func TestAppendDocumentsTruncatesSilentlyAtCap(t *testing.T) {
	existing := createAttachments(4, "existing")
	picked := createAttachments(3, "picked")

	merged := AppendDocuments(existing, picked)
	require.Len(t, merged, models.MaxAidDocuments)
	// Only the first file of the pick fits; the rest is dropped without error.
	assert.Equal(t, "picked-0.pdf", merged[4].FileName)
}

func TestAppendDocumentsAtCapIsNoOp(t *testing.T) {
	existing := createAttachments(models.MaxAidDocuments, "existing")
	picked := createAttachments(2, "picked")

	merged := AppendDocuments(existing, picked)
	require.Len(t, merged, models.MaxAidDocuments)
	for i, doc := range merged {
		assert.Equal(t, fmt.Sprintf("existing-%d.pdf", i), doc.FileName)
	}
}

func TestRemoveDocumentAtPreservesOrder(t *testing.T) {
	docs := createAttachments(4, "doc")

	remaining, err := RemoveDocumentAt(docs, 1)
	require.NoError(t, err)
	require.Len(t, remaining, 3)
	assert.Equal(t, "doc-0.pdf", remaining[0].FileName)
	assert.Equal(t, "doc-2.pdf", remaining[1].FileName)
	assert.Equal(t, "doc-3.pdf", remaining[2].FileName)
}

func TestRemoveDocumentAtRejectsOutOfRange(t *testing.T) {
	docs := createAttachments(2, "doc")

	_, err := RemoveDocumentAt(docs, 2)
	assert.Error(t, err)

	_, err = RemoveDocumentAt(docs, -1)
	assert.Error(t, err)
}
