package aid

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAidRepo records created applications without touching Mongo.
type recordingAidRepo struct {
	created []*models.AidApplication
}

func (r *recordingAidRepo) Create(app *models.AidApplication) error {
	r.created = append(r.created, app)
	return nil
}

func (r *recordingAidRepo) GetByID(id string) (*models.AidApplication, error) {
	for _, app := range r.created {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, fmt.Errorf("application with id %s not found", id)
}

func (r *recordingAidRepo) List(filter models.AidApplicationFilter, params models.ListParams) ([]models.AidApplication, int64, error) {
	return nil, 0, nil
}

func (r *recordingAidRepo) UpdateStatus(id, status string) error { return nil }

func (r *recordingAidRepo) Delete(id string) error {
	for i, app := range r.created {
		if app.ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("application with id %s not found", id)
}

func (r *recordingAidRepo) CountByStatus(status string) (int64, error) { return 0, nil }

// recordingStorage records uploads and deletions without touching Cloudinary.
type recordingStorage struct {
	uploads       int
	uploadedSizes []int
	deleted       []string
}

func (s *recordingStorage) UploadStream(ctx context.Context, reader io.Reader, fileName, destFolder string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.uploads++
	s.uploadedSizes = append(s.uploadedSizes, len(data))
	return fmt.Sprintf("%s/upload-%d", destFolder, s.uploads), nil
}

func (s *recordingStorage) DeleteFile(ctx context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *recordingStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://cdn.test/%s/%s", resourceType, publicID), nil
}

func createSubmitService() (*DefaultAidService, *recordingAidRepo, *recordingStorage) {
	repo := &recordingAidRepo{}
	store := &recordingStorage{}
	return &DefaultAidService{Repo: repo, Storage: store}, repo, store
}

func TestSubmitDirectRejectsWithoutTermsBeforeAnySideEffect(t *testing.T) {
	svc, repo, store := createSubmitService()
	draft := createValidDraft()
	draft.TermsAccepted = false

	_, err := svc.SubmitDirect("user-1", draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accept the terms")

	// The terms gate fires before anything is uploaded or saved.
	assert.Zero(t, store.uploads)
	assert.Empty(t, repo.created)
}

func TestSubmitDirectRejectsIncompleteDraft(t *testing.T) {
	svc, repo, store := createSubmitService()
	draft := createValidDraft()
	draft.FinancialInfo.RequestedAmount = "abc"

	_, err := svc.SubmitDirect("user-1", draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application is incomplete")
	assert.Zero(t, store.uploads)
	assert.Empty(t, repo.created)
}

func TestSubmitDirectUploadsDocumentsAndPersists(t *testing.T) {
	svc, repo, store := createSubmitService()
	draft := createValidDraft()
	draft.Documents = createAttachments(2, "doc")
	for i := range draft.Documents {
		draft.Documents[i].Content = []byte("content")
	}

	app, err := svc.SubmitDirect("user-1", draft)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, models.AidStatusSubmitted, app.Status)
	assert.Equal(t, "user-1", app.UserID)
	assert.Equal(t, 2, store.uploads)
	require.Len(t, repo.created, 1)

	// Raw file bytes never reach the database; only the storage reference.
	for _, doc := range app.Documents {
		assert.NotEmpty(t, doc.PublicID)
		assert.Nil(t, doc.Content)
	}

	// The caller's draft keeps its bytes untouched.
	for _, doc := range draft.Documents {
		assert.NotNil(t, doc.Content)
		assert.Empty(t, doc.PublicID)
	}
}

func TestSubmitUploadsSessionAttachmentBytes(t *testing.T) {
	sessions, _ := createTestSessionStore(t)
	repo := &recordingAidRepo{}
	store := &recordingStorage{}
	svc := &DefaultAidService{Repo: repo, Sessions: sessions, Storage: store}

	ctx := context.Background()
	require.NoError(t, sessions.Set(ctx, createWizardSession("sess-submit")))

	app, err := svc.Submit("sess-submit")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	require.Equal(t, 1, store.uploads)

	// Bytes attached during the wizard survive the Redis round trip into
	// storage; an empty upload here means the draft lost its file content.
	assert.Equal(t, []int{len("pdf")}, store.uploadedSizes)
	require.Len(t, app.Documents, 1)
	assert.NotEmpty(t, app.Documents[0].PublicID)

	// The draft is discarded once submitted.
	_, err = sessions.Get(ctx, "sess-submit")
	require.Error(t, err)
	_, err = svc.Submit("sess-submit")
	require.Error(t, err)
}

func TestDocumentURLSignsStoredDocument(t *testing.T) {
	svc, _, _ := createSubmitService()
	app, err := svc.SubmitDirect("user-1", createValidDraft())
	require.NoError(t, err)

	url, err := svc.DocumentURL(app.ID, 0)
	require.NoError(t, err)
	assert.Contains(t, url, app.Documents[0].PublicID)
}

func TestDocumentURLRejectsOutOfRangeIndex(t *testing.T) {
	svc, _, _ := createSubmitService()
	app, err := svc.SubmitDirect("user-1", createValidDraft())
	require.NoError(t, err)

	for _, index := range []int{-1, 1} {
		_, err := svc.DocumentURL(app.ID, index)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestDeleteApplicationRemovesStoredDocuments(t *testing.T) {
	svc, repo, store := createSubmitService()
	app, err := svc.SubmitDirect("user-1", createValidDraft())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteApplication(app.ID))
	assert.Equal(t, []string{app.Documents[0].PublicID}, store.deleted)
	assert.Empty(t, repo.created)

	err = svc.DeleteApplication(app.ID)
	require.Error(t, err)
}
