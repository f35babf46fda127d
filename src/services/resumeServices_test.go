package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func newResumeService(t *testing.T) (*ResumeService, *store.BlobStore) {
	t.Helper()
	stores := newTestStores(t)
	return NewResumeService(stores.Resume, stores.Blobs), stores.Blobs
}

func TestResumeService_SeededDefault(t *testing.T) {
	svc, _ := newResumeService(t)

	resume, err := svc.GetResume()
	require.NoError(t, err)

	assert.NotEmpty(t, resume.Summary)
	assert.Empty(t, resume.Education)
	assert.Nil(t, resume.CVFile)
}

func TestResumeService_ReplacePreservesCVFile(t *testing.T) {
	svc, blobs := newResumeService(t)

	ref, err := blobs.Save("pdf", "cv.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	require.NoError(t, svc.SetPDF(ref))

	updated, err := svc.ReplaceResume(&models.ResumeModel{
		Summary: "New summary",
		Skills:  []models.SkillEntry{{ID: 1, Name: "Go", Level: 90}},
	})
	require.NoError(t, err)

	assert.Equal(t, "New summary", updated.Summary)
	require.NotNil(t, updated.CVFile)
	assert.Equal(t, ref, *updated.CVFile)
}

func TestResumeService_SetPDFReplacesOldBlob(t *testing.T) {
	svc, blobs := newResumeService(t)

	first, err := blobs.Save("pdf", "cv.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	require.NoError(t, svc.SetPDF(first))

	second, err := blobs.Save("pdf", "cv.pdf", strings.NewReader("two"))
	require.NoError(t, err)
	require.NoError(t, svc.SetPDF(second))

	// Exactly one blob remains referenced; the previous one is gone.
	resume, err := svc.GetResume()
	require.NoError(t, err)
	require.NotNil(t, resume.CVFile)
	assert.Equal(t, second, *resume.CVFile)

	_, ok := blobs.Path(first)
	assert.False(t, ok)
	_, ok = blobs.Path(second)
	assert.True(t, ok)
}

func TestResumeService_ClearPDF(t *testing.T) {
	svc, blobs := newResumeService(t)

	// Nothing stored yet.
	assert.ErrorIs(t, svc.ClearPDF(), store.ErrNotFound)

	ref, err := blobs.Save("pdf", "cv.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	require.NoError(t, svc.SetPDF(ref))

	require.NoError(t, svc.ClearPDF())

	resume, err := svc.GetResume()
	require.NoError(t, err)
	assert.Nil(t, resume.CVFile)
	_, ok := blobs.Path(ref)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.ClearPDF(), store.ErrNotFound)
}

func TestResumeService_PDFPath(t *testing.T) {
	svc, blobs := newResumeService(t)

	_, err := svc.PDFPath()
	assert.ErrorIs(t, err, store.ErrNotFound)

	ref, err := blobs.Save("pdf", "cv.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	require.NoError(t, svc.SetPDF(ref))

	path, err := svc.PDFPath()
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
