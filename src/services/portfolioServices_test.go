package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func newPortfolioService(t *testing.T) (*PortfolioService, *store.BlobStore) {
	t.Helper()
	stores := newTestStores(t)
	return NewPortfolioService(stores.Portfolio, stores.Blobs), stores.Blobs
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func uploadBlob(t *testing.T, blobs *store.BlobStore, content string) string {
	t.Helper()
	ref, err := blobs.Save("images", "img.png", strings.NewReader(content))
	require.NoError(t, err)
	return ref
}

func TestPortfolioService_CreateWithCoverUpload(t *testing.T) {
	svc, blobs := newPortfolioService(t)
	cover := uploadBlob(t, blobs, "cover")
	extra := uploadBlob(t, blobs, "extra")

	item, err := svc.CreateItem(&models.PortfolioInput{
		Title:         strPtr("X"),
		ServiceID:     intPtr(1),
		CategoryID:    intPtr(1),
		Tags:          []string{"a", "b"},
		Featured:      boolPtr(true),
		CoverUpload:   true,
		UploadedFiles: []string{cover, extra},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, item.ID)
	assert.Equal(t, cover, item.CoverImage)
	assert.Equal(t, cover, item.Image)
	assert.Equal(t, []string{extra}, item.GalleryImages)
	assert.Equal(t, []string{"a", "b"}, item.Tags)
	assert.True(t, item.Featured)
}

func TestPortfolioService_CreateWithoutFilesUsesPlaceholder(t *testing.T) {
	svc, _ := newPortfolioService(t)

	item, err := svc.CreateItem(&models.PortfolioInput{Title: strPtr("X")})
	require.NoError(t, err)

	assert.Equal(t, models.PlaceholderImage, item.CoverImage)
	assert.Equal(t, models.PlaceholderImage, item.Image)
	assert.Empty(t, item.GalleryImages)
	assert.Empty(t, item.Tags)
	assert.Empty(t, item.Tools)
}

func TestPortfolioService_GalleryOnlyUploadKeepsCover(t *testing.T) {
	svc, blobs := newPortfolioService(t)
	first := uploadBlob(t, blobs, "one")
	second := uploadBlob(t, blobs, "two")

	item, err := svc.CreateItem(&models.PortfolioInput{
		Title:         strPtr("X"),
		UploadedFiles: []string{first, second},
	})
	require.NoError(t, err)

	// Without the cover flag every file is a gallery addition.
	assert.Equal(t, models.PlaceholderImage, item.CoverImage)
	assert.Equal(t, []string{first, second}, item.GalleryImages)
}

func TestPortfolioService_UpdateMergesFields(t *testing.T) {
	svc, _ := newPortfolioService(t)

	created, err := svc.CreateItem(&models.PortfolioInput{
		Title:       strPtr("Original"),
		Description: strPtr("desc"),
		Tags:        []string{"a"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(created.ID, &models.PortfolioInput{Title: strPtr("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, []string{"a"}, updated.Tags)
	assert.Equal(t, models.PlaceholderImage, updated.CoverImage)
}

func TestPortfolioService_UpdatePrunesDroppedBlobs(t *testing.T) {
	svc, blobs := newPortfolioService(t)
	keep := uploadBlob(t, blobs, "keep")
	drop := uploadBlob(t, blobs, "drop")

	created, err := svc.CreateItem(&models.PortfolioInput{
		Title:         strPtr("X"),
		UploadedFiles: []string{keep, drop},
	})
	require.NoError(t, err)
	require.Equal(t, []string{keep, drop}, created.GalleryImages)

	// The caller retains only one gallery image; the dropped blob is
	// removed from the asset store.
	updated, err := svc.UpdateItem(created.ID, &models.PortfolioInput{
		ExistingGallery: []string{keep},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, updated.GalleryImages)

	_, ok := blobs.Path(keep)
	assert.True(t, ok)
	_, ok = blobs.Path(drop)
	assert.False(t, ok)
}

func TestPortfolioService_UpdateReplacesCover(t *testing.T) {
	svc, blobs := newPortfolioService(t)
	oldCover := uploadBlob(t, blobs, "old")
	newCover := uploadBlob(t, blobs, "new")

	created, err := svc.CreateItem(&models.PortfolioInput{
		Title:         strPtr("X"),
		CoverUpload:   true,
		UploadedFiles: []string{oldCover},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateItem(created.ID, &models.PortfolioInput{
		CoverUpload:   true,
		UploadedFiles: []string{newCover},
	})
	require.NoError(t, err)

	assert.Equal(t, newCover, updated.CoverImage)
	assert.Equal(t, newCover, updated.Image)

	_, ok := blobs.Path(oldCover)
	assert.False(t, ok, "replaced cover blob should be removed")
}

func TestPortfolioService_DeleteRemovesBlobs(t *testing.T) {
	svc, blobs := newPortfolioService(t)
	cover := uploadBlob(t, blobs, "cover")
	gallery := uploadBlob(t, blobs, "gallery")

	created, err := svc.CreateItem(&models.PortfolioInput{
		Title:         strPtr("X"),
		CoverUpload:   true,
		UploadedFiles: []string{cover, gallery},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(created.ID))

	_, ok := blobs.Path(cover)
	assert.False(t, ok)
	_, ok = blobs.Path(gallery)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteItem(created.ID), store.ErrNotFound)
}

func TestPortfolioService_FilterByServiceAndCategory(t *testing.T) {
	svc, _ := newPortfolioService(t)

	_, err := svc.CreateItem(&models.PortfolioInput{Title: strPtr("A"), ServiceID: intPtr(1), CategoryID: intPtr(1)})
	require.NoError(t, err)
	_, err = svc.CreateItem(&models.PortfolioInput{Title: strPtr("B"), ServiceID: intPtr(1), CategoryID: intPtr(2)})
	require.NoError(t, err)
	_, err = svc.CreateItem(&models.PortfolioInput{Title: strPtr("C"), ServiceID: intPtr(2), CategoryID: intPtr(1)})
	require.NoError(t, err)

	byService, err := svc.GetItemsByService(1)
	require.NoError(t, err)
	assert.Len(t, byService, 2)

	both, err := svc.GetItemsByServiceAndCategory(1, 2)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "B", both[0].Title)
}
