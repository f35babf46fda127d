package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type PortfolioService struct {
	doc   *store.Document[[]models.PortfolioItemModel]
	blobs *store.BlobStore
}

// NewPortfolioService creates a new instance of PortfolioService
func NewPortfolioService(doc *store.Document[[]models.PortfolioItemModel], blobs *store.BlobStore) *PortfolioService {
	return &PortfolioService{doc: doc, blobs: blobs}
}

// GetAllItems retrieves all portfolio item records
func (s *PortfolioService) GetAllItems() ([]models.PortfolioItemModel, error) {
	return s.doc.Load()
}

// GetItemByID retrieves a portfolio item by ID
func (s *PortfolioService) GetItemByID(id int) (*models.PortfolioItemModel, error) {
	items, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// GetItemsByService retrieves the items belonging to one service
func (s *PortfolioService) GetItemsByService(serviceID int) ([]models.PortfolioItemModel, error) {
	return s.filter(func(item models.PortfolioItemModel) bool {
		return item.ServiceID != nil && *item.ServiceID == serviceID
	})
}

// GetItemsByServiceAndCategory retrieves the items matching both parents
func (s *PortfolioService) GetItemsByServiceAndCategory(serviceID, categoryID int) ([]models.PortfolioItemModel, error) {
	return s.filter(func(item models.PortfolioItemModel) bool {
		return item.ServiceID != nil && *item.ServiceID == serviceID &&
			item.CategoryID != nil && *item.CategoryID == categoryID
	})
}

func (s *PortfolioService) filter(keep func(models.PortfolioItemModel) bool) ([]models.PortfolioItemModel, error) {
	items, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	filtered := []models.PortfolioItemModel{}
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// CreateItem creates a portfolio item from a coerced input. With the cover
// flag set the first uploaded file becomes the cover and the rest the
// gallery; otherwise every file is a gallery image and the cover falls back
// to the placeholder sentinel.
func (s *PortfolioService) CreateItem(input *models.PortfolioInput) (*models.PortfolioItemModel, error) {
	var created models.PortfolioItemModel
	_, err := s.doc.Update(func(items []models.PortfolioItemModel) ([]models.PortfolioItemModel, error) {
		item := models.PortfolioItemModel{
			ID:            nextID(items, func(p models.PortfolioItemModel) int { return p.ID }),
			ServiceID:     input.ServiceID,
			CategoryID:    input.CategoryID,
			Tags:          []string{},
			Tools:         []string{},
			GalleryImages: []string{},
		}
		applyInput(&item, input)

		cover := ""
		if len(input.UploadedFiles) > 0 {
			if input.CoverUpload {
				cover = input.UploadedFiles[0]
				item.GalleryImages = append(item.GalleryImages, input.UploadedFiles[1:]...)
			} else {
				item.GalleryImages = append(item.GalleryImages, input.UploadedFiles...)
			}
		}
		if cover == "" {
			cover = models.PlaceholderImage
		}
		item.CoverImage = cover
		item.Image = cover

		created = item
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem merges the supplied fields onto an existing item. Explicit
// existing-cover/existing-gallery values override the stored references
// before new uploads are appended; blobs no longer referenced afterwards are
// removed from the asset store.
func (s *PortfolioService) UpdateItem(id int, input *models.PortfolioInput) (*models.PortfolioItemModel, error) {
	var updated models.PortfolioItemModel
	var dropped []string

	_, err := s.doc.Update(func(items []models.PortfolioItemModel) ([]models.PortfolioItemModel, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			item := items[i]
			before := blobRefs(item)

			applyInput(&item, input)
			if input.ServiceID != nil {
				item.ServiceID = input.ServiceID
			}
			if input.CategoryID != nil {
				item.CategoryID = input.CategoryID
			}

			cover := item.CoverImage
			if cover == "" {
				cover = item.Image
			}
			gallery := item.GalleryImages
			if input.ExistingCover != nil {
				cover = *input.ExistingCover
			}
			if input.ExistingGallery != nil {
				gallery = input.ExistingGallery
			}
			if len(input.UploadedFiles) > 0 {
				if input.CoverUpload {
					cover = input.UploadedFiles[0]
					gallery = append(gallery, input.UploadedFiles[1:]...)
				} else {
					gallery = append(gallery, input.UploadedFiles...)
				}
			}
			if cover == "" {
				cover = models.PlaceholderImage
			}
			item.CoverImage = cover
			item.Image = cover
			item.GalleryImages = gallery
			item.ID = id

			dropped = droppedRefs(before, blobRefs(item))
			items[i] = item
			updated = item
			return items, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	s.removeBlobs(dropped)
	return &updated, nil
}

// DeleteItem removes an item by ID and deletes its referenced blobs. No
// cascade: stale references from other collections are tolerated.
func (s *PortfolioService) DeleteItem(id int) error {
	var dropped []string
	_, err := s.doc.Update(func(items []models.PortfolioItemModel) ([]models.PortfolioItemModel, error) {
		kept := items[:0]
		found := false
		for _, item := range items {
			if item.ID == id {
				found = true
				dropped = blobRefs(item)
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return nil, store.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.removeBlobs(dropped)
	return nil
}

func (s *PortfolioService) removeBlobs(refs []string) {
	for _, ref := range refs {
		// Removal is best-effort; a leftover file never fails the request.
		_ = s.blobs.Remove(ref)
	}
}

func applyInput(item *models.PortfolioItemModel, input *models.PortfolioInput) {
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.FullDescription != nil {
		item.FullDescription = *input.FullDescription
	}
	if input.Client != nil {
		item.Client = *input.Client
	}
	if input.Year != nil {
		item.Year = *input.Year
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if input.Tags != nil {
		item.Tags = input.Tags
	}
	if input.Tools != nil {
		item.Tools = input.Tools
	}
}

// blobRefs lists the asset-store references held by an item; the placeholder
// sentinel is not a blob.
func blobRefs(item models.PortfolioItemModel) []string {
	refs := []string{}
	if item.CoverImage != "" && item.CoverImage != models.PlaceholderImage {
		refs = append(refs, item.CoverImage)
	}
	refs = append(refs, item.GalleryImages...)
	return refs
}

func droppedRefs(before, after []string) []string {
	current := make(map[string]bool, len(after))
	for _, ref := range after {
		current[ref] = true
	}
	dropped := []string{}
	for _, ref := range before {
		if !current[ref] {
			dropped = append(dropped, ref)
		}
	}
	return dropped
}
