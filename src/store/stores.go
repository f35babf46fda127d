package store

import (
	"path/filepath"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/seed"
)

// Stores bundles the document handles for every collection plus the blob
// store. It replaces the database connection that would otherwise be passed
// into each service.
type Stores struct {
	Services     *Document[[]models.ServiceModel]
	Categories   *Document[[]models.CategoryModel]
	Portfolio    *Document[[]models.PortfolioItemModel]
	Resume       *Document[models.ResumeModel]
	Contacts     *Document[[]models.ContactModel]
	Testimonials *Document[[]models.TestimonialModel]
	Blobs        *BlobStore
}

// NewStores wires one document per collection under dataDir and the blob
// store under uploadDir. Files are created lazily on first access.
func NewStores(dataDir, uploadDir string) (*Stores, error) {
	blobs, err := NewBlobStore(uploadDir)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Services:     NewDocument(filepath.Join(dataDir, "services.json"), seed.DefaultServices),
		Categories:   NewDocument(filepath.Join(dataDir, "categories.json"), seed.DefaultCategories),
		Portfolio:    NewDocument(filepath.Join(dataDir, "portfolio.json"), func() []models.PortfolioItemModel { return []models.PortfolioItemModel{} }),
		Resume:       NewDocument(filepath.Join(dataDir, "resume.json"), seed.DefaultResume),
		Contacts:     NewDocument(filepath.Join(dataDir, "contacts.json"), func() []models.ContactModel { return []models.ContactModel{} }),
		Testimonials: NewDocument(filepath.Join(dataDir, "testimonials.json"), func() []models.TestimonialModel { return []models.TestimonialModel{} }),
		Blobs:        blobs,
	}, nil
}
