package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type TestimonialService struct {
	doc *store.Document[[]models.TestimonialModel]
}

// NewTestimonialService creates a new instance of TestimonialService
func NewTestimonialService(doc *store.Document[[]models.TestimonialModel]) *TestimonialService {
	return &TestimonialService{doc: doc}
}

// GetAllTestimonials retrieves all testimonial records
func (s *TestimonialService) GetAllTestimonials() ([]models.TestimonialModel, error) {
	return s.doc.Load()
}
