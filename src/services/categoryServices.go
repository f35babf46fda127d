package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type CategoryService struct {
	doc *store.Document[[]models.CategoryModel]
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(doc *store.Document[[]models.CategoryModel]) *CategoryService {
	return &CategoryService{doc: doc}
}

// GetAllCategories retrieves all category records
func (s *CategoryService) GetAllCategories() ([]models.CategoryModel, error) {
	return s.doc.Load()
}

// GetCategoriesByService retrieves the categories belonging to one service
func (s *CategoryService) GetCategoriesByService(serviceID int) ([]models.CategoryModel, error) {
	categories, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	filtered := []models.CategoryModel{}
	for _, c := range categories {
		if c.ServiceID == serviceID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// CreateCategory creates a new Category record. The default order is scoped
// per service: count of categories already in that service plus one.
func (s *CategoryService) CreateCategory(input *models.CategoryInput) (*models.CategoryModel, error) {
	var created models.CategoryModel
	_, err := s.doc.Update(func(categories []models.CategoryModel) ([]models.CategoryModel, error) {
		created = models.CategoryModel{
			ID:        nextID(categories, func(c models.CategoryModel) int { return c.ID }),
			Name:      input.Name,
			ServiceID: input.ServiceID,
			Order:     input.Order,
		}
		if created.Order == 0 {
			inService := 0
			for _, c := range categories {
				if c.ServiceID == input.ServiceID {
					inService++
				}
			}
			created.Order = inService + 1
		}
		return append(categories, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCategory shallow-merges the supplied fields onto an existing record
func (s *CategoryService) UpdateCategory(id int, patch map[string]any) (*models.CategoryModel, error) {
	var updated models.CategoryModel
	_, err := s.doc.Update(func(categories []models.CategoryModel) ([]models.CategoryModel, error) {
		for i := range categories {
			if categories[i].ID != id {
				continue
			}
			merged, err := mergePatch(categories[i], patch)
			if err != nil {
				return nil, err
			}
			merged.ID = id
			categories[i] = merged
			updated = merged
			return categories, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory deletes a Category record by ID
func (s *CategoryService) DeleteCategory(id int) error {
	_, err := s.doc.Update(func(categories []models.CategoryModel) ([]models.CategoryModel, error) {
		kept := categories[:0]
		found := false
		for _, c := range categories {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return nil, store.ErrNotFound
		}
		return kept, nil
	})
	return err
}
