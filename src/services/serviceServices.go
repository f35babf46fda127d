package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type ServiceService struct {
	doc *store.Document[[]models.ServiceModel]
}

// NewServiceService creates a new instance of ServiceService
func NewServiceService(doc *store.Document[[]models.ServiceModel]) *ServiceService {
	return &ServiceService{doc: doc}
}

// GetAllServices retrieves all service records. Callers sort by order
// themselves; storage order is not semantically meaningful.
func (s *ServiceService) GetAllServices() ([]models.ServiceModel, error) {
	return s.doc.Load()
}

// GetServiceByID retrieves a Service record by ID
func (s *ServiceService) GetServiceByID(id int) (*models.ServiceModel, error) {
	services, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// GetServiceBySlug retrieves a Service record by its URL slug
func (s *ServiceService) GetServiceBySlug(slug string) (*models.ServiceModel, error) {
	services, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].Slug == slug {
			return &services[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// CreateService creates a new Service record, assigning id, slug and order
// defaults.
func (s *ServiceService) CreateService(input *models.ServiceInput) (*models.ServiceModel, error) {
	var created models.ServiceModel
	_, err := s.doc.Update(func(services []models.ServiceModel) ([]models.ServiceModel, error) {
		created = models.ServiceModel{
			ID:    nextID(services, func(sv models.ServiceModel) int { return sv.ID }),
			Name:  input.Name,
			Slug:  input.Slug,
			Order: input.Order,
		}
		if created.Slug == "" {
			created.Slug = Slugify(input.Name)
		}
		if created.Order == 0 {
			created.Order = len(services) + 1
		}
		return append(services, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateService shallow-merges the supplied fields onto an existing record.
// The id is re-pinned from the path parameter and an empty slug falls back
// to the stored one.
func (s *ServiceService) UpdateService(id int, patch map[string]any) (*models.ServiceModel, error) {
	var updated models.ServiceModel
	_, err := s.doc.Update(func(services []models.ServiceModel) ([]models.ServiceModel, error) {
		for i := range services {
			if services[i].ID != id {
				continue
			}
			merged, err := mergePatch(services[i], patch)
			if err != nil {
				return nil, err
			}
			merged.ID = id
			if merged.Slug == "" {
				merged.Slug = services[i].Slug
			}
			services[i] = merged
			updated = merged
			return services, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteService deletes a Service record by ID. Dependent categories and
// portfolio items are left untouched; their serviceId goes stale.
func (s *ServiceService) DeleteService(id int) error {
	_, err := s.doc.Update(func(services []models.ServiceModel) ([]models.ServiceModel, error) {
		kept := services[:0]
		found := false
		for _, sv := range services {
			if sv.ID == id {
				found = true
				continue
			}
			kept = append(kept, sv)
		}
		if !found {
			return nil, store.ErrNotFound
		}
		return kept, nil
	})
	return err
}
