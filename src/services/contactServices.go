package services

import (
	"sort"
	"time"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type ContactService struct {
	doc *store.Document[[]models.ContactModel]
}

// NewContactService creates a new instance of ContactService
func NewContactService(doc *store.Document[[]models.ContactModel]) *ContactService {
	return &ContactService{doc: doc}
}

// GetAllContacts retrieves all contact records sorted by date, newest first
func (s *ContactService) GetAllContacts() ([]models.ContactModel, error) {
	contacts, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Date.After(contacts[j].Date)
	})
	return contacts, nil
}

// CreateContact stores a submission with a server-assigned id, creation
// timestamp and read=false. Field presence is validated by the controller.
func (s *ContactService) CreateContact(req *models.ContactRequest) (*models.ContactModel, error) {
	var created models.ContactModel
	_, err := s.doc.Update(func(contacts []models.ContactModel) ([]models.ContactModel, error) {
		created = models.ContactModel{
			ID:      nextID(contacts, func(c models.ContactModel) int { return c.ID }),
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
			Date:    time.Now().UTC(),
		}
		return append(contacts, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SetRead sets the read flag explicitly, or flips the current value when
// read is nil. Everything else on a contact is immutable.
func (s *ContactService) SetRead(id int, read *bool) (*models.ContactModel, error) {
	var updated models.ContactModel
	_, err := s.doc.Update(func(contacts []models.ContactModel) ([]models.ContactModel, error) {
		for i := range contacts {
			if contacts[i].ID != id {
				continue
			}
			if read != nil {
				contacts[i].Read = *read
			} else {
				contacts[i].Read = !contacts[i].Read
			}
			updated = contacts[i]
			return contacts, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
