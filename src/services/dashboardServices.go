package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type DashboardService struct {
	portfolio *store.Document[[]models.PortfolioItemModel]
	contacts  *store.Document[[]models.ContactModel]
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(portfolio *store.Document[[]models.PortfolioItemModel], contacts *store.Document[[]models.ContactModel]) *DashboardService {
	return &DashboardService{portfolio: portfolio, contacts: contacts}
}

// GetStats aggregates counts over the portfolio and contact collections.
// Absent documents seed to empty lists, so every count starts at zero.
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	items, err := s.portfolio.Load()
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.Load()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		PortfolioCount: len(items),
		ContactCount:   len(contacts),
	}
	for _, c := range contacts {
		if !c.Read {
			stats.UnreadContacts++
		}
	}
	return stats, nil
}
