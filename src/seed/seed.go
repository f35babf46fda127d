// Package seed holds the default record sets written the first time a
// collection is accessed with no backing document.
package seed

import "github.com/bakrinola/portfolio-backend/src/models"

func DefaultServices() []models.ServiceModel {
	return []models.ServiceModel{
		{ID: 1, Name: "Graphic Design", Slug: "graphic-design", Order: 1},
		{ID: 2, Name: "UI/UX Design", Slug: "ui-ux-design", Order: 2},
		{ID: 3, Name: "Web Development", Slug: "web-development", Order: 3},
	}
}

func DefaultCategories() []models.CategoryModel {
	return []models.CategoryModel{
		{ID: 1, Name: "Logo Design", ServiceID: 1, Order: 1},
		{ID: 2, Name: "Brand Identity", ServiceID: 1, Order: 2},
		{ID: 3, Name: "Print Design", ServiceID: 1, Order: 3},
		{ID: 4, Name: "Illustration", ServiceID: 1, Order: 4},
		{ID: 5, Name: "Mobile App Design", ServiceID: 2, Order: 1},
		{ID: 6, Name: "Web App Design", ServiceID: 2, Order: 2},
		{ID: 7, Name: "Dashboard Design", ServiceID: 2, Order: 3},
		{ID: 8, Name: "Frontend Development", ServiceID: 3, Order: 1},
		{ID: 9, Name: "Backend Development", ServiceID: 3, Order: 2},
		{ID: 10, Name: "Full Stack", ServiceID: 3, Order: 3},
	}
}

func DefaultResume() models.ResumeModel {
	return models.ResumeModel{
		Summary:        "Creative UI/UX designer with over 5 years of experience...",
		Education:      []models.EducationEntry{},
		Experience:     []models.ExperienceEntry{},
		Skills:         []models.SkillEntry{},
		Software:       []models.SoftwareEntry{},
		Certifications: []models.CertificationEntry{},
	}
}
