package services

import (
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type ResumeService struct {
	doc   *store.Document[models.ResumeModel]
	blobs *store.BlobStore
}

// NewResumeService creates a new instance of ResumeService
func NewResumeService(doc *store.Document[models.ResumeModel], blobs *store.BlobStore) *ResumeService {
	return &ResumeService{doc: doc, blobs: blobs}
}

// GetResume retrieves the singleton resume document
func (s *ResumeService) GetResume() (*models.ResumeModel, error) {
	resume, err := s.doc.Load()
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// ReplaceResume overwrites the resume document wholesale, preserving the
// current cvFile reference which is managed only through the PDF endpoints.
func (s *ResumeService) ReplaceResume(resume *models.ResumeModel) (*models.ResumeModel, error) {
	updated, err := s.doc.Update(func(current models.ResumeModel) (models.ResumeModel, error) {
		resume.CVFile = current.CVFile
		return *resume, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetPDF stores a new CV blob reference, removing the previously referenced
// file from the asset store. A missing old file is tolerated.
func (s *ResumeService) SetPDF(ref string) error {
	_, err := s.doc.Update(func(resume models.ResumeModel) (models.ResumeModel, error) {
		if resume.CVFile != nil {
			if err := s.blobs.Remove(*resume.CVFile); err != nil {
				return resume, err
			}
		}
		resume.CVFile = &ref
		return resume, nil
	})
	return err
}

// ClearPDF removes the CV file and nulls the reference. Returns NotFound
// when no resume document or no PDF exists.
func (s *ResumeService) ClearPDF() error {
	if !s.doc.Exists() {
		return store.ErrNotFound
	}
	_, err := s.doc.Update(func(resume models.ResumeModel) (models.ResumeModel, error) {
		if resume.CVFile == nil {
			return resume, store.ErrNotFound
		}
		if err := s.blobs.Remove(*resume.CVFile); err != nil {
			return resume, err
		}
		resume.CVFile = nil
		return resume, nil
	})
	return err
}

// PDFPath resolves the stored CV reference to a file path for download.
func (s *ResumeService) PDFPath() (string, error) {
	if !s.doc.Exists() {
		return "", store.ErrNotFound
	}
	resume, err := s.doc.Load()
	if err != nil {
		return "", err
	}
	if resume.CVFile == nil {
		return "", store.ErrNotFound
	}
	path, ok := s.blobs.Path(*resume.CVFile)
	if !ok {
		return "", store.ErrNotFound
	}
	return path, nil
}
