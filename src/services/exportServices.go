package services

import (
	"bytes"
	"fmt"
	"strconv"

	excelize "github.com/xuri/excelize/v2"
)

type ExportService struct {
	contacts *ContactService
}

// NewExportService creates a new instance of ExportService
func NewExportService(contacts *ContactService) *ExportService {
	return &ExportService{contacts: contacts}
}

// ExportContacts renders the contact inbox as an xlsx workbook, newest
// submission first.
func (s *ExportService) ExportContacts() ([]byte, error) {
	contacts, err := s.contacts.GetAllContacts()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Contacts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("error preparing export sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Email", "Phone", "Subject", "Message", "Date", "Read"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("error writing export header: %w", err)
		}
	}

	for row, c := range contacts {
		values := []any{
			c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message,
			c.Date.Format("2006-01-02 15:04:05"), strconv.FormatBool(c.Read),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("error writing export row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}
	return buf.Bytes(), nil
}
