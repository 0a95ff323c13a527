package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/testcase-service/internal/domain"
	apperrors "github.com/spec-kit/testcase-service/pkg/util"
)

const caseSheetName = "Test Cases"

// CaseSheetRow is one parsed spreadsheet row before normalization.
type CaseSheetRow struct {
	Title       string
	Description string
	Priority    string
	Steps       string
}

// ParseCaseSheet reads the first sheet of an xlsx workbook. The header
// row labels columns (Title/Description/Priority/Steps, any casing);
// unknown columns are ignored.
func ParseCaseSheet(r io.Reader) ([]CaseSheetRow, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("could not read spreadsheet", map[string]any{"cause": err.Error()})
	}
	defer book.Close() //nolint:errcheck

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("spreadsheet has no sheets", nil)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, apperrors.NewValidationError("spreadsheet has no data rows", nil)
	}

	columns := map[string]int{}
	for idx, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = idx
	}
	if _, ok := columns["title"]; !ok {
		return nil, apperrors.NewValidationError("missing Title column", nil)
	}

	parsed := make([]CaseSheetRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		parsed = append(parsed, CaseSheetRow{
			Title:       cell("title"),
			Description: cell("description"),
			Priority:    cell("priority"),
			Steps:       cell("steps"),
		})
	}
	return parsed, nil
}

// WriteCaseSheet renders cases into an xlsx workbook buffer.
func WriteCaseSheet(cases []domain.TestCase) (*bytes.Buffer, error) {
	book := excelize.NewFile()
	defer book.Close() //nolint:errcheck

	index, err := book.NewSheet(caseSheetName)
	if err != nil {
		return nil, err
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Title", "Priority", "Description", "Steps"}
	if err := book.SetSheetRow(caseSheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, tc := range cases {
		row := []interface{}{tc.Title, string(tc.Priority), tc.Description, tc.Steps}
		cell := fmt.Sprintf("A%d", i+2)
		if err := book.SetSheetRow(caseSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	return book.WriteToBuffer()
}
