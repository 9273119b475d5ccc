// Package export renders person lists as CSV and XLSX.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"roster/internal/person/models"
	"roster/internal/person/query"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Persons"
)

// Header is the column order shared by both formats.
var Header = []string{
	"Person Name",
	"Email",
	"Date of Birth",
	"Age",
	"Gender",
	"Country",
	"Address",
	"Receive News Letters",
}

var columnWidths = []float64{25, 30, 18, 8, 10, 18, 35, 22}

// Row flattens one person into Header order. Absent values become "".
func Row(p models.PersonResponse) []string {
	dob, age := "", ""
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(query.DateLayout)
	}
	if p.Age != nil {
		age = strconv.FormatFloat(*p.Age, 'f', 2, 64)
	}
	return []string{
		p.Name,
		p.Email,
		dob,
		age,
		string(p.Gender),
		p.Country,
		p.Address,
		strconv.FormatBool(p.ReceiveNewsLetters),
	}
}

// WriteCSV writes a header line followed by one line per person.
func WriteCSV(w io.Writer, persons []models.PersonResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range persons {
		if err := cw.Write(Row(p)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// XLSX builds a single-sheet workbook with a styled header row.
func XLSX(persons []models.PersonResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRow(f, 1, Header); err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, p := range persons {
		if err := writeRow(f, i+2, Row(p)); err != nil {
			return nil, err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d: %w", row, err)
	}
	return nil
}
