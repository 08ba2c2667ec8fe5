package permits

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mobilefood.datasf.org/internal/models"

	"github.com/xuri/excelize/v2"
)

// queriedTextFields must exist on every row, even when the source table omits
// the column entirely.
var queriedTextFields = []string{models.FieldApplicant, models.FieldStatus, models.FieldAddress}

// loadTable reads the permit table at path into normalized rows. The format
// is chosen by file extension: .xlsx is read as an Excel workbook, anything
// else as CSV (the city publishes both exports of the same table).
func loadTable(path string) ([]models.Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}
	return loadCSV(path)
}

func loadCSV(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // the export has ragged trailing columns

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header from %s: %w", path, err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records from %s: %w", path, err)
	}

	return rowsFromTable(header, records)
}

func loadXLSX(path string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint:errcheck

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q from %s: %w", sheet, path, err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheet)
	}

	return rowsFromTable(cells[0], cells[1:])
}

// rowsFromTable normalizes raw string records into rows: coordinate columns
// are parsed as floats (unparsable values become absent), every other column
// is carried through as text, and the queried text fields always exist.
func rowsFromTable(header []string, records [][]string) ([]models.Row, error) {
	if len(header) == 0 {
		return nil, errors.New("table has no columns")
	}

	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, rowFromRecord(header, record))
	}
	return rows, nil
}

func rowFromRecord(header, record []string) models.Row {
	row := make(models.Row, len(header))
	for i, column := range header {
		var cell string
		if i < len(record) {
			cell = record[i]
		}

		switch column {
		case models.FieldLatitude, models.FieldLongitude:
			row[column] = parseCoordinate(cell)
		default:
			row[column] = cell
		}
	}

	for _, column := range queriedTextFields {
		if _, ok := row[column]; !ok {
			row[column] = ""
		}
	}

	return row
}

// parseCoordinate returns a float64 for a usable numeric cell and nil for a
// blank or unparsable one, so missing coordinates never masquerade as zero.
func parseCoordinate(cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return v
}
