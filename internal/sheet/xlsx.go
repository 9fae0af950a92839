package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "HR Updates"

// XLSXCodec reads and writes the binary workbook interchange format.
type XLSXCodec struct{}

// Decode parses the first worksheet of an xlsx payload into rows keyed
// by the header line. Missing trailing cells default to empty strings.
func (XLSXCodec) Decode(r io.Reader) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	cells, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	var rows []Row
	for _, record := range cells[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Encode writes rows to a single-sheet workbook with the standard
// header order.
func (XLSXCodec) Encode(w io.Writer, rows []Row) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", defaultSheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headers := Headers()
	for col, name := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(defaultSheetName, cell, name); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, name := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(defaultSheetName, cell, row[name]); err != nil {
				return err
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
