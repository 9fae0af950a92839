package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVCodec reads and writes the delimited-text interchange format.
type CSVCodec struct{}

// Decode parses a CSV payload into rows keyed by the header line.
// Short records leave the remaining cells as empty strings.
func (CSVCodec) Decode(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
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

// Encode writes rows as CSV with the standard header order.
func (CSVCodec) Encode(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	headers := Headers()
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, name := range headers {
			record[i] = row[name]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
