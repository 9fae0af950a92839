// Package sheet converts between tracker records and tabular rows for
// spreadsheet interchange.
package sheet

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"hrboard/internal/domain/tracker"
)

// ErrNoRows indicates an import where no row survived filtering.
var ErrNoRows = errors.New("no importable rows")

// Row maps a column header to its cell value. Missing cells are empty strings.
type Row map[string]string

// Column headers used in both directions. Import also accepts the
// fallback names some older exports used.
const (
	ColActivity     = "Activity"
	ColBusinessUnit = "BU(s)"
	ColOwner        = "Owner"
	ColStatus       = "Status"
	ColTargetDate   = "Target Date"
	ColDetails      = "Details"

	colBusinessUnitAlt = "BU"
	colTargetDateAlt   = "Date"
)

// Headers returns the export column order.
func Headers() []string {
	return []string{ColActivity, ColBusinessUnit, ColOwner, ColStatus, ColTargetDate, ColDetails}
}

// FromRows maps tabular rows to fresh records: new ids, normalized
// statuses, rows with an empty trimmed activity dropped. It returns the
// accepted records plus the number of dropped rows, and ErrNoRows when
// nothing survives.
func FromRows(rows []Row) ([]tracker.Record, int, error) {
	records := make([]tracker.Record, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		activity := strings.TrimSpace(row[ColActivity])
		if activity == "" {
			dropped++
			continue
		}
		records = append(records, tracker.Record{
			ID:           uuid.NewString(),
			Activity:     activity,
			BusinessUnit: strings.TrimSpace(pick(row, ColBusinessUnit, colBusinessUnitAlt)),
			Owner:        strings.TrimSpace(row[ColOwner]),
			Status:       tracker.Normalize(row[ColStatus]),
			TargetDate:   strings.TrimSpace(pick(row, ColTargetDate, colTargetDateAlt)),
			Details:      row[ColDetails],
		})
	}
	if len(records) == 0 {
		return nil, dropped, ErrNoRows
	}
	return records, dropped, nil
}

// ToRows maps every record to a row using the export column set.
// Statuses are normalized at export time; absent optional fields
// serialize as empty strings.
func ToRows(records []tracker.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			ColActivity:     rec.Activity,
			ColBusinessUnit: rec.BusinessUnit,
			ColOwner:        rec.Owner,
			ColStatus:       string(tracker.Normalize(string(rec.Status))),
			ColTargetDate:   rec.TargetDate,
			ColDetails:      rec.Details,
		})
	}
	return rows
}

func pick(row Row, primary, fallback string) string {
	if v, ok := row[primary]; ok && v != "" {
		return v
	}
	return row[fallback]
}
