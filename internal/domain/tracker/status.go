package tracker

import "strings"

// statusSynonyms maps trimmed, lowercased legacy values to canonical
// statuses. Canonical names are included so lookup is a single pass.
var statusSynonyms = map[string]Status{
	"ongoing":          StatusOngoing,
	"in progress":      StatusOngoing,
	"work in progress": StatusOngoing,
	"wip":              StatusOngoing,
	"active":           StatusOngoing,
	"started":          StatusOngoing,
	"underway":         StatusOngoing,

	"completed": StatusCompleted,
	"complete":  StatusCompleted,
	"done":      StatusCompleted,
	"finished":  StatusCompleted,
	"finalized": StatusCompleted,
	"closed":    StatusCompleted,

	"scheduled": StatusScheduled,
	"booked":    StatusScheduled,
	"confirmed": StatusScheduled,

	"planned":  StatusPlanned,
	"planning": StatusPlanned,
	"upcoming": StatusPlanned,
	"proposed": StatusPlanned,

	"pending":     StatusPending,
	"tbd":         StatusPending,
	"tbc":         StatusPending,
	"on hold":     StatusPending,
	"waiting":     StatusPending,
	"not started": StatusPending,
}

// Normalize maps a free-text or legacy status value to a canonical Status.
// Unrecognized and empty input defaults to Pending.
func Normalize(raw string) Status {
	key := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := statusSynonyms[key]; ok {
		return status
	}
	return StatusPending
}
