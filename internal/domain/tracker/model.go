package tracker

// Status is the canonical lifecycle state of an HR activity.
type Status string

const (
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
	StatusScheduled Status = "Scheduled"
	StatusPlanned   Status = "Planned"
	StatusPending   Status = "Pending"
)

// Statuses lists the canonical statuses in display order.
var Statuses = []Status{StatusOngoing, StatusCompleted, StatusScheduled, StatusPlanned, StatusPending}

// Record represents one tracked HR activity.
// Status may hold a legacy free-text value until it passes through
// Normalize; queries and exports always normalize on the fly.
type Record struct {
	ID           string `json:"id"`
	Activity     string `json:"activity"`
	BusinessUnit string `json:"bu,omitempty"`
	Owner        string `json:"owner,omitempty"`
	Status       Status `json:"status"`
	TargetDate   string `json:"date,omitempty"` // YYYY-MM-DD, empty when unset
	Details      string `json:"details,omitempty"`
}

// Snapshot is an independent full copy of the record set at one instant.
type Snapshot []Record

// Clone returns a deep copy so history entries can never alias live records.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// Draft describes a record creation request.
type Draft struct {
	Activity     string
	BusinessUnit string
	Owner        string
	Status       string
	TargetDate   string
	Details      string
}

// Patch describes a partial record update. Nil fields are left untouched.
type Patch struct {
	Activity     *string
	BusinessUnit *string
	Owner        *string
	Status       *string
	TargetDate   *string
	Details      *string
}

// BulkPatch describes a patch applied to a selected subset of records.
// Empty fields are left untouched on every selected record.
type BulkPatch struct {
	Status       string
	Owner        string
	BusinessUnit string
}

// IsZero reports whether the patch would change nothing.
func (p BulkPatch) IsZero() bool {
	return p.Status == "" && p.Owner == "" && p.BusinessUnit == ""
}
