package tracker

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateDraft validates fields required to create a record.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Activity) == "" {
		return ErrEmptyActivity
	}
	if d.TargetDate != "" {
		return ValidateDate(d.TargetDate)
	}
	return nil
}

// ValidateDate checks that s is a calendar-valid YYYY-MM-DD date.
// time.Parse rejects out-of-range components, so 2025-02-30 and
// month 13 fail here rather than surviving a shape-only check.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}
