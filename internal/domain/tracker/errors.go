package tracker

import "errors"

var (
	// ErrEmptyActivity indicates a missing or whitespace-only activity field.
	ErrEmptyActivity = errors.New("activity is required")
	// ErrInvalidDate indicates a target date that is not a valid calendar date.
	ErrInvalidDate = errors.New("invalid target date")
	// ErrRecordNotFound indicates the record doesn't exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrEmptyImport indicates an import that produced no usable records.
	ErrEmptyImport = errors.New("no records to import")
)
