package tracker

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field a view is ordered by.
type SortKey string

const (
	SortByActivity     SortKey = "activity"
	SortByBusinessUnit SortKey = "bu"
	SortByOwner        SortKey = "owner"
	SortByStatus       SortKey = "status"
	SortByDate         SortKey = "date"
)

// Filter is the conjunctive predicate applied before sorting.
// Zero-valued fields are skipped. Status comparisons run against the
// normalized status, so legacy values still match.
type Filter struct {
	OnlyOngoing  bool
	Status       Status
	BusinessUnit string
	Owner        string
}

// Sort describes the view ordering.
type Sort struct {
	Key        SortKey
	Descending bool
}

// StatusCount is one slice of the per-status aggregate.
type StatusCount struct {
	Status  Status `json:"status"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// ApplyView derives a filtered, sorted copy of records without mutating it.
func ApplyView(records []Record, f Filter, s Sort) []Record {
	view := make([]Record, 0, len(records))
	for _, rec := range records {
		if f.OnlyOngoing && Normalize(string(rec.Status)) != StatusOngoing {
			continue
		}
		if f.Status != "" && Normalize(string(rec.Status)) != f.Status {
			continue
		}
		if f.BusinessUnit != "" && rec.BusinessUnit != f.BusinessUnit {
			continue
		}
		if f.Owner != "" && rec.Owner != f.Owner {
			continue
		}
		view = append(view, rec)
	}

	if s.Key != "" {
		sortView(view, s)
	}
	return view
}

func sortView(view []Record, s Sort) {
	if s.Key == SortByDate {
		sortByDate(view, s.Descending)
		return
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	field := fieldOf(s.Key)
	sort.SliceStable(view, func(i, j int) bool {
		cmp := coll.CompareString(field(view[i]), field(view[j]))
		if s.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// sortByDate uses numeric-aware comparison and places records without a
// date after all dated records, in either direction.
func sortByDate(view []Record, descending bool) {
	coll := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(view, func(i, j int) bool {
		a, b := view[i].TargetDate, view[j].TargetDate
		if a == "" || b == "" {
			return b == "" && a != ""
		}
		cmp := coll.CompareString(a, b)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func fieldOf(key SortKey) func(Record) string {
	switch key {
	case SortByBusinessUnit:
		return func(r Record) string { return r.BusinessUnit }
	case SortByOwner:
		return func(r Record) string { return r.Owner }
	case SortByStatus:
		return func(r Record) string { return string(Normalize(string(r.Status))) }
	default:
		return func(r Record) string { return r.Activity }
	}
}

// DistinctBusinessUnits returns the sorted set of business-unit values.
func DistinctBusinessUnits(records []Record) []string {
	return distinct(records, func(r Record) string { return r.BusinessUnit })
}

// DistinctOwners returns the sorted set of owner values.
func DistinctOwners(records []Record) []string {
	return distinct(records, func(r Record) string { return r.Owner })
}

func distinct(records []Record, field func(Record) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, rec := range records {
		v := field(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Breakdown computes per-status counts and integer percentages over the
// full unfiltered record set. An empty set yields zero percentages.
func Breakdown(records []Record) []StatusCount {
	counts := make(map[Status]int)
	for _, rec := range records {
		counts[Normalize(string(rec.Status))]++
	}

	total := len(records)
	out := make([]StatusCount, 0, len(Statuses))
	for _, status := range Statuses {
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(counts[status]) / float64(total) * 100))
		}
		out = append(out, StatusCount{Status: status, Count: counts[status], Percent: pct})
	}
	return out
}
