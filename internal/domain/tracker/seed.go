package tracker

import "github.com/google/uuid"

// SeedRecords returns the sample data used when no persisted state can
// be loaded. Ids are freshly assigned so reseeding never collides.
func SeedRecords() []Record {
	seeds := []Record{
		{Activity: "Quarterly engagement survey", BusinessUnit: "People Ops", Owner: "Dana", Status: StatusOngoing, TargetDate: "2026-09-15", Details: "Survey window open through mid-September."},
		{Activity: "Manager feedback training", BusinessUnit: "L&D", Owner: "Priya", Status: StatusScheduled, TargetDate: "2026-10-01"},
		{Activity: "Benefits renewal review", BusinessUnit: "Total Rewards", Owner: "Marcus", Status: StatusPlanned, TargetDate: "2026-11-20", Details: "Broker quotes expected end of October."},
		{Activity: "Onboarding checklist refresh", BusinessUnit: "People Ops", Owner: "Dana", Status: StatusCompleted, TargetDate: "2026-07-30"},
		{Activity: "Handbook policy audit", BusinessUnit: "Legal", Owner: "Sofia", Status: StatusPending},
	}
	for i := range seeds {
		seeds[i].ID = uuid.NewString()
	}
	return seeds
}
