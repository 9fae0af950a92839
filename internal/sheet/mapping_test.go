package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hrboard/internal/domain/tracker"
)

func TestFromRows_MapsColumnsAndNormalizesStatus(t *testing.T) {
	rows := []Row{
		{ColActivity: "Engagement survey", ColBusinessUnit: "People Ops", ColOwner: "Dana", ColStatus: "work in progress", ColTargetDate: "2026-09-15", ColDetails: "Window open"},
	}

	records, dropped, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 0, dropped)
	require.Len(t, records, 1)

	rec := records[0]
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "Engagement survey", rec.Activity)
	require.Equal(t, "People Ops", rec.BusinessUnit)
	require.Equal(t, "Dana", rec.Owner)
	require.Equal(t, tracker.StatusOngoing, rec.Status)
	require.Equal(t, "2026-09-15", rec.TargetDate)
	require.Equal(t, "Window open", rec.Details)
}

func TestFromRows_FallbackColumnNames(t *testing.T) {
	rows := []Row{
		{ColActivity: "Audit", "BU": "Legal", "Date": "2026-01-10"},
	}

	records, _, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, "Legal", records[0].BusinessUnit)
	require.Equal(t, "2026-01-10", records[0].TargetDate)
}

func TestFromRows_PrimaryColumnWinsOverFallback(t *testing.T) {
	rows := []Row{
		{ColActivity: "Audit", ColBusinessUnit: "Primary", "BU": "Fallback"},
	}

	records, _, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, "Primary", records[0].BusinessUnit)
}

func TestFromRows_DropsEmptyActivityRows(t *testing.T) {
	rows := []Row{
		{ColActivity: "   ", ColOwner: "Dana"},
		{ColActivity: "Kept", ColOwner: "Priya"},
	}

	records, dropped, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 1, dropped)
	require.Len(t, records, 1)
	require.Equal(t, "Kept", records[0].Activity)
}

func TestFromRows_AllDroppedIsError(t *testing.T) {
	rows := []Row{
		{ColActivity: ""},
		{ColActivity: "  "},
	}

	records, dropped, err := FromRows(rows)
	require.ErrorIs(t, err, ErrNoRows)
	require.Equal(t, 2, dropped)
	require.Nil(t, records)
}

func TestFromRows_AssignsFreshIDs(t *testing.T) {
	rows := []Row{{ColActivity: "a"}, {ColActivity: "b"}}

	records, _, err := FromRows(rows)
	require.NoError(t, err)
	require.NotEqual(t, records[0].ID, records[1].ID)
}

func TestToRows_NormalizesAndFillsEmptyFields(t *testing.T) {
	records := []tracker.Record{
		{ID: "1", Activity: "Audit", Status: "finalized"},
	}

	rows := ToRows(records)
	require.Len(t, rows, 1)
	require.Equal(t, "Audit", rows[0][ColActivity])
	require.Equal(t, "Completed", rows[0][ColStatus])
	require.Equal(t, "", rows[0][ColBusinessUnit])
	require.Equal(t, "", rows[0][ColOwner])
	require.Equal(t, "", rows[0][ColTargetDate])
	require.Equal(t, "", rows[0][ColDetails])
}
