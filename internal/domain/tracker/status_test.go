package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_Synonyms(t *testing.T) {
	require.Equal(t, StatusOngoing, Normalize("Work In Progress"))
	require.Equal(t, StatusOngoing, Normalize("  wip  "))
	require.Equal(t, StatusCompleted, Normalize("finalized"))
	require.Equal(t, StatusCompleted, Normalize("DONE"))
	require.Equal(t, StatusPending, Normalize("tbd"))
	require.Equal(t, StatusScheduled, Normalize("booked"))
	require.Equal(t, StatusPlanned, Normalize("upcoming"))
}

func TestNormalize_CanonicalPassThrough(t *testing.T) {
	for _, status := range Statuses {
		require.Equal(t, status, Normalize(string(status)))
	}
}

func TestNormalize_DefaultsToPending(t *testing.T) {
	require.Equal(t, StatusPending, Normalize(""))
	require.Equal(t, StatusPending, Normalize("   "))
	require.Equal(t, StatusPending, Normalize("unknown-garbage"))
}
