package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_Add(t *testing.T) {
	s := NewStore(nil)

	rec, err := s.Add(Draft{Activity: "  Engagement survey  ", Status: "in progress"})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "Engagement survey", rec.Activity)
	require.Equal(t, StatusOngoing, rec.Status)
	require.Equal(t, 1, s.Len())

	other, err := s.Add(Draft{Activity: "Policy audit"})
	require.NoError(t, err)
	require.NotEqual(t, rec.ID, other.ID)
}

func TestStore_Add_Invalid(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Add(Draft{Activity: "   "})
	require.ErrorIs(t, err, ErrEmptyActivity)

	_, err = s.Add(Draft{Activity: "x", TargetDate: "2025-02-30"})
	require.ErrorIs(t, err, ErrInvalidDate)
	require.Equal(t, 0, s.Len())
}

func TestStore_Update(t *testing.T) {
	s := NewStore(nil)
	rec, err := s.Add(Draft{Activity: "Survey", Owner: "Dana"})
	require.NoError(t, err)

	owner := "Priya"
	updated, err := s.Update(rec.ID, Patch{Owner: &owner})
	require.NoError(t, err)
	require.Equal(t, "Priya", updated.Owner)
	require.Equal(t, "Survey", updated.Activity)

	empty := " "
	_, err = s.Update(rec.ID, Patch{Activity: &empty})
	require.ErrorIs(t, err, ErrEmptyActivity)

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	require.Equal(t, "Survey", got.Activity)
}

func TestStore_Update_NotFound(t *testing.T) {
	s := NewStore(nil)
	owner := "Priya"
	_, err := s.Update("missing", Patch{Owner: &owner})
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestStore_Remove_Idempotent(t *testing.T) {
	s := NewStore(nil)
	rec, err := s.Add(Draft{Activity: "Survey"})
	require.NoError(t, err)

	require.True(t, s.Remove(rec.ID))
	require.False(t, s.Remove(rec.ID))
	require.Equal(t, 0, s.Len())
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := NewStore(nil)
	rec, err := s.Add(Draft{Activity: "Survey"})
	require.NoError(t, err)

	snap := s.Snapshot()
	owner := "Priya"
	_, err = s.Update(rec.ID, Patch{Owner: &owner})
	require.NoError(t, err)

	require.Equal(t, "", snap[0].Owner)
}

func TestStore_ReplaceAll(t *testing.T) {
	s := NewStore([]Record{{ID: "a", Activity: "Old"}})
	s.ReplaceAll([]Record{{ID: "b", Activity: "New"}, {ID: "c", Activity: "Newer"}})

	require.Equal(t, 2, s.Len())
	_, ok := s.Get("a")
	require.False(t, ok)
	_, ok = s.Get("b")
	require.True(t, ok)
}
