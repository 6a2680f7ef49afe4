package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/model"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "entries.csv"))
}

// fixture returns a fully populated entry for the given date.
func fixture(date string) model.Entry {
	return model.Entry{
		Date:            date,
		SleepMinutes:    450,
		ExerciseMinutes: 45,
		MoodScale:       8.0,
		MoodTags:        []string{"calm", "happy"},
		Activities:      []string{"jogging", "reading", "cooking"},
		Notes:           "slept well",
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	s := newStore(t)
	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpsertRoundTrip(t *testing.T) {
	s := newStore(t)
	want := fixture("2024-06-15")

	updated, err := s.Upsert(want)
	require.NoError(t, err)
	assert.False(t, updated)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, want, entries[0],
		"all fields must survive the delimited encoding, including list order")
}

func TestUpsertRoundTripFractionalSleep(t *testing.T) {
	// 25 minutes is a non-terminating decimal in hours; the stored decimal
	// hours value must still decode back to exactly 25 minutes.
	s := newStore(t)
	want := fixture("2024-06-15")
	want.SleepMinutes = 25

	_, err := s.Upsert(want)
	require.NoError(t, err)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 25, entries[0].SleepMinutes)
}

func TestUpsertRoundTripNotesWithReservedCharacters(t *testing.T) {
	// Notes are free text; commas, quotes and newlines ride on CSV quoting.
	s := newStore(t)
	want := fixture("2024-06-15")
	want.Notes = "late dinner, \"heavy\" workout\nslept anyway"

	_, err := s.Upsert(want)
	require.NoError(t, err)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, want.Notes, entries[0].Notes)
}

func TestUpsertReplacesExistingDate(t *testing.T) {
	s := newStore(t)

	first := fixture("2024-06-15")
	first.Notes = "first version"
	updated, err := s.Upsert(first)
	require.NoError(t, err)
	assert.False(t, updated)

	second := fixture("2024-06-15")
	second.Notes = "second version"
	updated, err = s.Upsert(second)
	require.NoError(t, err)
	assert.True(t, updated)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly one row per date")
	assert.Equal(t, "second version", entries[0].Notes)
}

func TestUpsertPreservesRowOrder(t *testing.T) {
	s := newStore(t)

	// Deliberately not in date order; the store keeps file order.
	for _, date := range []string{"2024-06-20", "2024-06-10", "2024-06-15"} {
		_, err := s.Upsert(fixture(date))
		require.NoError(t, err)
	}

	// Replacing the middle row keeps its position.
	middle := fixture("2024-06-10")
	middle.Notes = "edited"
	updated, err := s.Upsert(middle)
	require.NoError(t, err)
	assert.True(t, updated)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-06-20", entries[0].Date)
	assert.Equal(t, "2024-06-10", entries[1].Date)
	assert.Equal(t, "edited", entries[1].Notes)
	assert.Equal(t, "2024-06-15", entries[2].Date)

	// A new date appends without touching existing rows.
	_, err = s.Upsert(fixture("2024-06-01"))
	require.NoError(t, err)

	entries, err = s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "2024-06-20", entries[0].Date)
	assert.Equal(t, fixture("2024-06-20"), entries[0])
	assert.Equal(t, "2024-06-01", entries[3].Date)
}

func TestFindByDate(t *testing.T) {
	s := newStore(t)
	_, err := s.Upsert(fixture("2024-06-15"))
	require.NoError(t, err)

	found, err := s.FindByDate("2024-06-15")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, fixture("2024-06-15"), *found)

	missing, err := s.FindByDate("1999-01-01")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSortByDate(t *testing.T) {
	s := newStore(t)
	for _, date := range []string{"2024-06-20", "2024-06-10", "2024-06-15"} {
		_, err := s.Upsert(fixture(date))
		require.NoError(t, err)
	}

	require.NoError(t, s.SortByDate())

	entries, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-06-10", entries[0].Date)
	assert.Equal(t, "2024-06-15", entries[1].Date)
	assert.Equal(t, "2024-06-20", entries[2].Date)
}

func TestLoadAllCorruptNumericColumn(t *testing.T) {
	s := newStore(t)
	content := "date,hours_slept,exercise_minutes,mood_scale,mood_tags,activities,notes\n" +
		"2024-06-15,7.5,45,8.0,calm,jogging,fine\n" +
		"2024-06-16,not-a-number,45,8.0,calm,jogging,fine\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	_, err := s.LoadAll()
	require.ErrorIs(t, err, storage.ErrStoreCorrupt)
	assert.Contains(t, err.Error(), "row 3", "the offending row must be named")
}

func TestLoadAllWrongColumnCount(t *testing.T) {
	s := newStore(t)
	content := "date,hours_slept,exercise_minutes,mood_scale,mood_tags,activities,notes\n" +
		"2024-06-15,7.5,45\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	_, err := s.LoadAll()
	require.ErrorIs(t, err, storage.ErrStoreCorrupt)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoadAllBadHeader(t *testing.T) {
	s := newStore(t)
	content := "date,sleep,exercise,mood,tags,activities,notes\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	_, err := s.LoadAll()
	require.ErrorIs(t, err, storage.ErrStoreCorrupt)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadAllHeaderOnly(t *testing.T) {
	s := newStore(t)
	content := "date,hours_slept,exercise_minutes,mood_scale,mood_tags,activities,notes\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o600))

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpsertLeavesNoTempFile(t *testing.T) {
	s := newStore(t)
	_, err := s.Upsert(fixture("2024-06-15"))
	require.NoError(t, err)

	_, statErr := os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "temp file must be renamed away")
}

func TestUpsertCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	s := storage.New(filepath.Join(dir, "nested", "deeper", "entries.csv"))

	_, err := s.Upsert(fixture("2024-06-15"))
	require.NoError(t, err)

	entries, err := s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
