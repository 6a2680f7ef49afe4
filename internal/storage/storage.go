// Package storage reads and writes the CSV backing file, one row per
// calendar day, upserting by date.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/model"
)

// ErrStoreCorrupt reports a backing-file row that does not match the
// expected column shape. Corrupt rows are never silently skipped.
var ErrStoreCorrupt = errors.New("store corrupt")

// header is the fixed column order of the backing file. hours_slept is
// stored as decimal hours for human readability; everything else in the
// record's canonical unit.
var header = []string{
	"date",
	"hours_slept",
	"exercise_minutes",
	"mood_scale",
	"mood_tags",
	"activities",
	"notes",
}

// Store is the flat-file entry store. It is not safe for concurrent
// writers; upsert does a full read-merge-rewrite.
type Store struct {
	path string
}

// New creates a Store over the given CSV file path. The file is created on
// first write; a missing file reads as empty.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// LoadAll reads every entry in file order. A missing or header-only file
// yields no entries. A malformed row fails with ErrStoreCorrupt naming the
// 1-based file row (the header is row 1).
func (s *Store) LoadAll() ([]model.Entry, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error opening %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	row := 0
	var entries []model.Entry
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: row %d: %v", ErrStoreCorrupt, parseErr.Line, parseErr.Err)
			}
			return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
		}
		row++
		if row == 1 {
			if !equalRow(record, header) {
				return nil, fmt.Errorf("%w: row 1: unexpected header %v", ErrStoreCorrupt, record)
			}
			continue
		}
		entry, err := decodeRow(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrStoreCorrupt, row, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FindByDate returns the entry stored for the given ISO date, or nil if no
// row has that date.
func (s *Store) FindByDate(date string) (*model.Entry, error) {
	entries, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Date == date {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// Upsert writes the entry, replacing the existing row for the same date in
// place (position preserved) or appending a new row. The whole table is
// rewritten atomically; readers never observe a partial write.
// It reports whether an existing row was updated.
func (s *Store) Upsert(entry model.Entry) (updated bool, err error) {
	entries, err := s.LoadAll()
	if err != nil {
		return false, err
	}

	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			return true, s.writeAll(entries)
		}
	}
	entries = append(entries, entry)
	return false, s.writeAll(entries)
}

// SortByDate rewrites the backing file with rows in ascending date order.
// ISO dates sort chronologically as strings. Intended as a maintenance
// operation after importing or hand-editing data; Upsert itself preserves
// row order.
func (s *Store) SortByDate() error {
	entries, err := s.LoadAll()
	if err != nil {
		return err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return s.writeAll(entries)
}

// writeAll rewrites the entire table. Atomic write: the new content goes to
// a temp file which then replaces the original, so a failed write leaves the
// previous file intact.
func (s *Store) writeAll(entries []model.Entry) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("storage error creating directories: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(header)
	for _, e := range entries {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(encodeRow(e))
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", writeErr)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// encodeRow converts an entry to its column form. Sleep leaves the internal
// minutes unit here: the file stores decimal hours.
func encodeRow(e model.Entry) []string {
	return []string{
		e.Date,
		strconv.FormatFloat(float64(e.SleepMinutes)/60, 'f', -1, 64),
		strconv.Itoa(e.ExerciseMinutes),
		strconv.FormatFloat(e.MoodScale, 'f', 1, 64),
		EncodeList(e.MoodTags),
		EncodeList(e.Activities),
		e.Notes,
	}
}

// decodeRow is the inverse of encodeRow for any row encodeRow produced.
func decodeRow(record []string) (model.Entry, error) {
	hoursSlept, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return model.Entry{}, fmt.Errorf("hours_slept %q: %v", record[1], err)
	}
	exercise, err := strconv.Atoi(record[2])
	if err != nil {
		return model.Entry{}, fmt.Errorf("exercise_minutes %q: %v", record[2], err)
	}
	mood, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return model.Entry{}, fmt.Errorf("mood_scale %q: %v", record[3], err)
	}
	return model.Entry{
		Date:            record[0],
		SleepMinutes:    int(math.Round(hoursSlept * 60)),
		ExerciseMinutes: exercise,
		MoodScale:       mood,
		MoodTags:        DecodeList(record[4]),
		Activities:      DecodeList(record[5]),
		Notes:           record[6],
	}, nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
