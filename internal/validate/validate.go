// Package validate turns the raw field strings produced by the log form into
// a canonical model.Entry, or into the complete list of per-field errors.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/model"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/storage"
	"github.com/Alianno-Tulloch/Personal-Wellness-Tracker/internal/timecalc"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	// InvalidFormat marks an unparsable or missing required value.
	InvalidFormat Reason = "invalid_format"
	// OutOfRange marks a well-formed numeric value outside its domain.
	OutOfRange Reason = "out_of_range"
	// InvalidTimeInput marks a malformed hour/minute pair.
	InvalidTimeInput Reason = "invalid_time_input"
)

// FieldError is one validation failure, tagged with the field it belongs to
// so a caller can render it inline next to the offending input.
type FieldError struct {
	Field   string
	Raw     string
	Reason  Reason
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is the complete, ordered list of failures from one validation
// pass. It is never partially populated alongside a usable Entry.
type FieldErrors []FieldError

func (es FieldErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// RawEntry carries one day's input exactly as a form or CLI produced it:
// every field a string, blanks allowed where the form allows them.
type RawEntry struct {
	Date            string
	SleepHours      string
	SleepMinutes    string
	ExerciseHours   string
	ExerciseMinutes string
	MoodScale       string
	MoodTags        string
	Activities      string
	Notes           string
}

// maxDayMinutes caps sleep and exercise at 24 hours.
const maxDayMinutes = 24 * 60

// Validate checks every field independently and accumulates all failures
// before returning, so the caller can present the full error list in one
// pass. On success it returns the populated Entry and a nil error list; on
// any failure it returns a zero Entry and every FieldError in field order.
func Validate(raw RawEntry) (model.Entry, FieldErrors) {
	var errs FieldErrors

	date, dateErr := validateDate(raw.Date)
	if dateErr != nil {
		errs = append(errs, *dateErr)
	}

	sleep, sleepErr := validateTimePair("sleep_time", raw.SleepHours, raw.SleepMinutes)
	if sleepErr != nil {
		errs = append(errs, *sleepErr)
	}

	exercise, exerciseErr := validateTimePair("exercise_time", raw.ExerciseHours, raw.ExerciseMinutes)
	if exerciseErr != nil {
		errs = append(errs, *exerciseErr)
	}

	mood, moodErr := validateMoodScale(raw.MoodScale)
	if moodErr != nil {
		errs = append(errs, *moodErr)
	}

	tags, tagsErr := validateList("mood_tags", raw.MoodTags, true)
	if tagsErr != nil {
		errs = append(errs, *tagsErr)
	}

	activities, actErr := validateList("activities", raw.Activities, false)
	if actErr != nil {
		errs = append(errs, *actErr)
	}

	if len(errs) > 0 {
		return model.Entry{}, errs
	}

	return model.Entry{
		Date:            date,
		SleepMinutes:    sleep,
		ExerciseMinutes: exercise,
		MoodScale:       mood,
		MoodTags:        tags,
		Activities:      activities,
		Notes:           strings.TrimSpace(raw.Notes),
	}, nil
}

// validateDate checks for a real calendar date in YYYY-MM-DD form, leap
// years included.
func validateDate(raw string) (string, *FieldError) {
	cleaned := strings.TrimSpace(raw)
	if _, err := time.Parse("2006-01-02", cleaned); err != nil {
		return "", &FieldError{
			Field:   "date",
			Raw:     raw,
			Reason:  InvalidFormat,
			Message: "must be a real date in YYYY-MM-DD form",
		}
	}
	return cleaned, nil
}

// validateTimePair converts an hour/minute pair of raw strings to total
// minutes. One component may be blank, not both; the total may not exceed
// 24 hours.
func validateTimePair(field, rawHours, rawMinutes string) (int, *FieldError) {
	display := strings.TrimSpace(rawHours) + "h " + strings.TrimSpace(rawMinutes) + "m"

	hours, hoursOK := parseOptionalInt(rawHours)
	minutes, minutesOK := parseOptionalInt(rawMinutes)
	if !hoursOK || !minutesOK {
		return 0, &FieldError{
			Field:   field,
			Raw:     display,
			Reason:  InvalidTimeInput,
			Message: "hours and minutes must be whole numbers",
		}
	}

	total, err := timecalc.ToMinutes(hours, minutes)
	if err != nil {
		return 0, &FieldError{
			Field:   field,
			Raw:     display,
			Reason:  InvalidTimeInput,
			Message: "must include hours or minutes, with minutes below 60",
		}
	}

	if total > maxDayMinutes {
		return 0, &FieldError{
			Field:   field,
			Raw:     display,
			Reason:  OutOfRange,
			Message: "must be between 0 and 24 hours",
		}
	}
	return total, nil
}

// parseOptionalInt parses a possibly blank integer field. A blank field is
// an absent component (nil, true); anything non-blank must parse.
func parseOptionalInt(raw string) (*int, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil, true
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// validateMoodScale parses the mood rating and checks the 0.0–10.0 range.
// The canonical value is rounded to one decimal place.
func validateMoodScale(raw string) (float64, *FieldError) {
	cleaned := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &FieldError{
			Field:   "mood_scale",
			Raw:     raw,
			Reason:  InvalidFormat,
			Message: "must be a number (example: 7.5)",
		}
	}
	if v < 0.0 || v > 10.0 {
		return 0, &FieldError{
			Field:   "mood_scale",
			Raw:     raw,
			Reason:  OutOfRange,
			Message: "must be between 0.0 and 10.0",
		}
	}
	return math.Round(v*10) / 10, nil
}

// validateList splits comma-separated raw text into trimmed, non-empty
// segments. Mood tags are additionally deduplicated, keeping first-seen
// order. The raw text is required: a blank field has nothing to log.
func validateList(field, raw string, dedupe bool) ([]string, *FieldError) {
	if strings.TrimSpace(raw) == "" {
		return nil, &FieldError{
			Field:   field,
			Raw:     raw,
			Reason:  InvalidFormat,
			Message: "is required",
		}
	}

	var items []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, storage.ListDelimiter) {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if strings.Contains(item, storage.ListDelimiter) {
			return nil, &FieldError{
				Field:   field,
				Raw:     raw,
				Reason:  InvalidFormat,
				Message: fmt.Sprintf("values may not contain %q", storage.ListDelimiter),
			}
		}
		if dedupe {
			if seen[item] {
				continue
			}
			seen[item] = true
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, &FieldError{
			Field:   field,
			Raw:     raw,
			Reason:  InvalidFormat,
			Message: "is required",
		}
	}
	return items, nil
}
