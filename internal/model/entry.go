package model

// Entry represents one validated wellness record for a single calendar day.
// Date is the unique key within the store. Time fields are held in minutes;
// conversion to display or on-disk forms happens at the respective boundary.
type Entry struct {
	Date            string   `json:"date" yaml:"date"`
	SleepMinutes    int      `json:"sleep_minutes" yaml:"sleep_minutes"`
	ExerciseMinutes int      `json:"exercise_minutes" yaml:"exercise_minutes"`
	MoodScale       float64  `json:"mood_scale" yaml:"mood_scale"`
	MoodTags        []string `json:"mood_tags" yaml:"mood_tags"`
	Activities      []string `json:"activities" yaml:"activities"`
	Notes           string   `json:"notes" yaml:"notes"`
}
