package main

import (
	"database/sql"
	"encoding/json"
)

// Settings is the shared user preference record. It is stored as a single
// JSON-encoded row; concurrent writers are resolved last-write-wins. The
// core re-reads it on every classification and every recommendation.
type Settings struct {
	ReminderIntervalMinutes int             `json:"reminderIntervalMinutes"`
	Sensitivity             string          `json:"sensitivity"` // low|medium|high
	EnabledNotifications    bool            `json:"enabledNotifications"`
	TrackEmotions           map[string]bool `json:"trackEmotions"`
	PreferredExercises      map[string]bool `json:"preferredExercises"`
	ExerciseDurationSeconds int             `json:"exerciseDurationSeconds"`
	EnableSoundEffects      bool            `json:"enableSoundEffects"`
	HighContrastMode        bool            `json:"highContrastMode"`
}

func DefaultSettings() Settings {
	return Settings{
		ReminderIntervalMinutes: 60,
		Sensitivity:             IntensityMedium,
		EnabledNotifications:    true,
		TrackEmotions: map[string]bool{
			string(EmotionPositive): true,
			string(EmotionNegative): true,
			string(EmotionAnxiety):  true,
			string(EmotionAnger):    true,
			string(EmotionNeutral):  true,
		},
		PreferredExercises: map[string]bool{
			ExerciseBreathing:   true,
			ExerciseAffirmation: true,
			ExerciseMindfulness: true,
		},
		ExerciseDurationSeconds: 120,
		EnableSoundEffects:      true,
		HighContrastMode:        false,
	}
}

// LoadSettings reads the settings row. An absent row, an unreadable store,
// or a corrupt blob all yield structural defaults; the error is returned for
// logging but the Settings value is always usable.
func LoadSettings(db *sql.DB) (Settings, error) {
	var data string
	err := db.QueryRow(`SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return DefaultSettings(), err
	}
	return normalizeSettings(settings), nil
}

// SaveSettings upserts the single settings row. Last write wins.
func SaveSettings(db *sql.DB, settings Settings) error {
	data, err := json.Marshal(normalizeSettings(settings))
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO settings (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), nowMillis(),
	)
	return err
}

func normalizeSettings(s Settings) Settings {
	switch s.Sensitivity {
	case IntensityLow, IntensityMedium, IntensityHigh:
	default:
		s.Sensitivity = IntensityMedium
	}
	if s.TrackEmotions == nil {
		s.TrackEmotions = DefaultSettings().TrackEmotions
	}
	if s.PreferredExercises == nil {
		s.PreferredExercises = DefaultSettings().PreferredExercises
	}
	if s.ExerciseDurationSeconds <= 0 {
		s.ExerciseDurationSeconds = DefaultSettings().ExerciseDurationSeconds
	}
	return s
}
