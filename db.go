package main

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Retention windows are fixed policy, not user-configurable.
const (
	emotionRetention  = 7 * 24 * time.Hour
	exerciseRetention = 30 * 24 * time.Hour
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS emotion_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		ts         INTEGER NOT NULL,
		url        TEXT DEFAULT '',
		title      TEXT DEFAULT '',
		emotion    TEXT NOT NULL,
		score      REAL NOT NULL DEFAULT 0,
		intensity  TEXT DEFAULT 'medium',
		keywords   TEXT DEFAULT '',
		suggestion TEXT DEFAULT '',
		source     TEXT DEFAULT 'heuristic'
	);
	CREATE INDEX IF NOT EXISTS idx_emotion_log_ts ON emotion_log(ts);

	CREATE TABLE IF NOT EXISTS exercise_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		ts          INTEGER NOT NULL,
		exercise_id TEXT NOT NULL,
		duration    INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_exercise_log_ts ON exercise_log(ts);

	CREATE TABLE IF NOT EXISTS settings (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		data       TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return db, nil
}

// AppendEmotion inserts the record and evicts anything older than the
// emotion retention window in the same transaction. Input is normalized
// rather than rejected: a zero timestamp becomes now, an unknown emotion
// becomes neutral.
func AppendEmotion(db *sql.DB, r EmotionRecord) error {
	if r.Timestamp == 0 {
		r.Timestamp = nowMillis()
	}
	if _, ok := ParseEmotion(string(r.Emotion)); !ok {
		r.Emotion = EmotionNeutral
	}
	if r.Intensity == "" {
		r.Intensity = IntensityMedium
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO emotion_log (ts, url, title, emotion, score, intensity, keywords, suggestion, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Timestamp, r.URL, r.Title, string(r.Emotion), r.Score, r.Intensity,
		strings.Join(r.Keywords, ","), r.Suggestion, r.Source,
	)
	if err != nil {
		return err
	}
	cutoff := nowMillis() - emotionRetention.Milliseconds()
	if _, err := tx.Exec(`DELETE FROM emotion_log WHERE ts < ?`, cutoff); err != nil {
		return err
	}
	return tx.Commit()
}

// AppendExercise inserts the record and evicts expired exercise entries in
// the same transaction.
func AppendExercise(db *sql.DB, r ExerciseRecord) error {
	if r.Timestamp == 0 {
		r.Timestamp = nowMillis()
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO exercise_log (ts, exercise_id, duration, completed) VALUES (?, ?, ?, ?)`,
		r.Timestamp, r.ExerciseID, r.DurationSeconds, boolToInt(r.Completed),
	)
	if err != nil {
		return err
	}
	cutoff := nowMillis() - exerciseRetention.Milliseconds()
	if _, err := tx.Exec(`DELETE FROM exercise_log WHERE ts < ?`, cutoff); err != nil {
		return err
	}
	return tx.Commit()
}

// EvictExpired removes records older than their retention window from both
// logs. Deterministic and idempotent for a fixed now.
func EvictExpired(db *sql.DB, now time.Time) error {
	nowMs := now.UnixMilli()
	if _, err := db.Exec(`DELETE FROM emotion_log WHERE ts < ?`, nowMs-emotionRetention.Milliseconds()); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM exercise_log WHERE ts < ?`, nowMs-exerciseRetention.Milliseconds())
	return err
}

// EmotionsSince returns emotion records with ts >= since, oldest first in
// insertion order.
func EmotionsSince(db *sql.DB, since int64) ([]EmotionRecord, error) {
	rows, err := db.Query(
		`SELECT id, ts, url, title, emotion, score, intensity, keywords, suggestion, source
		 FROM emotion_log WHERE ts >= ? ORDER BY id`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []EmotionRecord
	for rows.Next() {
		var r EmotionRecord
		var emotion, keywords string
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.URL, &r.Title, &emotion,
			&r.Score, &r.Intensity, &keywords, &r.Suggestion, &r.Source); err != nil {
			return nil, err
		}
		r.Emotion, _ = ParseEmotion(emotion)
		r.Keywords = splitKeywords(keywords)
		records = append(records, r)
	}
	return records, rows.Err()
}

// ExercisesSince returns exercise records with ts >= since, oldest first in
// insertion order.
func ExercisesSince(db *sql.DB, since int64) ([]ExerciseRecord, error) {
	rows, err := db.Query(
		`SELECT id, ts, exercise_id, duration, completed
		 FROM exercise_log WHERE ts >= ? ORDER BY id`,
		since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ExerciseRecord
	for rows.Next() {
		var r ExerciseRecord
		var completed int
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.ExerciseID, &r.DurationSeconds, &completed); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// ClearHistory empties both logs unconditionally. Settings survive.
func ClearHistory(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM emotion_log`); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM exercise_log`)
	return err
}

func splitKeywords(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
