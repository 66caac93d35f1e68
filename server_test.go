package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	db := testDB(t)
	s := NewServer(db, NewClassifier(nil))
	return s, s.Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpointClassifiesAndAppends(t *testing.T) {
	s, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/analyze", analyzeRequest{
		Text:  "I am so happy and joyful today, what a wonderful and amazing day",
		URL:   "https://example.com",
		Title: "Good news",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Result.Emotion != EmotionPositive {
		t.Fatalf("expected positive, got %s", resp.Result.Emotion)
	}
	if resp.Result.Source != SourceHeuristic {
		t.Fatalf("expected heuristic source, got %s", resp.Result.Source)
	}
	if resp.Recommendation != ExerciseAffirmation {
		t.Fatalf("expected affirmation for positive, got %s", resp.Recommendation)
	}
	if !resp.Tracked {
		t.Fatalf("expected record tracked by default")
	}

	records, err := EmotionsSince(s.db, 0)
	if err != nil {
		t.Fatalf("EmotionsSince: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one appended record, got %d", len(records))
	}
	if records[0].URL != "https://example.com" || records[0].Title != "Good news" {
		t.Fatalf("origin not persisted: %+v", records[0])
	}
}

func TestAnalyzeEndpointRespectsTrackEmotions(t *testing.T) {
	s, handler := testServer(t)

	settings := DefaultSettings()
	settings.TrackEmotions[string(EmotionPositive)] = false
	if err := SaveSettings(s.db, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/analyze", analyzeRequest{
		Text: "happy wonderful amazing",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Tracked {
		t.Fatalf("expected tracked=false for untracked emotion")
	}

	records, err := EmotionsSince(s.db, 0)
	if err != nil {
		t.Fatalf("EmotionsSince: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no appended record, got %d", len(records))
	}
}

func TestAnalyzeEndpointEmptyText(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/analyze", analyzeRequest{Text: ""})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty text, got %d", rec.Code)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Result.Emotion != EmotionNeutral || resp.Result.Score != 0 {
		t.Fatalf("expected neutral zero-score result, got %+v", resp.Result)
	}
}

func TestAnalyzeEndpointRejectsBadJSON(t *testing.T) {
	_, handler := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExerciseEndpoint(t *testing.T) {
	s, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/exercises", exerciseRequest{
		ExerciseID:      ExerciseBreathing,
		DurationSeconds: 60,
		Completed:       true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	records, err := ExercisesSince(s.db, 0)
	if err != nil {
		t.Fatalf("ExercisesSince: %v", err)
	}
	if len(records) != 1 || !records[0].Completed {
		t.Fatalf("expected one completed record, got %+v", records)
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/exercises", exerciseRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing exerciseId, got %d", rec.Code)
	}
}

func TestHistoryEndpointWindow(t *testing.T) {
	s, handler := testServer(t)

	base := nowMillis()
	for i := 0; i < 3; i++ {
		if err := AppendEmotion(s.db, EmotionRecord{Timestamp: base + int64(i*1000), Emotion: EmotionNeutral}); err != nil {
			t.Fatalf("AppendEmotion: %v", err)
		}
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/history", nil)
	var resp struct {
		Records []EmotionRecord `json:"records"`
		Total   int             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected 3 records, got %d", resp.Total)
	}
}

func TestClearHistoryEndpoint(t *testing.T) {
	s, handler := testServer(t)

	if err := AppendEmotion(s.db, EmotionRecord{Emotion: EmotionAnger}); err != nil {
		t.Fatalf("AppendEmotion: %v", err)
	}

	rec := doJSON(t, handler, http.MethodDelete, "/api/v1/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	records, _ := EmotionsSince(s.db, 0)
	if len(records) != 0 {
		t.Fatalf("expected history cleared, got %d records", len(records))
	}
}

func TestInsightsEndpoint(t *testing.T) {
	s, handler := testServer(t)

	for i := 0; i < 6; i++ {
		if err := AppendEmotion(s.db, EmotionRecord{Emotion: EmotionPositive}); err != nil {
			t.Fatalf("AppendEmotion: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		if err := AppendEmotion(s.db, EmotionRecord{Emotion: EmotionNeutral}); err != nil {
			t.Fatalf("AppendEmotion: %v", err)
		}
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/insights", nil)
	var resp struct {
		Counts   map[string]int `json:"counts"`
		Insights []string       `json:"insights"`
		Total    int            `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 10 {
		t.Fatalf("expected total 10, got %d", resp.Total)
	}
	if resp.Counts["positive"] != 6 {
		t.Fatalf("expected 6 positive, got %d", resp.Counts["positive"])
	}
	if len(resp.Insights) == 0 {
		t.Fatalf("expected at least one insight")
	}
}

func TestSettingsEndpointRoundTrip(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/settings", nil)
	var defaults Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &defaults); err != nil {
		t.Fatalf("decoding defaults: %v", err)
	}
	if defaults.ReminderIntervalMinutes != 60 {
		t.Fatalf("expected default interval, got %d", defaults.ReminderIntervalMinutes)
	}

	defaults.ReminderIntervalMinutes = 20
	defaults.PreferredExercises[ExerciseMindfulness] = false
	rec = doJSON(t, handler, http.MethodPut, "/api/v1/settings", defaults)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/settings", nil)
	var got Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding settings: %v", err)
	}
	if got.ReminderIntervalMinutes != 20 {
		t.Fatalf("expected saved interval, got %d", got.ReminderIntervalMinutes)
	}
	if got.PreferredExercises[ExerciseMindfulness] {
		t.Fatalf("expected mindfulness disabled after save")
	}
}

func TestHealthzEndpoint(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
