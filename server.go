package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// extractionPreLimit is the upstream cap on page text accepted per request;
// the model classifier applies its own tighter submission limit.
const extractionPreLimit = 8000

// Server is the HTTP surface the extension talks to. Handlers follow the
// degrade-never-fail contract: internal errors are logged and answered with
// a structural default, not a 5xx, wherever the core defines a default.
type Server struct {
	db         *sql.DB
	classifier *Classifier
}

func NewServer(db *sql.DB, classifier *Classifier) *Server {
	return &Server{db: db, classifier: classifier}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/exercises", s.handleExercise).Methods(http.MethodPost)
	api.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/history", s.handleClearHistory).Methods(http.MethodDelete)
	api.HandleFunc("/insights", s.handleInsights).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handlePutSettings).Methods(http.MethodPut)
	api.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	// The callers are extension pages, so extension origins must pass CORS.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"chrome-extension://*", "moz-extension://*", "http://localhost:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

type analyzeRequest struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

type analyzeResponse struct {
	Result         ClassificationResult `json:"result"`
	Recommendation string               `json:"recommendation"`
	Tracked        bool                 `json:"tracked"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Text) > extractionPreLimit {
		req.Text = req.Text[:extractionPreLimit]
	}

	settings, err := LoadSettings(s.db)
	if err != nil {
		log.Printf("analyze settings read error: %v", err)
	}

	result := s.classifier.Classify(r.Context(), req.Text)

	// An absent trackEmotions key means tracked.
	tracked := true
	if enabled, ok := settings.TrackEmotions[string(result.Emotion)]; ok && !enabled {
		tracked = false
	}
	if tracked {
		record := EmotionRecord{
			Timestamp:  nowMillis(),
			URL:        req.URL,
			Title:      req.Title,
			Emotion:    result.Emotion,
			Score:      result.Score,
			Intensity:  result.Intensity,
			Keywords:   result.Keywords,
			Suggestion: result.Suggestion,
			Source:     result.Source,
		}
		if err := AppendEmotion(s.db, record); err != nil {
			// Storage trouble does not fail the classification.
			log.Printf("analyze append error: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Result:         result,
		Recommendation: Recommend(result.Emotion, settings.PreferredExercises),
		Tracked:        tracked,
	})
}

type exerciseRequest struct {
	ExerciseID      string `json:"exerciseId"`
	DurationSeconds int64  `json:"durationSeconds"`
	Completed       bool   `json:"completed"`
}

func (s *Server) handleExercise(w http.ResponseWriter, r *http.Request) {
	var req exerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ExerciseID == "" {
		writeError(w, http.StatusBadRequest, "exerciseId is required")
		return
	}

	record := ExerciseRecord{
		Timestamp:       nowMillis(),
		ExerciseID:      req.ExerciseID,
		DurationSeconds: req.DurationSeconds,
		Completed:       req.Completed,
	}
	if err := AppendExercise(s.db, record); err != nil {
		log.Printf("exercise append error: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := EmotionsSince(s.db, sinceParam(r))
	if err != nil {
		log.Printf("history read error: %v", err)
		records = nil
	}
	if records == nil {
		records = []EmotionRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"total":   len(records),
	})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := ClearHistory(s.db); err != nil {
		log.Printf("history clear error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	log.Printf("history cleared")
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	since := sinceParam(r)
	records, err := EmotionsSince(s.db, since)
	if err != nil {
		log.Printf("insights emotion read error: %v", err)
		records = nil
	}
	exercises, err := ExercisesSince(s.db, since)
	if err != nil {
		log.Printf("insights exercise read error: %v", err)
		exercises = nil
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"counts":   AggregateEmotions(records),
		"insights": GenerateInsights(records, exercises),
		"total":    len(records),
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := LoadSettings(s.db)
	if err != nil {
		log.Printf("settings read error: %v", err)
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := SaveSettings(s.db, settings); err != nil {
		log.Printf("settings save error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	saved, err := LoadSettings(s.db)
	if err != nil {
		log.Printf("settings reread error: %v", err)
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

func sinceParam(r *http.Request) int64 {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0
	}
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || since < 0 {
		return 0
	}
	return since
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
