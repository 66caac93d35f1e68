package main

import (
	"log"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	if err := EvictExpired(db, time.Now()); err != nil {
		log.Printf("startup eviction error: %v", err)
	}

	var model modelCapability
	if cfg.LLMProvider != "" {
		model = NewModelClassifier(cfg)
		log.Printf("Model classification enabled provider=%s", cfg.LLMProvider)
	} else {
		log.Println("No LLM provider configured, running heuristic-only")
	}
	classifier := NewClassifier(model)

	var api *slack.Client
	if cfg.SlackBotToken != "" {
		api = slack.New(cfg.SlackBotToken)
	}
	StartNudgeScheduler(cfg, db, api)

	srv := NewServer(db, classifier)
	log.Printf("MoodLens companion service listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
