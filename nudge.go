package main

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// NudgeScheduler sends adaptive wellness reminders. It ticks once a minute
// and sends when the interval configured in user settings has elapsed. The
// message adapts to the dominant emotion of the last 24h of history.
type NudgeScheduler struct {
	db     *sql.DB
	api    *slack.Client // nil when Slack delivery is not configured
	userID string

	mu       sync.Mutex
	lastSent time.Time
}

// StartNudgeScheduler parses the tick schedule and runs the reminder loop in
// the background. Delivery is best-effort: every failure is logged and
// swallowed.
func StartNudgeScheduler(cfg Config, db *sql.DB, api *slack.Client) *NudgeScheduler {
	n := &NudgeScheduler{db: db, api: api, userID: cfg.SlackUserID}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse("* * * * *")
	if err != nil {
		log.Printf("nudge scheduler disabled: %v", err)
		return n
	}

	log.Printf("Nudge scheduler started (slack_delivery=%t)", api != nil && cfg.SlackUserID != "")

	go func() {
		for {
			now := time.Now()
			next := sched.Next(now)
			time.Sleep(next.Sub(now))
			n.tick(time.Now())
		}
	}()
	return n
}

func (n *NudgeScheduler) tick(now time.Time) {
	settings, err := LoadSettings(n.db)
	if err != nil {
		log.Printf("nudge settings read error: %v", err)
	}
	if !settings.EnabledNotifications || settings.ReminderIntervalMinutes <= 0 {
		return
	}

	n.mu.Lock()
	due := n.lastSent.IsZero() || now.Sub(n.lastSent) >= time.Duration(settings.ReminderIntervalMinutes)*time.Minute
	n.mu.Unlock()
	if !due {
		return
	}

	since := now.Add(-24 * time.Hour).UnixMilli()
	records, err := EmotionsSince(n.db, since)
	if err != nil {
		log.Printf("nudge history read error: %v", err)
		records = nil
	}

	dominant := dominantEmotion(AggregateEmotions(records))
	if !shouldNudge(settings.Sensitivity, dominant) {
		return
	}

	msg := buildNudgeMessage(dominant, Recommend(dominant, settings.PreferredExercises))
	n.deliver(msg)

	n.mu.Lock()
	n.lastSent = now
	n.mu.Unlock()
}

func (n *NudgeScheduler) deliver(msg string) {
	if n.api == nil || n.userID == "" {
		log.Printf("nudge (local only): %s", msg)
		return
	}
	channel, _, _, err := n.api.OpenConversation(&slack.OpenConversationParameters{
		Users: []string{n.userID},
	})
	if err != nil {
		log.Printf("nudge error opening DM with %s: %v", n.userID, err)
		return
	}
	if _, _, err := n.api.PostMessage(channel.ID, slack.MsgOptionText(msg, false)); err != nil {
		log.Printf("nudge error sending to %s: %v", n.userID, err)
		return
	}
	log.Printf("Sent nudge to %s", n.userID)
}

// dominantEmotion picks the most frequent category. A trigger category must
// strictly beat neutral to dominate; ties between trigger categories keep
// the first in enumeration order.
func dominantEmotion(counts map[EmotionCategory]int) EmotionCategory {
	best := EmotionNeutral
	bestCount := counts[EmotionNeutral]
	for _, category := range emotionOrder {
		if counts[category] > bestCount {
			best = category
			bestCount = counts[category]
		}
	}
	return best
}

// shouldNudge gates reminders on sensitivity: low sensitivity only nudges on
// the negative cluster, medium additionally on neutral stretches, high
// always.
func shouldNudge(sensitivity string, dominant EmotionCategory) bool {
	switch sensitivity {
	case IntensityHigh:
		return true
	case IntensityLow:
		return dominant == EmotionNegative || dominant == EmotionAnxiety || dominant == EmotionAnger
	default:
		return dominant != EmotionPositive
	}
}

func buildNudgeMessage(dominant EmotionCategory, exercise string) string {
	var lead string
	switch dominant {
	case EmotionAnxiety:
		lead = "Your recent reading has leaned stressful."
	case EmotionAnger:
		lead = "Your recent reading has carried a lot of heat."
	case EmotionNegative:
		lead = "Your recent reading has been on the heavy side."
	case EmotionPositive:
		lead = "You've been on a positive reading streak."
	default:
		lead = "Time for a quick wellness check-in."
	}
	return fmt.Sprintf("%s A short %s exercise might do you good — open the MoodLens popup to start.", lead, exercise)
}
