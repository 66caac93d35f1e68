package main

import "fmt"

// minRecordsForInsights is the floor below which no trend is reported.
const minRecordsForInsights = 5

// AggregateEmotions returns per-category frequency counts over the slice.
// Every category is present in the result, zero-filled. Records whose
// emotion is not in the closed set count as neutral.
func AggregateEmotions(records []EmotionRecord) map[EmotionCategory]int {
	counts := map[EmotionCategory]int{
		EmotionPositive: 0,
		EmotionNegative: 0,
		EmotionAnxiety:  0,
		EmotionAnger:    0,
		EmotionNeutral:  0,
	}
	for _, r := range records {
		category, ok := ParseEmotion(string(r.Emotion))
		if !ok {
			category = EmotionNeutral
		}
		counts[category]++
	}
	return counts
}

// GenerateInsights produces the dashboard insight strings. Rules fire
// independently and the fired ones are returned in a fixed order, except the
// insufficient-data rule which short-circuits everything else.
func GenerateInsights(records []EmotionRecord, exercises []ExerciseRecord) []string {
	total := len(records)
	if total < minRecordsForInsights {
		return []string{"Keep browsing with MoodLens enabled — at least 5 tracked pages are needed before trends show up."}
	}

	counts := AggregateEmotions(records)
	negativeCluster := counts[EmotionNegative] + counts[EmotionAnxiety] + counts[EmotionAnger]

	var insights []string

	// Overall mood.
	switch {
	case counts[EmotionPositive]*2 > total:
		insights = append(insights, "Your recent browsing mood has been mostly positive. Keep it up!")
	case negativeCluster*2 > total:
		insights = append(insights, "A lot of what you read lately carried a negative tone. Consider taking short breaks between heavy pages.")
	default:
		insights = append(insights, "Your recent mood mix looks balanced.")
	}

	// Stress signal.
	if counts[EmotionAnxiety]*10 > total*3 {
		insights = append(insights, "Anxiety showed up in over 30% of tracked pages. A 4-7-8 breathing session can help settle a racing mind.")
	}

	// Exercise engagement.
	completed := 0
	for _, e := range exercises {
		if e.Completed {
			completed++
		}
	}
	if completed > 5 {
		insights = append(insights, fmt.Sprintf("You completed %d wellness exercises recently — great commitment.", completed))
	} else if completed == 0 && counts[EmotionNegative] > 3 {
		insights = append(insights, "Tough stretch of reading and no exercises yet — try a one-minute breathing or affirmation break.")
	}

	// Model usage.
	modelAssisted := 0
	for _, r := range records {
		if r.Source == SourceModel {
			modelAssisted++
		}
	}
	if modelAssisted > 0 {
		insights = append(insights, fmt.Sprintf("%d of these analyses were model-assisted for higher accuracy.", modelAssisted))
	}

	return insights
}
