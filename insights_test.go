package main

import (
	"strings"
	"testing"
)

func emotionRecords(categories ...EmotionCategory) []EmotionRecord {
	records := make([]EmotionRecord, 0, len(categories))
	for _, c := range categories {
		records = append(records, EmotionRecord{Emotion: c})
	}
	return records
}

func repeat(category EmotionCategory, n int) []EmotionCategory {
	out := make([]EmotionCategory, n)
	for i := range out {
		out[i] = category
	}
	return out
}

func TestAggregateEmptySlice(t *testing.T) {
	counts := AggregateEmotions(nil)

	if len(counts) != 5 {
		t.Fatalf("expected all five categories present, got %d", len(counts))
	}
	for category, n := range counts {
		if n != 0 {
			t.Fatalf("expected zero count for %s, got %d", category, n)
		}
	}
}

func TestAggregateCountsSumToLength(t *testing.T) {
	records := emotionRecords(EmotionPositive, EmotionPositive, EmotionAnger, EmotionNeutral, EmotionAnxiety)
	counts := AggregateEmotions(records)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(records) {
		t.Fatalf("counts sum %d != slice length %d", sum, len(records))
	}
	if counts[EmotionPositive] != 2 {
		t.Fatalf("expected 2 positive, got %d", counts[EmotionPositive])
	}
}

func TestAggregateDefaultsUnknownToNeutral(t *testing.T) {
	records := []EmotionRecord{{Emotion: EmotionCategory("")}, {Emotion: EmotionCategory("weird")}}
	counts := AggregateEmotions(records)

	if counts[EmotionNeutral] != 2 {
		t.Fatalf("expected unknown emotions counted as neutral, got %d", counts[EmotionNeutral])
	}
}

func TestInsightsInsufficientData(t *testing.T) {
	records := emotionRecords(EmotionPositive, EmotionNegative, EmotionAnger, EmotionAnxiety)
	insights := GenerateInsights(records, nil)

	if len(insights) != 1 {
		t.Fatalf("expected a single insufficient-data message, got %d: %v", len(insights), insights)
	}
	if !strings.Contains(insights[0], "at least 5") {
		t.Fatalf("unexpected message: %q", insights[0])
	}
}

func TestInsightsMostlyPositive(t *testing.T) {
	// 6 of 10 positive: 60% > 50%.
	categories := append(repeat(EmotionPositive, 6), repeat(EmotionNeutral, 4)...)
	insights := GenerateInsights(emotionRecords(categories...), nil)

	if len(insights) == 0 || !strings.Contains(insights[0], "mostly positive") {
		t.Fatalf("expected mostly-positive mood insight first, got %v", insights)
	}
}

func TestInsightsNegativeCluster(t *testing.T) {
	categories := append(repeat(EmotionNegative, 2), repeat(EmotionAnxiety, 2)...)
	categories = append(categories, repeat(EmotionAnger, 2)...)
	categories = append(categories, repeat(EmotionPositive, 2)...)
	insights := GenerateInsights(emotionRecords(categories...), nil)

	if len(insights) == 0 || !strings.Contains(insights[0], "negative tone") {
		t.Fatalf("expected negative mood insight first, got %v", insights)
	}
}

func TestInsightsBalanced(t *testing.T) {
	categories := append(repeat(EmotionPositive, 3), repeat(EmotionNegative, 3)...)
	categories = append(categories, repeat(EmotionNeutral, 4)...)
	insights := GenerateInsights(emotionRecords(categories...), nil)

	if len(insights) == 0 || !strings.Contains(insights[0], "balanced") {
		t.Fatalf("expected balanced mood insight first, got %v", insights)
	}
}

func TestInsightsAnxietyThreshold(t *testing.T) {
	// 4 of 10 anxiety: 40% > 30% fires the stress rule.
	categories := append(repeat(EmotionAnxiety, 4), repeat(EmotionNeutral, 6)...)
	insights := GenerateInsights(emotionRecords(categories...), nil)

	found := false
	for _, msg := range insights {
		if strings.Contains(msg, "Anxiety") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected anxiety insight, got %v", insights)
	}

	// Exactly 30% must not fire.
	categories = append(repeat(EmotionAnxiety, 3), repeat(EmotionNeutral, 7)...)
	insights = GenerateInsights(emotionRecords(categories...), nil)
	for _, msg := range insights {
		if strings.Contains(msg, "Anxiety") {
			t.Fatalf("anxiety insight fired at exactly 30%%: %v", insights)
		}
	}
}

func TestInsightsExerciseCommitment(t *testing.T) {
	records := emotionRecords(repeat(EmotionNeutral, 10)...)
	exercises := make([]ExerciseRecord, 6)
	for i := range exercises {
		exercises[i] = ExerciseRecord{ExerciseID: ExerciseBreathing, Completed: true}
	}

	insights := GenerateInsights(records, exercises)
	found := false
	for _, msg := range insights {
		if strings.Contains(msg, "great commitment") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected commitment insight, got %v", insights)
	}
}

func TestInsightsSuggestExercisesOnRoughStretch(t *testing.T) {
	categories := append(repeat(EmotionNegative, 4), repeat(EmotionNeutral, 6)...)
	insights := GenerateInsights(emotionRecords(categories...), nil)

	found := false
	for _, msg := range insights {
		if strings.Contains(msg, "no exercises yet") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected try-exercises insight, got %v", insights)
	}
}

func TestInsightsModelAssistedCount(t *testing.T) {
	records := emotionRecords(repeat(EmotionNeutral, 10)...)
	records[0].Source = SourceModel
	records[1].Source = SourceModel
	records[2].Source = SourceHeuristic

	insights := GenerateInsights(records, nil)
	found := false
	for _, msg := range insights {
		if strings.Contains(msg, "2 of these analyses were model-assisted") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected model-assisted insight, got %v", insights)
	}
}

func TestInsightsOrderIsFixed(t *testing.T) {
	categories := append(repeat(EmotionAnxiety, 6), repeat(EmotionNegative, 4)...)
	records := emotionRecords(categories...)
	for i := range records {
		records[i].Source = SourceModel
	}

	insights := GenerateInsights(records, nil)
	if len(insights) != 4 {
		t.Fatalf("expected mood, anxiety, exercise and model insights, got %v", insights)
	}
	if !strings.Contains(insights[0], "negative tone") {
		t.Fatalf("expected mood insight first, got %q", insights[0])
	}
	if !strings.Contains(insights[1], "Anxiety") {
		t.Fatalf("expected anxiety insight second, got %q", insights[1])
	}
	if !strings.Contains(insights[2], "no exercises yet") {
		t.Fatalf("expected exercise insight third, got %q", insights[2])
	}
	if !strings.Contains(insights[3], "model-assisted") {
		t.Fatalf("expected model insight last, got %q", insights[3])
	}
}
