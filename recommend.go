package main

// Exercise identifiers known to the extension UI.
const (
	ExerciseBreathing   = "breathing"
	ExerciseAffirmation = "affirmation"
	ExerciseMindfulness = "mindfulness"
)

// defaultExercise is returned when every candidate for an emotion is
// disabled in the user's preferences.
const defaultExercise = ExerciseBreathing

// exerciseCandidates is the fixed priority table mapping an emotion to its
// ordered exercise candidates. Not user-configurable.
var exerciseCandidates = map[EmotionCategory][]string{
	EmotionAnxiety:  {ExerciseBreathing, ExerciseMindfulness},
	EmotionAnger:    {ExerciseBreathing, ExerciseMindfulness},
	EmotionNegative: {ExerciseAffirmation, ExerciseMindfulness},
	EmotionPositive: {ExerciseAffirmation},
	EmotionNeutral:  {ExerciseBreathing, ExerciseAffirmation, ExerciseMindfulness},
}

// Recommend returns the first candidate exercise for the emotion that the
// user has not explicitly disabled. An absent preference key means enabled.
// Pure and deterministic.
func Recommend(emotion EmotionCategory, prefs map[string]bool) string {
	for _, id := range exerciseCandidates[emotion] {
		if enabled, ok := prefs[id]; ok && !enabled {
			continue
		}
		return id
	}
	return defaultExercise
}
