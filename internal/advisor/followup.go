package advisor

import "strings"

// followUpQuestions derives follow-up prompts for a successful remote reply
// by scanning the user's utterance only (the model output is not inspected).
// This is a coarser scheme than the composer's per-branch questions: four
// buckets, first match wins, no match means no suggestions.
func followUpQuestions(utterance string) []string {
	input := strings.ToLower(utterance)

	switch {
	case strings.Contains(input, "plant") || strings.Contains(input, "crop"):
		return []string{"What is your farm size?", "What type of soil do you have?", "When do you plan to plant?"}
	case strings.Contains(input, "pest") || strings.Contains(input, "disease"):
		return []string{"Can you describe the symptoms?", "Which crops are affected?", "When did you first notice this?"}
	case strings.Contains(input, "fertilizer") || strings.Contains(input, "soil"):
		return []string{"Have you tested your soil recently?", "What crops are you growing?", "What is your budget for fertilizers?"}
	case strings.Contains(input, "weather") || strings.Contains(input, "rain"):
		return []string{"What is your location?", "Do you have irrigation?", "What season are you planning for?"}
	default:
		return []string{}
	}
}
