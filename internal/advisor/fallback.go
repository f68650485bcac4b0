package advisor

import "strings"

// fallbackConfidence is reported when a reply was composed locally because
// the remote model could not be reached.
const fallbackConfidence = 0.8

// Canned fallback paragraphs, one per bucket. These are deliberately
// self-contained: they are served when no model and no knowledge-base
// composition is involved.
const (
	fallbackMaize = "For maize cultivation in Zimbabwe, plant during the rainy season (October-December). Ensure soil pH is 6.0-7.0, plant seeds 2-3cm deep with 25cm spacing. Use compound fertilizer at planting and top-dress with nitrogen after 6 weeks. Would you like specific variety recommendations for your area?"

	fallbackTomato = "Tomatoes thrive in well-drained soil with pH 6.0-6.8. Start with seedlings after the last frost. Water regularly but avoid waterlogging. Use calcium-rich fertilizer to prevent blossom end rot. Consider varieties like Rodade or Roma for better disease resistance. What's your growing season?"

	fallbackPest = "For pest control, identify the specific pest first. Common solutions include neem oil for aphids, wood ash for cutworms, and companion planting with marigolds. Encourage beneficial insects like ladybugs. Can you describe what you're seeing on your crops?"

	fallbackFertilizer = "Use balanced NPK fertilizer (10-10-10) for most crops. Apply organic compost to improve soil structure. For maize, split nitrogen application - at planting and 6 weeks later. Soil testing helps determine specific needs. What crops are you planning to fertilize?"

	fallbackWeather = "Monitor weather patterns for planting decisions. Plant drought-resistant varieties if rainfall is uncertain. Use mulching to conserve moisture. Consider rainwater harvesting for dry spells. What's your local weather pattern like?"

	fallbackDefault = "I'm here to help with your farming questions! I can assist with crop selection, planting schedules, pest management, soil health, fertilizers, and weather-related farming decisions. What specific farming challenge are you facing? The more details you provide, the better I can help you."
)

// fallbackReply composes the canned answer for an utterance when the remote
// completion fails. The bucket scan here is independent of the topic
// classifier and of the success-path follow-up scan; the three evolved
// separately and their keyword sets intentionally differ.
func fallbackReply(utterance string) Reply {
	input := strings.ToLower(utterance)

	switch {
	case strings.Contains(input, "maize") || strings.Contains(input, "corn"):
		return Reply{
			Text:       fallbackMaize,
			Confidence: fallbackConfidence,
			FollowUps:  []string{"What is your farm size?", "Which variety do you prefer?", "Do you have irrigation?"},
		}
	case strings.Contains(input, "tomato"):
		return Reply{
			Text:       fallbackTomato,
			Confidence: fallbackConfidence,
			FollowUps:  []string{"Are you growing in greenhouse or open field?", "What season are you planting?", "Do you have drip irrigation?"},
		}
	case strings.Contains(input, "pest") || strings.Contains(input, "bug") || strings.Contains(input, "insect"):
		return Reply{
			Text:       fallbackPest,
			Confidence: fallbackConfidence,
			FollowUps:  []string{"Can you describe the pest?", "Which crops are affected?", "How severe is the infestation?"},
		}
	case strings.Contains(input, "fertilizer") || strings.Contains(input, "nutrition"):
		return Reply{
			Text:       fallbackFertilizer,
			Confidence: fallbackConfidence,
			FollowUps:  []string{"Have you tested your soil?", "What crops are you growing?", "What is your budget?"},
		}
	case strings.Contains(input, "weather") || strings.Contains(input, "rain") || strings.Contains(input, "drought"):
		return Reply{
			Text:       fallbackWeather,
			Confidence: fallbackConfidence,
			FollowUps:  []string{"What is your location?", "What season are you planning for?", "Do you have water storage?"},
		}
	default:
		return Reply{
			Text:       fallbackDefault,
			Confidence: fallbackConfidence,
			FollowUps:  []string{},
		}
	}
}
