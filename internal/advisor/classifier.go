// Package advisor implements the conversation core: topic classification,
// knowledge-driven response composition, and the remote-completion service
// with its local fallback.
package advisor

import "strings"

// Topic is the coarse subject classification assigned to a user utterance.
type Topic string

const (
	TopicMaize      Topic = "maize"
	TopicTomato     Topic = "tomato"
	TopicPotato     Topic = "potato"
	TopicWheat      Topic = "wheat"
	TopicLegume     Topic = "legume"
	TopicCattle     Topic = "cattle"
	TopicPoultry    Topic = "poultry"
	TopicGoat       Topic = "goat"
	TopicPig        Topic = "pig"
	TopicSoil       Topic = "soil"
	TopicIrrigation Topic = "irrigation"
	TopicOrganic    Topic = "organic"
	TopicMarket     Topic = "market"
	TopicSeasonal   Topic = "seasonal"
	TopicGeneral    Topic = "general"
)

type classifierRule struct {
	keywords []string
	topic    Topic
}

// classifierRules is evaluated top to bottom, first match wins. The order is
// load-bearing: specific crops come before livestock, livestock before
// general topics, so "organic maize" classifies as maize, not organic.
var classifierRules = []classifierRule{
	{[]string{"maize", "corn"}, TopicMaize},
	{[]string{"tomato"}, TopicTomato},
	{[]string{"potato"}, TopicPotato},
	{[]string{"wheat"}, TopicWheat},
	{[]string{"bean", "soya"}, TopicLegume},
	{[]string{"cattle", "cow"}, TopicCattle},
	{[]string{"chicken", "poultry"}, TopicPoultry},
	{[]string{"goat"}, TopicGoat},
	{[]string{"pig", "swine"}, TopicPig},
	{[]string{"soil", "test"}, TopicSoil},
	{[]string{"irrigat", "water"}, TopicIrrigation},
	{[]string{"organic", "natural"}, TopicOrganic},
	{[]string{"market", "price", "sell"}, TopicMarket},
	{[]string{"season", "calendar", "when"}, TopicSeasonal},
}

// Classify maps an utterance to a Topic by case-insensitive substring
// containment against the ordered rule list. It is total: anything that
// matches no rule is TopicGeneral.
func Classify(utterance string) Topic {
	input := strings.ToLower(utterance)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(input, kw) {
				return rule.topic
			}
		}
	}
	return TopicGeneral
}
