package advisor

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      Topic
	}{
		{"When should I plant maize?", TopicMaize},
		{"my CORN has holes in the leaves", TopicMaize},
		{"tomato seedlings", TopicTomato},
		{"storing potatoes", TopicPotato},
		{"winter wheat", TopicWheat},
		{"sugar bean spacing", TopicLegume},
		{"soya inoculant", TopicLegume},
		{"my cow is not eating", TopicCattle},
		{"broiler chicken feed", TopicPoultry},
		{"goat kids", TopicGoat},
		{"pig housing", TopicPig},
		{"swine fever", TopicPig},
		{"soil acidity", TopicSoil},
		{"should I test my field", TopicSoil},
		{"drip irrigation cost", TopicIrrigation},
		{"how much water do vegetables need", TopicIrrigation},
		{"organic certification", TopicOrganic},
		{"natural pest remedies", TopicOrganic},
		{"where can I sell my produce", TopicMarket},
		{"best price for cotton", TopicMarket},
		{"farming calendar", TopicSeasonal},
		{"hello", TopicGeneral},
		{"", TopicGeneral},
	}

	for _, tt := range tests {
		if got := Classify(tt.utterance); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.utterance, got, tt.want)
		}
	}
}

// Crop rules outrank livestock and general rules, so mixed utterances
// resolve to the most specific subject.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		utterance string
		want      Topic
	}{
		{"organic maize production", TopicMaize},
		{"watering my tomato plants", TopicTomato},
		{"selling cattle at the market", TopicCattle},
		{"soil for chicken runs", TopicPoultry},
		{"when to irrigate wheat", TopicWheat},
	}

	for _, tt := range tests {
		if got := Classify(tt.utterance); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.utterance, got, tt.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	const utterance = "maize and cattle and soil"
	first := Classify(utterance)
	for i := 0; i < 10; i++ {
		if got := Classify(utterance); got != first {
			t.Fatalf("Classify is not deterministic: %q then %q", first, got)
		}
	}
}
