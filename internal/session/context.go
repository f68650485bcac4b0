package session

import (
	"regexp"
	"strconv"
	"strings"
)

// farmSizeRe matches a number followed by an area unit, e.g. "3.5 hectares",
// "10ha", "2 acres".
var farmSizeRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(hectare|ha|acre)`)

// contextCrops is scanned in order; the last name found in the utterance wins,
// overwriting any previously remembered crop.
var contextCrops = []string{"maize", "wheat", "tomato", "potato", "bean", "soya"}

// contextTopics are the tags tracked in RecentTopics.
var contextTopics = []string{"planting", "fertilizer", "pest", "disease", "harvest", "market", "feed", "breed"}

const maxRecentTopics = 5

// Update folds one user utterance into the context. Each extraction rule is
// independent; within a rule, later matches overwrite earlier ones. Nothing
// is ever cleared here except by overwrite.
func (c *Context) Update(utterance string) {
	input := strings.ToLower(utterance)

	if strings.Contains(input, "crop") || strings.Contains(input, "plant") {
		c.FarmingType = FarmingCrops
	}
	if strings.Contains(input, "cattle") || strings.Contains(input, "cow") || strings.Contains(input, "livestock") {
		c.FarmingType = FarmingLivestock
	}

	if strings.Contains(input, "chicken") || strings.Contains(input, "poultry") {
		c.LivestockFocus = "poultry"
	}

	for _, crop := range contextCrops {
		if strings.Contains(input, crop) {
			c.SpecificCrop = crop
		}
	}

	if m := farmSizeRe.FindStringSubmatch(input); m != nil {
		if size, err := strconv.ParseFloat(m[1], 64); err == nil && size > 0 {
			c.FarmSize = size
			c.FarmSizeUnit = normalizeUnit(m[2])
		}
	}

	if strings.Contains(input, "irrigat") || strings.Contains(input, "drip") || strings.Contains(input, "sprinkler") {
		c.IrrigationAvailable = true
	}

	for _, topic := range contextTopics {
		if strings.Contains(input, topic) {
			c.RecentTopics = append(c.RecentTopics, topic)
		}
	}
	c.RecentTopics = dedupeTail(c.RecentTopics, maxRecentTopics)
}

func normalizeUnit(unit string) SizeUnit {
	switch strings.ToLower(unit) {
	case "acre":
		return UnitAcre
	default: // "hectare" or "ha"
		return UnitHectare
	}
}

// dedupeTail collapses duplicates keeping the first occurrence of each tag,
// then retains only the last n entries.
func dedupeTail(topics []string, n int) []string {
	seen := make(map[string]bool, len(topics))
	deduped := topics[:0]
	for _, t := range topics {
		if !seen[t] {
			seen[t] = true
			deduped = append(deduped, t)
		}
	}
	if len(deduped) > n {
		deduped = deduped[len(deduped)-n:]
	}
	return deduped
}
