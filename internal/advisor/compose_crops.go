package advisor

import (
	"fmt"
	"strings"

	"github.com/mudhumeni-ai/server/internal/knowledge"
	"github.com/mudhumeni-ai/server/internal/session"
)

// Per-hectare input rates used for farm-size scaling.
const (
	maizeSeedRateKg     = 25
	maizeBasalRateKg    = 400
	maizeTopDressRateKg = 400
)

func (c *Composer) maize(input string, sc *session.Context) Advice {
	kb := &c.kb.Crops.Maize

	if strings.Contains(input, "plant") {
		var b strings.Builder
		fmt.Fprintf(&b, `**Maize Planting Guide:**

**Season:** %s
**Seed rate:** %s
**Depth:** %s
**Spacing:** %s
**Population:** %s

**Key considerations:**
• Check soil moisture before planting (30cm clay, 50cm sand)
• Use certified seed for better germination
• Apply basal fertilizer at planting
• Consider early planting for better yields
`, kb.Planting.Season, kb.Planting.SeedRate, kb.Planting.Depth, kb.Planting.Spacing, kb.Planting.Population)

		if sc.FarmSizeKnown() {
			fmt.Fprintf(&b, "\nFor your %s %s, you'll need %skg of seed.\n",
				formatSize(sc.FarmSize), sc.UnitLabel(), formatQuantity(sc.FarmSize, maizeSeedRateKg))
		}

		b.WriteString(`
**Variety selection:**
• Short season areas: SC403, SC419
• Medium season: SC529, SC537
• Long season: SC627, SC649, SC719`)

		return Advice{
			Text: b.String(),
			FollowUps: []string{
				"Which variety suits your area?",
				"Do you have your fertilizer ready?",
				"What's your target yield?",
			},
		}
	}

	if strings.Contains(input, "fertiliz") || strings.Contains(input, "fertilis") {
		var b strings.Builder
		fmt.Fprintf(&b, `**Maize Fertilizer Program:**

**Basal (at planting):**
• %s

**Top dressing:**
• %s

**Total nutrients (kg/ha):**
• Nitrogen: %d
• Phosphorus: %d
• Potassium: %d
`, kb.Fertilizer.Basal, kb.Fertilizer.TopDressing,
			kb.Fertilizer.Nutrients.N, kb.Fertilizer.Nutrients.P, kb.Fertilizer.Nutrients.K)

		if sc.FarmSizeKnown() {
			fmt.Fprintf(&b, `
**For your %s %s:**
• Basal: %skg Compound D
• Top dress: %skg AN
`, formatSize(sc.FarmSize), sc.UnitLabel(),
				formatQuantity(sc.FarmSize, maizeBasalRateKg),
				formatQuantity(sc.FarmSize, maizeTopDressRateKg))
		}

		b.WriteString(`
**Application tips:**
• Place basal 5cm below and beside seed
• Apply top dressing when soil is moist
• Consider split application on sandy soils`)

		return Advice{
			Text: b.String(),
			FollowUps: []string{
				"Have you done a soil test?",
				"What was your previous yield?",
				"Do you need organic alternatives?",
			},
		}
	}

	if strings.Contains(input, "pest") || strings.Contains(input, "worm") {
		text := fmt.Sprintf(`**Maize Pest Management:**

**Fall Armyworm:**
• Signs: Window pane damage, droppings in whorl
• Control: %s
• Apply at first sign of damage

**Stalk Borer:**
• Signs: Shot holes in leaves, dead heart
• Control: %s
• Scout at 3-4 weeks after emergence

**Aphids:**
• Signs: Curled leaves, honeydew
• Control: %s
• Important for virus transmission

**Application:** 200L water/ha, target pest location`,
			strings.Join(kb.Pest(knowledge.PestFallArmyworm).Options, ", "),
			strings.Join(kb.Pest(knowledge.PestStalkBorer).Options, ", "),
			strings.Join(kb.Pest(knowledge.PestAphids).Options, ", "))

		return Advice{
			Text: text,
			FollowUps: []string{
				"Which pest are you seeing?",
				"How severe is the infestation?",
				"Do you need organic options?",
			},
		}
	}

	text := fmt.Sprintf(`I can help with all aspects of maize production:

• **Planting:** Timing, spacing, varieties
• **Fertilization:** Basal and top dressing programs
• **Pest control:** Fall armyworm, stalk borers
• **Disease management:** Grey leaf spot, streak virus
• **Weed control:** Herbicide programs
• **Harvesting:** Timing and storage

Current yields range from %s.

What specific aspect of maize farming do you need help with?`, kb.Harvest.Yield)

	return Advice{
		Text: text,
		FollowUps: []string{
			"Are you planning a new crop?",
			"What challenges are you facing?",
			"What's your current yield?",
		},
	}
}

func (c *Composer) tomato(input string, sc *session.Context) Advice {
	kb := &c.kb.Crops.Tomatoes

	if strings.Contains(input, "plant") {
		text := fmt.Sprintf(`**Tomato Production Guide:**

**Season:** %s
**Spacing:** %s
**Population:** %s
**Seedlings:** %s old for transplanting

**Growing systems:**
• Open field: Lower cost, weather dependent
• Greenhouse: Higher yields, year-round production
• Stake/trellis: Better fruit quality, easier management

**Varieties:**
• Determinate: Roma, Heinz (processing)
• Indeterminate: Rodade, Star (fresh market)
• Cherry: Sweet 100, Sun Gold

**Success factors:**
• Well-drained soil, pH 6.0-6.8
• Consistent watering (avoid extremes)
• Calcium for blossom end rot prevention`,
			kb.Planting.Season, kb.Planting.Spacing, kb.Planting.Population, kb.Planting.SeedlingAge)

		return Advice{
			Text: text,
			FollowUps: []string{
				"Open field or greenhouse?",
				"Fresh market or processing?",
				"Do you have irrigation?",
			},
		}
	}

	text := fmt.Sprintf(`Tomato farming can be highly profitable with yields of %s.

Key management areas:
• **Nutrition:** High calcium requirement
• **Diseases:** Early/late blight, bacterial wilt
• **Pests:** Bollworm, whitefly, red spider mites
• **Harvest:** %s

What aspect needs attention?`, kb.Harvest.Yield, kb.Harvest.Frequency)

	return Advice{
		Text:      text,
		FollowUps: []string{"Production system?", "Main challenges?", "Target market?"},
	}
}

func (c *Composer) wheat() Advice {
	kb := &c.kb.Crops.Wheat
	text := fmt.Sprintf(`**Wheat Production:**
• Season: %s
• Seed rate: %s
• Yield potential: %s
• Key: Irrigation essential for winter wheat

What specific aspect interests you?`, kb.Planting.Season, kb.Planting.SeedRate, kb.Harvest.Yield)

	return Advice{
		Text:      text,
		FollowUps: []string{"Irrigation system available?", "Target yield?", "Previous wheat experience?"},
	}
}

func (c *Composer) potato() Advice {
	kb := &c.kb.Crops.Potatoes
	text := fmt.Sprintf(`**Potato Production Guide:**
• Planting: %s
• Seed rate: %s
• Spacing: %s
• Yield: %s

Key success factors: Certified seed, hilling, blight control`,
		kb.Planting.Season, kb.Planting.SeedRate, kb.Planting.Spacing, kb.Harvest.Yield)

	return Advice{
		Text:      text,
		FollowUps: []string{"Seed source?", "Irrigation available?", "Storage facilities?"},
	}
}

func (c *Composer) legume() Advice {
	beans := &c.kb.Crops.Beans
	soya := &c.kb.Crops.Soyabeans
	text := fmt.Sprintf(`**Legume Production (Beans/Soya):**
• Improves soil nitrogen
• Lower fertilizer needs
• Good rotation crop
• Market demand high

Yields: Beans %s, Soya %s`, beans.Harvest.Yield, soya.Harvest.Yield)

	return Advice{
		Text:      text,
		FollowUps: []string{"Which legume crop?", "Inoculant available?", "Market arrangements?"},
	}
}
