package advisor

import (
	"fmt"
	"strings"
)

func (c *Composer) cattle(input string) Advice {
	kb := &c.kb.Livestock.Cattle

	if strings.Contains(input, "feed") || strings.Contains(input, "nutrition") {
		text := fmt.Sprintf(`**Cattle Feeding Guide:**

**Daily requirements:**
• Roughage: %s
• Water: %s
• Minerals: %s

**Dairy cows:**
• Concentrate: %s
• High producers need 18%% protein dairy meal
• Body condition score: 3-3.5

**Beef cattle:**
• Grazing plus supplementation
• Finish on 2-3kg concentrate/day
• Target daily gain: 0.8-1.2kg

**Feed resources:**
• Veld grazing, hay, silage
• Crop residues (maize stover)
• Commercial feeds
• Mineral licks essential`,
			kb.Feeding.Roughage, kb.Feeding.Water, kb.Feeding.Minerals, kb.Feeding.Concentrate)

		return Advice{
			Text:      text,
			FollowUps: []string{"Dairy or beef cattle?", "How many animals?", "Available feed resources?"},
		}
	}

	if strings.Contains(input, "breed") || strings.Contains(input, "mating") {
		text := fmt.Sprintf(`**Cattle Breeding Management:**

**Breeding parameters:**
• Age at first mating: %s
• Gestation period: %s
• Target: %s

**Breeding systems:**
• Natural service: 1 bull per 25-30 cows
• AI: Better genetics, disease control
• Synchronization for grouped calving

**Breed selection:**
• **Beef:** %s
• **Dairy:** %s
• Consider crossbreeding for hardiness

**Key management:**
• Body condition at mating
• Bull fertility testing
• Pregnancy diagnosis at 3 months`,
			kb.Breeding.Maturity, kb.Breeding.Gestation, kb.Breeding.Calving,
			strings.Join(kb.BeefBreeds, ", "), strings.Join(kb.DairyBreeds, ", "))

		return Advice{
			Text:      text,
			FollowUps: []string{"Current breeding system?", "Calving percentage?", "Breed preferences?"},
		}
	}

	return Advice{
		Text: `I can help with cattle production:

**Management areas:**
• Breeding and reproduction
• Nutrition and feeding
• Health and vaccination
• Housing and handling
• Marketing strategies

**Common issues:**
• Low conception rates
• Tick-borne diseases
• Feed shortages in dry season
• Market access

What's your main concern?`,
		FollowUps: []string{"Dairy or beef?", "Herd size?", "Main challenges?"},
	}
}

func (c *Composer) poultry(input string) Advice {
	kb := &c.kb.Livestock.Poultry

	if strings.Contains(input, "feed") || strings.Contains(input, "nutrition") {
		text := fmt.Sprintf(`**Poultry Feeding Program:**

**Layers:**
• Chick starter (0-6 weeks): %s
• Grower (6-18 weeks): %s
• Layer mash (18+ weeks): %s
• Feed intake: 110-120g/bird/day

**Broilers:**
• Starter (0-14 days): 23%% protein
• Grower (14-28 days): 21%% protein
• Finisher (28+ days): %s
• Target FCR: %s

**Water:** 2-3x feed intake
**Feeders:** 1 per 25 birds
**Drinkers:** 1 per 75 birds

Cost saving: Mix own feed if volume justifies`,
			kb.Feeding.Starter, kb.Feeding.Grower, kb.Feeding.Layer, kb.Feeding.Broiler, kb.Production.FCR)

		return Advice{
			Text:      text,
			FollowUps: []string{"Layers or broilers?", "Flock size?", "Feed sourcing?"},
		}
	}

	text := fmt.Sprintf(`Poultry farming essentials:

**Production types:**
• Layers: %s
• Broilers: %s
• Indigenous: Lower input, premium market

**Key success factors:**
• Quality day-old chicks
• Proper vaccination program
• Good ventilation
• Biosecurity measures
• Consistent feed supply

What aspect needs attention?`, kb.Production.Layers, kb.Production.Broilers)

	return Advice{
		Text:      text,
		FollowUps: []string{"Production system?", "Current challenges?", "Market access?"},
	}
}

func (c *Composer) goat() Advice {
	kb := &c.kb.Livestock.Goats
	text := fmt.Sprintf(`**Goat Production:**
• Breeds: %s
• Browse-based feeding system
• Low input, drought tolerant
• Growing market demand

Management focus: Parasite control, kidding management`, strings.Join(kb.Breeds, ", "))

	return Advice{
		Text:      text,
		FollowUps: []string{"Meat or milk production?", "Current flock size?", "Grazing available?"},
	}
}

func (c *Composer) pig() Advice {
	kb := &c.kb.Livestock.Pigs
	text := fmt.Sprintf(`**Pig Production Guide:**
• Fast turnover: %s
• High feed conversion efficiency
• Piglets: %s
• Litters: %s

Success keys: Quality feed, hygiene, temperature control`,
		kb.Production.Market, kb.Production.Piglets, kb.Production.Litters)

	return Advice{
		Text:      text,
		FollowUps: []string{"Production scale?", "Feed source?", "Housing type?"},
	}
}
