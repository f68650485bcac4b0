package advisor

import (
	"fmt"
	"strings"
	"time"
)

func (c *Composer) soil() Advice {
	kb := &c.kb.SoilAndWater
	text := fmt.Sprintf(`**Soil Management Guide:**

**Soil Testing:**
• Frequency: %s
• Parameters: %s
• Sampling: %s

**Correction measures:**
• Acidic soils (pH <5.5): %s
• Alkaline (pH >7.5): %s
• Low organic matter: %s

**Improving soil health:**
• Crop rotation with legumes
• Cover crops in off-season
• Minimum tillage practices
• Organic matter addition

**Nutrient management:**
• Follow 4Rs: Right source, rate, time, place
• Consider soil type for application
• Monitor with leaf analysis`,
		kb.Testing.Frequency, strings.Join(kb.Testing.Parameters, ", "), kb.Testing.Sampling,
		kb.Correction.Acidic, kb.Correction.Alkaline, kb.Correction.Organic)

	return Advice{
		Text:      text,
		FollowUps: []string{"Recent soil test results?", "Main soil problems?", "Crop rotation practiced?"},
	}
}

func (c *Composer) irrigation() Advice {
	kb := &c.kb.SoilAndWater.Irrigation

	var lines []string
	for i, typ := range kb.Types {
		efficiency := "Variable"
		if i < len(kb.Efficiency) {
			efficiency = kb.Efficiency[i]
		}
		lines = append(lines, fmt.Sprintf("• %s: %s", typ, efficiency))
	}

	text := fmt.Sprintf(`**Irrigation Systems:**

**Types & Efficiency:**
%s

**Water Management:**
• Schedule: %s
• Monitor soil moisture regularly
• Avoid over-irrigation (diseases)

**Crop water needs:**
• Vegetables: 25-40mm/week
• Maize: 500-800mm/season
• Critical periods vary by crop`, strings.Join(lines, "\n"), kb.Scheduling)

	return Advice{
		Text:      text,
		FollowUps: []string{"Water source available?", "Current system?", "Crops to irrigate?"},
	}
}

func (c *Composer) organic() Advice {
	kb := &c.kb.FarmManagement.Certification
	text := fmt.Sprintf(`**Organic Farming Guide:**

**Certification:**
• %s
• Annual inspections required
• Detailed record keeping

**Practices:**
• Compost/manure for fertility
• Crop rotation mandatory
• Biological pest control
• No synthetic chemicals

**Benefits:**
• Premium prices (30-50%% higher)
• Growing market demand
• Improved soil health

**Challenges:**
• Lower yields initially
• More labor intensive
• Pest management difficult`, kb.Organic)

	return Advice{
		Text:      text,
		FollowUps: []string{"Current farming practices?", "Certification interest?", "Market identified?"},
	}
}

func (c *Composer) market() Advice {
	return Advice{
		Text: `**Agricultural Marketing Options:**

**Market channels:**
• Farm gate sales (lowest price)
• Local markets/vendors
• Wholesalers/middlemen
• Contract farming
• Direct to retailers
• Export (highest standards)

**Value addition:**
• Grading and packaging
• Processing (e.g., tomato sauce)
• Timing sales (storage)
• Organic certification

**Price factors:**
• Supply and demand
• Quality and grading
• Season and timing
• Transport costs
• Market information

**Tips for better prices:**
• Group marketing (cooperatives)
• Market information systems
• Quality consistency
• Reliable supply`,
		FollowUps: []string{"Which products to market?", "Current marketing approach?", "Storage facilities?"},
	}
}

// seasonal picks the calendar block for the current month: the main summer
// season runs November through April, the winter cropping window May through
// July, and the rest of the year is input procurement and planning.
func (c *Composer) seasonal() Advice {
	month := c.now().Month()

	var block string
	switch {
	case month >= time.November || month <= time.April:
		block = `**Main Season (Nov-March):**
• Plant summer crops: maize, cotton, soybeans
• Top dress planted crops
• Scout for pests/diseases
• Plan harvest logistics`
	case month >= time.May && month <= time.July:
		block = `**Winter Season (Apr-Sept):**
• Plant wheat, barley (irrigated)
• Vegetable production
• Land preparation for summer
• Maintenance of equipment`
	default:
		block = `**Planning Period:**
• Procure inputs for next season
• Soil testing and correction
• Equipment maintenance
• Marketing planning`
	}

	text := fmt.Sprintf(`**Seasonal Farming Calendar:**

**Current period recommendations:**

%s

**Year-round activities:**
• Livestock management
• Vegetable production (irrigated)
• Value addition activities
• Record keeping

**Upcoming tasks:**
• Check weather forecasts
• Secure inputs early
• Plan crop rotations`, block)

	return Advice{
		Text:      text,
		FollowUps: []string{"What are you planning to grow?", "Do you have irrigation?", "Input requirements?"},
	}
}

func (c *Composer) generalMenu() Advice {
	return Advice{
		Text: `I'm your comprehensive agricultural assistant! I can help with:

**🌾 CROP PRODUCTION**
• Cereals: Maize, wheat, sorghum, barley
• Legumes: Beans, soybeans, groundnuts
• Vegetables: Tomatoes, cabbage, onions, potatoes
• Cash crops: Cotton, tobacco, sunflower

**🐄 LIVESTOCK FARMING**
• Cattle: Dairy and beef production
• Poultry: Layers and broilers
• Small stock: Goats, sheep, pigs
• Animal health and nutrition

**🌱 HORTICULTURE**
• Fruit production
• Vegetable gardening
• Greenhouse management
• Ornamental plants

**💧 FARM MANAGEMENT**
• Soil testing and fertility
• Irrigation systems
• Pest and disease control
• Farm planning and economics

What aspect of farming would you like to explore?`,
		FollowUps: []string{
			"What type of farming are you doing?",
			"What are your main challenges?",
			"What's your location and farm size?",
		},
	}
}
