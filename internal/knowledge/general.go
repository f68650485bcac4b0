package knowledge

var horticulture = Horticulture{
	Vegetables: VegetableGroups{
		Leafy:    []string{"Cabbage", "Lettuce", "Spinach", "Rape"},
		Fruiting: []string{"Tomatoes", "Peppers", "Eggplant", "Cucumbers"},
		Root:     []string{"Carrots", "Beetroot", "Radish", "Turnips"},
		Bulb:     []string{"Onions", "Garlic", "Leeks"},
	},
	Fruits: FruitGroups{
		Citrus:    []string{"Oranges", "Lemons", "Grapefruit"},
		Tropical:  []string{"Mangoes", "Avocados", "Bananas"},
		Deciduous: []string{"Apples", "Peaches", "Grapes"},
	},
	Management: HortManagement{
		Irrigation:  "Drip recommended, 25-40mm/week",
		Mulching:    "Organic or plastic mulch",
		Pruning:     "Regular for fruit quality",
		PestControl: "IPM approach preferred",
	},
}

var soilAndWater = SoilAndWater{
	Testing: SoilTesting{
		Frequency:  "Every 2-3 years",
		Parameters: []string{"pH", "N", "P", "K", "OM", "CEC"},
		Sampling:   "Zigzag pattern, 0-20cm depth",
	},
	Correction: SoilCorrection{
		Acidic:   "Lime 2-4 tons/ha",
		Alkaline: "Sulfur or gypsum",
		Organic:  "Compost 10-20 tons/ha",
	},
	Irrigation: IrrigationGuide{
		Types:      []string{"Drip", "Sprinkler", "Flood", "Center pivot"},
		Efficiency: []string{"Drip 90%", "Sprinkler 75%", "Flood 50%"},
		Scheduling: "Based on ET and soil moisture",
	},
	Conservation: Conservation{
		Practices:       []string{"Mulching", "Contours", "Terracing", "Cover crops"},
		ErosionControl:  "Vetiver grass, gabions",
		WaterHarvesting: "Dams, weirs, tanks",
	},
}

var farmManagement = FarmManagement{
	Planning: Planning{
		Budgeting:     "Income - expenses = profit",
		RecordKeeping: "Production, financial, inventory",
		Marketing:     "Contract, spot market, value addition",
	},
	Economics: Economics{
		GrossMargin: "Revenue - variable costs",
		Breakeven:   "Fixed costs / (price - variable cost per unit)",
		ROI:         "(Gain - Cost) / Cost × 100",
	},
	Certification: Certification{
		Organic:   "3-year transition, no chemicals",
		GAP:       "Good Agricultural Practices",
		FairTrade: "Social and environmental standards",
	},
}
