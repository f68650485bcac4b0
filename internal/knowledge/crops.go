package knowledge

// Pest and disease names referenced by the advisor's composers. Validation
// guarantees the entries exist in the tables below.
const (
	PestFallArmyworm = "fall armyworm"
	PestStalkBorer   = "stalk borer"
	PestAphids       = "aphids"
)

var maize = Crop{
	Planting: Planting{
		Season:     "October-December (main season)",
		Depth:      "2-5cm",
		Spacing:    "75-90cm rows, 22-60cm plants",
		Population: "45,000-55,000 plants/ha",
		SeedRate:   "25kg/ha",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound D 400kg/ha or Double D 200kg/ha",
		TopDressing: "AN 400kg/ha split at 3-4 and 6-7 weeks",
		Nutrients:   &Nutrients{N: 166, P: 56, K: 28},
	},
	Pests: []Treatment{
		{Name: PestFallArmyworm, Options: []string{"Belt 38ml/ha", "Karate 200ml/ha"}},
		{Name: PestStalkBorer, Options: []string{"Lambda cyalothrin 200ml/ha"}},
		{Name: PestAphids, Options: []string{"Dimethoate 500-750ml/ha"}},
	},
	Diseases: []Treatment{
		{Name: "grey leaf spot", Options: []string{"Propiconazole 750ml/ha", "Tebuconazole 1L/ha"}},
		{Name: "maize streak virus", Note: "Gaucho seed treatment"},
	},
	Harvest: Harvest{
		Maturity: "90-150 days depending on variety",
		Moisture: "20-25% at harvest, 13-15% for storage",
		Yield:    "3-12 tons/ha depending on management",
	},
}

var wheat = Crop{
	Planting: Planting{
		Season:   "April-May (winter crop)",
		Depth:    "3-4cm",
		Spacing:  "15-20cm rows",
		SeedRate: "100-120kg/ha",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound D 200-300kg/ha",
		TopDressing: "AN 200kg/ha at tillering",
		Nutrients:   &Nutrients{N: 100, P: 40, K: 20},
	},
	Pests: []Treatment{
		{Name: PestAphids, Options: []string{"Dimethoate 400ml/ha"}},
		{Name: "armyworm", Options: []string{"Carbaryl 1.5kg/ha"}},
	},
	Diseases: []Treatment{
		{Name: "rust", Options: []string{"Propiconazole 500ml/ha"}},
		{Name: "powdery mildew", Options: []string{"Sulfur dust 25kg/ha"}},
	},
	Harvest: Harvest{
		Maturity: "120-150 days",
		Moisture: "12-14% for harvest",
		Yield:    "2-6 tons/ha",
	},
}

var tomatoes = Crop{
	Planting: Planting{
		Season:      "Year-round with irrigation, avoid frost",
		Spacing:     "90cm rows, 45cm plants",
		Population:  "25,000 plants/ha",
		SeedlingAge: "4-6 weeks",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound C 600kg/ha",
		TopDressing: "CAN 200kg/ha every 2 weeks",
		Foliar:      "Calcium nitrate for blossom end rot",
	},
	Pests: []Treatment{
		{Name: "bollworm", Options: []string{"Deltamethrin 30ml/ha"}},
		{Name: "whitefly", Options: []string{"Imidacloprid 200ml/ha"}},
		{Name: "red spider mite", Options: []string{"Abamectin 500ml/ha"}},
	},
	Diseases: []Treatment{
		{Name: "early blight", Options: []string{"Mancozeb 2kg/ha"}},
		{Name: "late blight", Options: []string{"Ridomil 2.5kg/ha"}},
		{Name: "bacterial wilt", Note: "Crop rotation, resistant varieties"},
	},
	Harvest: Harvest{
		Maturity:  "60-90 days from transplant",
		Frequency: "2-3 times per week",
		Yield:     "40-100 tons/ha",
	},
}

var potatoes = Crop{
	Planting: Planting{
		Season:   "February-March, August-September",
		Depth:    "10-15cm",
		Spacing:  "75cm rows, 30cm plants",
		SeedRate: "2-3 tons/ha",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound D 1000kg/ha",
		TopDressing: "AN 200kg/ha at hilling",
		Nutrients:   &Nutrients{N: 200, P: 100, K: 150},
	},
	Pests: []Treatment{
		{Name: "cutworm", Options: []string{"Carbaryl 2kg/ha"}},
		{Name: PestAphids, Options: []string{"Thiamethoxam 200g/ha"}},
		{Name: "leafminer", Options: []string{"Abamectin 500ml/ha"}},
	},
	Diseases: []Treatment{
		{Name: "late blight", Options: []string{"Ridomil 2.5kg/ha", "Mancozeb 2kg/ha"}},
		{Name: "blackleg", Note: "Certified seed, crop rotation"},
		{Name: "viral diseases", Note: "Control aphid vectors"},
	},
	Harvest: Harvest{
		Maturity:   "90-120 days",
		Indication: "Yellowing foliage, skin set",
		Yield:      "25-40 tons/ha",
	},
}

var beans = Crop{
	Planting: Planting{
		Season:   "November-December, February-March",
		Depth:    "3-5cm",
		Spacing:  "45cm rows, 10cm plants",
		SeedRate: "80-100kg/ha",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound D 150kg/ha",
		TopDressing: "Usually not required",
		Rhizobium:   "Inoculate seeds",
	},
	Pests: []Treatment{
		{Name: "bean stem maggot", Options: []string{"Imidacloprid seed treatment"}},
		{Name: PestAphids, Options: []string{"Dimethoate 400ml/ha"}},
		{Name: "bean beetle", Options: []string{"Carbaryl 1kg/ha"}},
	},
	Diseases: []Treatment{
		{Name: "rust", Options: []string{"Mancozeb 2kg/ha"}},
		{Name: "angular leaf spot", Options: []string{"Copper oxychloride 2.5kg/ha"}},
		{Name: "anthracnose", Note: "Clean seed, resistant varieties"},
	},
	Harvest: Harvest{
		Maturity:   "65-90 days",
		Indication: "Pods dry, rattle when shaken",
		Yield:      "0.8-2.5 tons/ha",
	},
}

var soyabeans = Crop{
	Planting: Planting{
		Season:      "November-December",
		Depth:       "3-4cm",
		Spacing:     "45cm rows, 5cm plants",
		SeedRate:    "80-100kg/ha",
		Inoculation: "Rhizobium required",
	},
	Fertilizer: Fertilizer{
		Basal:       "Compound D 100-150kg/ha",
		TopDressing: "Not required if inoculated",
		Nutrients:   &Nutrients{P: 30, K: 20},
	},
	Pests: []Treatment{
		{Name: "bollworm", Options: []string{"Deltamethrin 30ml/ha"}},
		{Name: PestAphids, Options: []string{"Dimethoate 400ml/ha"}},
	},
	Diseases: []Treatment{
		{Name: "rust", Options: []string{"Propiconazole 500ml/ha"}},
		{Name: "bacterial pustule", Note: "Resistant varieties"},
	},
	Harvest: Harvest{
		Maturity: "90-120 days",
		Moisture: "14-16% for harvest",
		Yield:    "1.5-3 tons/ha",
	},
}
