package knowledge

var cattle = Cattle{
	BeefBreeds:  []string{"Brahman", "Angus", "Hereford", "Mashona"},
	DairyBreeds: []string{"Holstein", "Jersey", "Guernsey", "Friesland"},
	Feeding: CattleFeeding{
		Roughage:    "10-12kg/day dry matter",
		Concentrate: "1kg per 2.5L milk produced",
		Water:       "40-60L/day",
		Minerals:    "Free choice mineral lick",
	},
	Health: HerdHealth{
		Vaccinations: []string{"FMD", "Anthrax", "Blackleg", "Lumpy skin"},
		Deworming:    "Every 3-4 months",
		TickControl:  "Weekly dipping/spraying",
	},
	Breeding: CattleBreeding{
		Maturity:  "18-24 months",
		Gestation: "283 days",
		Calving:   "Once per year ideal",
	},
}

var poultry = Poultry{
	LayerBreeds:      []string{"Hyline", "Lohmann", "Isa Brown"},
	BroilerBreeds:    []string{"Cobb", "Ross", "Hubbard"},
	IndigenousBreeds: []string{"Boschveld", "Road Runner"},
	Feeding: PoultryFeeding{
		Starter: "23% protein, 0-6 weeks",
		Grower:  "20% protein, 6-18 weeks",
		Layer:   "16% protein, 2.5-3% calcium",
		Broiler: "22% protein finisher",
	},
	Health: FlockHealth{
		Vaccinations: []string{"Newcastle", "Gumboro", "Fowl Pox"},
		Biosecurity:  "All-in all-out, footbaths",
		Mortality:    "Target <5%",
	},
	Production: PoultryProduction{
		Layers:   "280-320 eggs/year",
		Broilers: "35-42 days to 2kg",
		FCR:      "1.6-1.8 for broilers",
	},
}

var goats = Goats{
	Breeds: []string{"Boer", "Kalahari Red", "Mashona", "Matebele"},
	Feeding: GoatFeeding{
		Browse:     "60-70% of diet",
		Supplement: "200-300g/day concentrate",
		Water:      "4-8L/day",
	},
	Health: HerdHealth{
		Vaccinations: []string{"Pulpy kidney", "Tetanus"},
		Deworming:    "Strategic based on FEC",
		HoofCare:     "Trim every 3 months",
	},
	Production: GoatProduction{
		Kidding:   "1.5-2 kids per doe",
		Maturity:  "7-10 months",
		Gestation: "150 days",
	},
}

var pigs = Pigs{
	Breeds: []string{"Large White", "Landrace", "Duroc"},
	Feeding: PigFeeding{
		Creep:    "20% protein, 1-4 weeks",
		Weaner:   "18% protein, 4-10 weeks",
		Grower:   "16% protein, 10-16 weeks",
		Finisher: "14% protein, 16+ weeks",
	},
	Health: PigHealth{
		Vaccinations: []string{"Swine fever", "E.coli"},
		Parasites:    "Deworm every 3 months",
		Housing:      "0.6-1m² per pig",
	},
	Production: PigProduction{
		Litters: "2.2-2.4 per year",
		Piglets: "10-12 per litter",
		Market:  "5-6 months at 90kg",
	},
}
