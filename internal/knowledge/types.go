// Package knowledge holds the static agricultural reference data the advisor
// answers from when the remote model is unavailable. The tables are declared
// at compile time, validated once at startup, and never mutated.
package knowledge

// Nutrients is a per-hectare N/P/K requirement in kilograms.
type Nutrients struct {
	N int
	P int
	K int
}

// Planting describes how and when a crop is established. Fields that do not
// apply to a crop are left empty and omitted by the composer.
type Planting struct {
	Season      string
	Depth       string
	Spacing     string
	Population  string
	SeedRate    string
	SeedlingAge string
	Inoculation string
}

// Fertilizer describes a crop's fertilization program.
type Fertilizer struct {
	Basal       string
	TopDressing string
	Foliar      string
	Rhizobium   string
	Nutrients   *Nutrients
}

// Treatment pairs a pest or disease with its recommended control options.
// Options holds product rates; Note holds a cultural control when no product
// rate applies.
type Treatment struct {
	Name    string
	Options []string
	Note    string
}

// Harvest describes maturity and yield expectations for a crop.
type Harvest struct {
	Maturity   string
	Moisture   string
	Frequency  string
	Indication string
	Yield      string
}

// Crop is the full reference profile for one crop subject.
type Crop struct {
	Planting   Planting
	Fertilizer Fertilizer
	Pests      []Treatment
	Diseases   []Treatment
	Harvest    Harvest
}

// Pest returns the treatment entry with the given name, or nil.
func (c *Crop) Pest(name string) *Treatment {
	for i := range c.Pests {
		if c.Pests[i].Name == name {
			return &c.Pests[i]
		}
	}
	return nil
}

// Cattle reference data.
type Cattle struct {
	BeefBreeds  []string
	DairyBreeds []string
	Feeding     CattleFeeding
	Health      HerdHealth
	Breeding    CattleBreeding
}

type CattleFeeding struct {
	Roughage    string
	Concentrate string
	Water       string
	Minerals    string
}

// HerdHealth is the shared vaccination/parasite schedule shape for ruminants.
type HerdHealth struct {
	Vaccinations []string
	Deworming    string
	TickControl  string
	HoofCare     string
}

type CattleBreeding struct {
	Maturity  string
	Gestation string
	Calving   string
}

// Poultry reference data.
type Poultry struct {
	LayerBreeds      []string
	BroilerBreeds    []string
	IndigenousBreeds []string
	Feeding          PoultryFeeding
	Health           FlockHealth
	Production       PoultryProduction
}

type PoultryFeeding struct {
	Starter string
	Grower  string
	Layer   string
	Broiler string
}

type FlockHealth struct {
	Vaccinations []string
	Biosecurity  string
	Mortality    string
}

type PoultryProduction struct {
	Layers   string
	Broilers string
	FCR      string
}

// Goats reference data.
type Goats struct {
	Breeds     []string
	Feeding    GoatFeeding
	Health     HerdHealth
	Production GoatProduction
}

type GoatFeeding struct {
	Browse     string
	Supplement string
	Water      string
}

type GoatProduction struct {
	Kidding   string
	Maturity  string
	Gestation string
}

// Pigs reference data.
type Pigs struct {
	Breeds     []string
	Feeding    PigFeeding
	Health     PigHealth
	Production PigProduction
}

type PigFeeding struct {
	Creep    string
	Weaner   string
	Grower   string
	Finisher string
}

type PigHealth struct {
	Vaccinations []string
	Parasites    string
	Housing      string
}

type PigProduction struct {
	Litters string
	Piglets string
	Market  string
}

// Horticulture reference data.
type Horticulture struct {
	Vegetables VegetableGroups
	Fruits     FruitGroups
	Management HortManagement
}

type VegetableGroups struct {
	Leafy    []string
	Fruiting []string
	Root     []string
	Bulb     []string
}

type FruitGroups struct {
	Citrus    []string
	Tropical  []string
	Deciduous []string
}

type HortManagement struct {
	Irrigation  string
	Mulching    string
	Pruning     string
	PestControl string
}

// SoilAndWater reference data.
type SoilAndWater struct {
	Testing      SoilTesting
	Correction   SoilCorrection
	Irrigation   IrrigationGuide
	Conservation Conservation
}

type SoilTesting struct {
	Frequency  string
	Parameters []string
	Sampling   string
}

type SoilCorrection struct {
	Acidic   string
	Alkaline string
	Organic  string
}

// IrrigationGuide lists system types alongside their field efficiency.
// Efficiency is positional: Efficiency[i] describes Types[i]; types beyond
// the efficiency list have no measured figure.
type IrrigationGuide struct {
	Types      []string
	Efficiency []string
	Scheduling string
}

type Conservation struct {
	Practices       []string
	ErosionControl  string
	WaterHarvesting string
}

// FarmManagement reference data.
type FarmManagement struct {
	Planning      Planning
	Economics     Economics
	Certification Certification
}

type Planning struct {
	Budgeting     string
	RecordKeeping string
	Marketing     string
}

type Economics struct {
	GrossMargin string
	Breakeven   string
	ROI         string
}

type Certification struct {
	Organic   string
	GAP       string
	FairTrade string
}
