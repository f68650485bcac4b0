package knowledge

import "fmt"

// Base is the complete agricultural reference tree. It is assembled once by
// Load and treated as read-only afterwards.
type Base struct {
	Crops struct {
		Maize     Crop
		Wheat     Crop
		Tomatoes  Crop
		Potatoes  Crop
		Beans     Crop
		Soyabeans Crop
	}
	Livestock struct {
		Cattle  Cattle
		Poultry Poultry
		Goats   Goats
		Pigs    Pigs
	}
	Horticulture   Horticulture
	SoilAndWater   SoilAndWater
	FarmManagement FarmManagement
}

// Load assembles the reference tables and validates their structural
// invariants. An error here means the compiled-in data is incomplete, so
// callers treat it as fatal at startup.
func Load() (*Base, error) {
	b := &Base{
		Horticulture:   horticulture,
		SoilAndWater:   soilAndWater,
		FarmManagement: farmManagement,
	}
	b.Crops.Maize = maize
	b.Crops.Wheat = wheat
	b.Crops.Tomatoes = tomatoes
	b.Crops.Potatoes = potatoes
	b.Crops.Beans = beans
	b.Crops.Soyabeans = soyabeans
	b.Livestock.Cattle = cattle
	b.Livestock.Poultry = poultry
	b.Livestock.Goats = goats
	b.Livestock.Pigs = pigs

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// MustLoad is Load for program initialisation paths where incomplete
// reference data is unrecoverable.
func MustLoad() *Base {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Base) validate() error {
	crops := map[string]*Crop{
		"maize":     &b.Crops.Maize,
		"wheat":     &b.Crops.Wheat,
		"tomatoes":  &b.Crops.Tomatoes,
		"potatoes":  &b.Crops.Potatoes,
		"beans":     &b.Crops.Beans,
		"soyabeans": &b.Crops.Soyabeans,
	}
	for name, c := range crops {
		if c.Planting.Season == "" {
			return fmt.Errorf("crop %s: missing planting season", name)
		}
		if c.Harvest.Maturity == "" || c.Harvest.Yield == "" {
			return fmt.Errorf("crop %s: missing harvest data", name)
		}
	}

	// The maize composers look these up by name.
	for _, pest := range []string{PestFallArmyworm, PestStalkBorer, PestAphids} {
		t := b.Crops.Maize.Pest(pest)
		if t == nil || len(t.Options) == 0 {
			return fmt.Errorf("crop maize: missing %s treatments", pest)
		}
	}

	if b.Livestock.Cattle.Feeding == (CattleFeeding{}) || len(b.Livestock.Cattle.Health.Vaccinations) == 0 {
		return fmt.Errorf("livestock cattle: missing feeding or health data")
	}
	if b.Livestock.Poultry.Feeding == (PoultryFeeding{}) || len(b.Livestock.Poultry.Health.Vaccinations) == 0 {
		return fmt.Errorf("livestock poultry: missing feeding or health data")
	}
	if b.Livestock.Goats.Feeding == (GoatFeeding{}) || len(b.Livestock.Goats.Health.Vaccinations) == 0 {
		return fmt.Errorf("livestock goats: missing feeding or health data")
	}
	if b.Livestock.Pigs.Feeding == (PigFeeding{}) || len(b.Livestock.Pigs.Health.Vaccinations) == 0 {
		return fmt.Errorf("livestock pigs: missing feeding or health data")
	}

	return nil
}
