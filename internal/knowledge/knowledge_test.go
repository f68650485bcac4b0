package knowledge

import "testing"

func TestLoad(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b.Crops.Maize.Planting.Season != "October-December (main season)" {
		t.Errorf("maize season = %q", b.Crops.Maize.Planting.Season)
	}
	if b.Crops.Maize.Planting.SeedRate != "25kg/ha" {
		t.Errorf("maize seed rate = %q", b.Crops.Maize.Planting.SeedRate)
	}
	if n := b.Crops.Maize.Fertilizer.Nutrients; n == nil || n.N != 166 {
		t.Errorf("maize nitrogen = %+v, want 166", n)
	}
	if b.Crops.Wheat.Planting.Season == "" {
		t.Error("wheat season missing")
	}
	if len(b.Livestock.Cattle.Health.Vaccinations) == 0 {
		t.Error("cattle vaccinations missing")
	}
	if len(b.SoilAndWater.Irrigation.Types) == 0 {
		t.Error("irrigation types missing")
	}
}

func TestPestLookup(t *testing.T) {
	b := MustLoad()

	for _, name := range []string{PestFallArmyworm, PestStalkBorer, PestAphids} {
		tr := b.Crops.Maize.Pest(name)
		if tr == nil {
			t.Errorf("maize pest %q not found", name)
			continue
		}
		if len(tr.Options) == 0 {
			t.Errorf("maize pest %q has no treatment options", name)
		}
	}

	if tr := b.Crops.Maize.Pest("locust"); tr != nil {
		t.Errorf("unknown pest lookup = %+v, want nil", tr)
	}
}

func TestIrrigationEfficiencyWithinTypes(t *testing.T) {
	b := MustLoad()

	// Efficiency figures pair positionally with the leading types; trailing
	// types without a figure render as "Variable".
	ir := b.SoilAndWater.Irrigation
	if len(ir.Efficiency) == 0 || len(ir.Efficiency) > len(ir.Types) {
		t.Errorf("irrigation efficiency entries = %d, types = %d; figures must pair with leading types",
			len(ir.Efficiency), len(ir.Types))
	}
}
