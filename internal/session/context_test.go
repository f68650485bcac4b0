package session

import (
	"reflect"
	"testing"
)

func TestUpdateFarmingType(t *testing.T) {
	tests := []struct {
		utterance string
		want      FarmingType
	}{
		{"which crop should I grow", FarmingCrops},
		{"when do I plant", FarmingCrops},
		{"my cattle are sick", FarmingLivestock},
		{"I keep livestock", FarmingLivestock},
		// The livestock rule runs after the crop rule, so it wins on ties.
		{"I plant maize and keep cattle", FarmingLivestock},
		{"hello", ""},
	}

	for _, tt := range tests {
		var c Context
		c.Update(tt.utterance)
		if c.FarmingType != tt.want {
			t.Errorf("Update(%q) farming type = %q, want %q", tt.utterance, c.FarmingType, tt.want)
		}
	}
}

func TestUpdateSpecificCrop(t *testing.T) {
	var c Context
	c.Update("I grow maize")
	if c.SpecificCrop != "maize" {
		t.Fatalf("specific crop = %q, want maize", c.SpecificCrop)
	}

	// A later crop mention overwrites the earlier one.
	c.Update("switching to tomato next season")
	if c.SpecificCrop != "tomato" {
		t.Errorf("specific crop = %q, want tomato", c.SpecificCrop)
	}

	// Within one utterance the last listed crop wins.
	var c2 Context
	c2.Update("rotate maize with soya")
	if c2.SpecificCrop != "soya" {
		t.Errorf("specific crop = %q, want soya", c2.SpecificCrop)
	}
}

func TestUpdateFarmSize(t *testing.T) {
	tests := []struct {
		utterance string
		size      float64
		unit      SizeUnit
	}{
		{"I have 5 hectares", 5, UnitHectare},
		{"a 3.5 hectare plot", 3.5, UnitHectare},
		{"about 10ha of land", 10, UnitHectare},
		{"2 acres behind the house", 2, UnitAcre},
		{"12 Hectares", 12, UnitHectare},
	}

	for _, tt := range tests {
		var c Context
		c.Update(tt.utterance)
		if c.FarmSize != tt.size {
			t.Errorf("Update(%q) farm size = %v, want %v", tt.utterance, c.FarmSize, tt.size)
		}
		if c.FarmSizeUnit != tt.unit {
			t.Errorf("Update(%q) unit = %q, want %q", tt.utterance, c.FarmSizeUnit, tt.unit)
		}
	}
}

func TestUpdateFarmSizePersists(t *testing.T) {
	var c Context
	c.Update("I have 5 hectares")
	c.Update("tell me about fertilizer")
	if c.FarmSize != 5 {
		t.Errorf("farm size = %v, want 5 after unrelated utterance", c.FarmSize)
	}

	// A new size overwrites the old one.
	c.Update("actually it is 8 hectares")
	if c.FarmSize != 8 {
		t.Errorf("farm size = %v, want 8", c.FarmSize)
	}
}

func TestUpdateIrrigationMonotonic(t *testing.T) {
	var c Context
	c.Update("I have drip irrigation")
	if !c.IrrigationAvailable {
		t.Fatal("irrigation should be set")
	}

	// Nothing unsets it.
	c.Update("no more watering questions")
	if !c.IrrigationAvailable {
		t.Error("irrigation flag should be sticky")
	}
}

func TestUpdateLivestockFocus(t *testing.T) {
	var c Context
	c.Update("starting a chicken project")
	if c.LivestockFocus != "poultry" {
		t.Errorf("livestock focus = %q, want poultry", c.LivestockFocus)
	}
}

func TestUpdateRecentTopics(t *testing.T) {
	var c Context
	c.Update("planting and fertilizer advice")
	want := []string{"planting", "fertilizer"}
	if !reflect.DeepEqual(c.RecentTopics, want) {
		t.Fatalf("recent topics = %v, want %v", c.RecentTopics, want)
	}

	// Repeats are not duplicated.
	c.Update("more fertilizer questions")
	if !reflect.DeepEqual(c.RecentTopics, want) {
		t.Errorf("recent topics = %v, want %v", c.RecentTopics, want)
	}
}

func TestUpdateRecentTopicsCapped(t *testing.T) {
	var c Context
	c.Update("planting fertilizer pest disease harvest market")
	if len(c.RecentTopics) != 5 {
		t.Fatalf("recent topics = %d, want 5", len(c.RecentTopics))
	}
	// The oldest tag falls off.
	want := []string{"fertilizer", "pest", "disease", "harvest", "market"}
	if !reflect.DeepEqual(c.RecentTopics, want) {
		t.Errorf("recent topics = %v, want %v", c.RecentTopics, want)
	}
}

func TestFarmSizeKnown(t *testing.T) {
	var c Context
	if c.FarmSizeKnown() {
		t.Error("zero context should not report a farm size")
	}
	c.FarmSize = 2
	if !c.FarmSizeKnown() {
		t.Error("farm size of 2 should be known")
	}
}

func TestUnitLabel(t *testing.T) {
	var c Context
	if got := c.UnitLabel(); got != "hectares" {
		t.Errorf("default unit label = %q, want hectares", got)
	}
	c.FarmSizeUnit = UnitAcre
	if got := c.UnitLabel(); got != "acre" {
		t.Errorf("unit label = %q, want acre", got)
	}
}
