// Package session owns per-conversation state: the inferred farm context and
// the bounded message history. One active request per session is assumed;
// stores serialize access where the backing medium requires it.
package session

// Role tags a turn in a session's history.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in the dialogue. The language-specific
// system prompt is not stored; it is prepended when the outbound request is
// built, so it can never be evicted by the history window.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// FarmingType is the coarse farming orientation inferred from a session.
type FarmingType string

const (
	FarmingCrops     FarmingType = "crops"
	FarmingLivestock FarmingType = "livestock"
	FarmingMixed     FarmingType = "mixed"
)

// SizeUnit is the unit a farm size was stated in.
type SizeUnit string

const (
	UnitHectare SizeUnit = "hectare"
	UnitAcre    SizeUnit = "acre"
)

// Context is the mutable record of facts inferred from a session's messages.
// Zero values mean "not yet mentioned".
type Context struct {
	FarmingType         FarmingType `json:"farming_type,omitempty"`
	SpecificCrop        string      `json:"specific_crop,omitempty"`
	LivestockFocus      string      `json:"livestock_focus,omitempty"`
	FarmSize            float64     `json:"farm_size,omitempty"`
	FarmSizeUnit        SizeUnit    `json:"farm_size_unit,omitempty"`
	IrrigationAvailable bool        `json:"irrigation_available,omitempty"`
	RecentTopics        []string    `json:"recent_topics,omitempty"`
}

// FarmSizeKnown reports whether a usable farm size has been captured.
func (c *Context) FarmSizeKnown() bool {
	return c.FarmSize > 0
}

// UnitLabel returns the display label for the farm size unit, defaulting to
// hectares when no unit was captured.
func (c *Context) UnitLabel() string {
	if c.FarmSizeUnit == "" {
		return "hectares"
	}
	return string(c.FarmSizeUnit)
}
