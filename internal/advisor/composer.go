package advisor

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mudhumeni-ai/server/internal/knowledge"
	"github.com/mudhumeni-ai/server/internal/session"
)

// Advice is a composed advisory answer: markdown text plus hand-authored
// follow-up questions for the UI to offer.
type Advice struct {
	Text      string
	FollowUps []string
}

// Composer renders structured advisory answers from the knowledge base,
// personalised with whatever context the session has accumulated.
type Composer struct {
	kb  *knowledge.Base
	now func() time.Time // swapped in tests for the seasonal calendar
}

// NewComposer creates a composer over the given knowledge base.
func NewComposer(kb *knowledge.Base) *Composer {
	return &Composer{kb: kb, now: time.Now}
}

// Compose renders the advisory answer for a classified topic. The utterance
// is re-examined for the sub-intent (planting vs fertilizer vs pest and so
// on); the context supplies farm-size scaling.
func (c *Composer) Compose(topic Topic, utterance string, sc *session.Context) Advice {
	input := strings.ToLower(utterance)
	if sc == nil {
		sc = &session.Context{}
	}

	switch topic {
	case TopicMaize:
		return c.maize(input, sc)
	case TopicTomato:
		return c.tomato(input, sc)
	case TopicPotato:
		return c.potato()
	case TopicWheat:
		return c.wheat()
	case TopicLegume:
		return c.legume()
	case TopicCattle:
		return c.cattle(input)
	case TopicPoultry:
		return c.poultry(input)
	case TopicGoat:
		return c.goat()
	case TopicPig:
		return c.pig()
	case TopicSoil:
		return c.soil()
	case TopicIrrigation:
		return c.irrigation()
	case TopicOrganic:
		return c.organic()
	case TopicMarket:
		return c.market()
	case TopicSeasonal:
		return c.seasonal()
	default:
		return c.generalMenu()
	}
}

// formatQuantity renders a per-hectare rate scaled by farm size, rounded to
// whole units with ties rounding up (12.5 -> "13").
func formatQuantity(farmSize, ratePerHectare float64) string {
	return strconv.FormatFloat(math.Floor(farmSize*ratePerHectare+0.5), 'f', 0, 64)
}

// formatSize renders a farm size the way the farmer stated it (no trailing
// zeros).
func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
