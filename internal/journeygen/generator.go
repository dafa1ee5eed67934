// Package journeygen generates synthetic customer journeys and touch
// sequences for tests and local benchmarking.
package journeygen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mktlab/attrib/internal/domain/model"
)

// Default generation parameters.
const (
	defaultSeed       = 42
	maxConversion     = 500.0
	maxGapHours       = 72
	gclidProbability  = 0.4
	deviceProbability = 0.8
)

// Catalog values touches are drawn from.
var (
	sources   = []string{"google", "facebook", "newsletter", "partner", "direct"}
	media     = []string{"cpc", "social", "email", "referral", "organic"}
	types     = []string{"click", "impression", "visit"}
	campaigns = []string{"", "spring_sale", "brand_awareness", "retargeting"}
	countries = []string{"", "US", "DE", "GB", "FR"}
	devices   = []string{"desktop", "mobile", "tablet"}
)

// Generator produces synthetic journeys. The seed drives catalog and
// timing draws; touch and journey IDs stay random.
type Generator struct {
	rng  *rand.Rand
	base time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the seed for the catalog and timing draws.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible testing
	}
}

// WithBaseTime anchors the first touch of every journey.
func WithBaseTime(t time.Time) Option {
	return func(g *Generator) {
		if !t.IsZero() {
			g.base = t
		}
	}
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:  rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic seed for reproducible testing
		base: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Journey builds one journey with touchCount touches spread over random
// gaps of up to three days each. Converted journeys get a random positive
// conversion value.
func (g *Generator) Journey(converted bool, touchCount int) (model.CustomerJourney, []model.AttributionTouch) {
	journey := model.CustomerJourney{
		JourneyID:  uuid.NewString(),
		CustomerID: uuid.NewString(),
		Converted:  converted,
	}
	if converted {
		journey.ConversionValue = g.rng.Float64() * maxConversion
	}

	touches := make([]model.AttributionTouch, touchCount)
	ts := g.base
	for i := range touches {
		touches[i] = g.touch(ts)
		ts = ts.Add(time.Duration(g.rng.Intn(maxGapHours)+1) * time.Hour)
	}
	if touchCount > 0 {
		journey.JourneyLengthDays = touches[touchCount-1].Timestamp.Sub(touches[0].Timestamp).Hours() / 24
	}
	return journey, touches
}

// touch builds one touch at the given timestamp from the catalog values.
func (g *Generator) touch(ts time.Time) model.AttributionTouch {
	t := model.AttributionTouch{
		TouchID:      uuid.NewString(),
		Timestamp:    ts,
		Type:         types[g.rng.Intn(len(types))],
		Source:       sources[g.rng.Intn(len(sources))],
		Medium:       media[g.rng.Intn(len(media))],
		CampaignName: campaigns[g.rng.Intn(len(campaigns))],
		Country:      countries[g.rng.Intn(len(countries))],
	}
	if g.rng.Float64() < gclidProbability {
		t.GCLID = uuid.NewString()
	}
	if g.rng.Float64() < deviceProbability {
		t.DeviceCategory = devices[g.rng.Intn(len(devices))]
	}
	return t
}
