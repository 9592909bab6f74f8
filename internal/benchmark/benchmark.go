package benchmark

import (
	"fmt"
	"math"
	"sort"

	"github.com/sc2coop/cevcalc/internal/scoring"
)

// DefaultNeighbors is the neighbor count used when a query asks for k <= 0
const DefaultNeighbors = 5

// Metric selects which population feature a percentile rank is taken over
type Metric string

const (
	MetricCEV Metric = "cev"
	MetricDPS Metric = "effective_dps"
	MetricEHP Metric = "effective_hp"
)

func (m Metric) extract(e Entry) (float64, error) {
	switch m {
	case MetricCEV:
		return e.CEV, nil
	case MetricDPS:
		return e.EffectiveDPS, nil
	case MetricEHP:
		return e.EffectiveHP, nil
	default:
		return 0, fmt.Errorf("unknown benchmark metric %q", string(m))
	}
}

// Percentile returns the fraction of population entries strictly below
// value, scaled to 0..100. A candidate below every entry scores 0, above
// every entry 100.
func (p *Population) Percentile(metric Metric, value float64) (float64, error) {
	below := 0
	for _, e := range p.entries {
		v, err := metric.extract(e)
		if err != nil {
			return 0, err
		}
		if v < value {
			below++
		}
	}
	return float64(below) / float64(len(p.entries)) * 100, nil
}

// Neighbor pairs a population entry with its feature-space distance to a
// candidate
type Neighbor struct {
	Entry
	Distance float64
}

// NearestNeighbors returns the k population entries closest to the
// candidate by Euclidean distance over (cev, dps, ehp, cost), nearest
// first. Ties are broken by unit ID so the ordering is reproducible.
func (p *Population) NearestNeighbors(candidate Entry, k int) []Neighbor {
	if k <= 0 {
		k = DefaultNeighbors
	}
	neighbors := make([]Neighbor, 0, len(p.entries))
	for _, e := range p.entries {
		dc := e.CEV - candidate.CEV
		dd := e.EffectiveDPS - candidate.EffectiveDPS
		dh := e.EffectiveHP - candidate.EffectiveHP
		dk := e.EffectiveCost - candidate.EffectiveCost
		neighbors = append(neighbors, Neighbor{
			Entry:    e,
			Distance: math.Sqrt(dc*dc + dd*dd + dh*dh + dk*dk),
		})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].UnitID < neighbors[j].UnitID
	})
	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k]
}

// BalanceClass buckets a candidate by how many population standard
// deviations its CEV sits from the population mean.
type BalanceClass string

const (
	ClassBalanced       BalanceClass = "balanced"
	ClassSlightlyStrong BalanceClass = "slightly_strong"
	ClassOverpowered    BalanceClass = "overpowered"
	ClassSlightlyWeak   BalanceClass = "slightly_weak"
	ClassUnderpowered   BalanceClass = "underpowered"
)

// Classify maps a deviation in population standard deviations to a
// balance class
func Classify(deviation float64) BalanceClass {
	switch {
	case deviation >= 2:
		return ClassOverpowered
	case deviation >= 1:
		return ClassSlightlyStrong
	case deviation <= -2:
		return ClassUnderpowered
	case deviation <= -1:
		return ClassSlightlyWeak
	default:
		return ClassBalanced
	}
}

// RecommendationFor returns the tuning guidance attached to a balance class
func RecommendationFor(class BalanceClass) string {
	switch class {
	case ClassOverpowered:
		return "Far above the population band; needs a significant nerf before release."
	case ClassSlightlyStrong:
		return "Above the population band; consider a small cost increase or damage trim."
	case ClassSlightlyWeak:
		return "Below the population band; consider a small buff or cost decrease."
	case ClassUnderpowered:
		return "Far below the population band; needs a significant buff to be viable."
	default:
		return "Numbers are in line with the population; no adjustment needed."
	}
}

// Assessment is the balance verdict for one candidate CEV score
type Assessment struct {
	Deviation      float64
	Class          BalanceClass
	Recommendation string
	MeanCEV        float64
	StdCEV         float64
}

// AssessBalance classifies a candidate CEV against the population
// distribution. A population with zero variance cannot place a candidate
// that differs from its mean and is rejected.
func (p *Population) AssessBalance(cev float64) (Assessment, error) {
	var deviation float64
	if p.std == 0 {
		if cev != p.mean {
			return Assessment{}, fmt.Errorf("classifying cev %.4f: %w", cev, ErrDegeneratePopulation)
		}
	} else {
		deviation = (cev - p.mean) / p.std
	}
	class := Classify(deviation)
	return Assessment{
		Deviation:      deviation,
		Class:          class,
		Recommendation: RecommendationFor(class),
		MeanCEV:        p.mean,
		StdCEV:         p.std,
	}, nil
}

// Percentiles holds a candidate's rank on each benchmark metric
type Percentiles struct {
	CEV float64
	DPS float64
	EHP float64
}

// Evaluation is the full benchmark report for one candidate
type Evaluation struct {
	Candidate   Entry
	Percentiles Percentiles
	Neighbors   []Neighbor
	Assessment  Assessment
}

// Evaluate benchmarks a scored candidate against the population:
// percentile ranks, nearest comparable units and a balance verdict.
// Unbounded candidates are rejected; they have no finite rank.
func (p *Population) Evaluate(candidate *scoring.Result, k int) (*Evaluation, error) {
	if candidate.Unbounded {
		return nil, fmt.Errorf("candidate %q: %w", candidate.UnitID, ErrUnboundedScore)
	}
	entry := EntryFromResult(candidate)

	var pct Percentiles
	var err error
	if pct.CEV, err = p.Percentile(MetricCEV, entry.CEV); err != nil {
		return nil, err
	}
	if pct.DPS, err = p.Percentile(MetricDPS, entry.EffectiveDPS); err != nil {
		return nil, err
	}
	if pct.EHP, err = p.Percentile(MetricEHP, entry.EffectiveHP); err != nil {
		return nil, err
	}

	assessment, err := p.AssessBalance(entry.CEV)
	if err != nil {
		return nil, err
	}

	return &Evaluation{
		Candidate:   entry,
		Percentiles: pct,
		Neighbors:   p.NearestNeighbors(entry, k),
		Assessment:  assessment,
	}, nil
}
