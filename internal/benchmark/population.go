// Package benchmark contextualizes CEV scores against a reference
// population of already-scored units: percentile ranks, nearest-neighbor
// similarity and a balance classification.
package benchmark

import (
	"errors"
	"fmt"
	"math"

	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

var (
	// ErrEmptyPopulation is returned when a population would hold no entries
	ErrEmptyPopulation = errors.New("empty benchmark population")

	// ErrUnboundedScore is returned when a degenerate (free) unit is offered
	// as a benchmark candidate; its score has no finite value to rank.
	ErrUnboundedScore = errors.New("unbounded score cannot be benchmarked")

	// ErrDegeneratePopulation is returned when a classification needs a
	// spread the population does not have (zero variance).
	ErrDegeneratePopulation = errors.New("population has zero cev variance")
)

// Entry is one scored unit inside a population: the feature vector the
// benchmark engine works over.
type Entry struct {
	UnitID      string
	UnitName    string
	CommanderID string

	CEV              float64
	CEVPerPopulation float64
	EffectiveDPS     float64
	EffectiveHP      float64
	EffectiveCost    float64
}

// EntryFromResult projects a scoring result onto the benchmark features
func EntryFromResult(r *scoring.Result) Entry {
	return Entry{
		UnitID:           r.UnitID,
		UnitName:         r.UnitName,
		CommanderID:      r.CommanderID,
		CEV:              r.CEV,
		CEVPerPopulation: r.CEVPerPopulation,
		EffectiveDPS:     r.Components.EffectiveDPS,
		EffectiveHP:      r.Components.EffectiveHP,
		EffectiveCost:    r.Components.EffectiveCost,
	}
}

// Population is an immutable reference set of scored units. Build a new
// one and swap it in when the reference roster changes; never mutate an
// existing population mid-session.
type Population struct {
	entries []Entry
	mean    float64
	std     float64 // population standard deviation
}

// NewPopulation builds a population from scored entries. An empty entry
// set is rejected here so every later query can rely on a non-empty
// reference.
func NewPopulation(entries []Entry) (*Population, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPopulation
	}
	p := &Population{entries: make([]Entry, len(entries))}
	copy(p.entries, entries)

	var sum float64
	for _, e := range p.entries {
		sum += e.CEV
	}
	p.mean = sum / float64(len(p.entries))

	var sq float64
	for _, e := range p.entries {
		d := e.CEV - p.mean
		sq += d * d
	}
	p.std = math.Sqrt(sq / float64(len(p.entries)))

	return p, nil
}

// Size returns the number of entries
func (p *Population) Size() int {
	return len(p.entries)
}

// Entries returns a copy of the population entries
func (p *Population) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// MeanCEV returns the population mean CEV
func (p *Population) MeanCEV() float64 {
	return p.mean
}

// StdCEV returns the population standard deviation of CEV
func (p *Population) StdCEV() float64 {
	return p.std
}

// Skip records a roster unit left out of a batch run and why
type Skip struct {
	UnitID string
	Reason string
}

// ScoreRoster scores every unit of the calculator's data set under the
// scenario. Units the scenario cannot serve (no weapon for the requested
// plane or mode) and degenerate free units are skipped with a reason;
// any other error aborts the batch.
func ScoreRoster(calc *scoring.Calculator, scenario models.ScoringScenario) ([]*scoring.Result, []Skip, error) {
	var results []*scoring.Result
	var skipped []Skip
	for _, unit := range calc.Data.Units {
		res, err := calc.Evaluate(unit.ID, scenario)
		if err != nil {
			if errors.Is(err, scoring.ErrNoWeapon) {
				skipped = append(skipped, Skip{UnitID: unit.ID, Reason: "no weapon for scenario"})
				continue
			}
			return nil, nil, fmt.Errorf("scoring %q: %w", unit.ID, err)
		}
		if res.Unbounded {
			skipped = append(skipped, Skip{UnitID: unit.ID, Reason: "unbounded score (free unit)"})
			continue
		}
		results = append(results, res)
	}
	return results, skipped, nil
}

// BuildPopulation scores the calculator's roster and builds the reference
// population from it
func BuildPopulation(calc *scoring.Calculator, scenario models.ScoringScenario) (*Population, []Skip, error) {
	results, skipped, err := ScoreRoster(calc, scenario)
	if err != nil {
		return nil, nil, err
	}
	entries := make([]Entry, 0, len(results))
	for _, res := range results {
		entries = append(entries, EntryFromResult(res))
	}
	pop, err := NewPopulation(entries)
	if err != nil {
		return nil, nil, err
	}
	return pop, skipped, nil
}
