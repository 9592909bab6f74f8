package scoring

import (
	"fmt"
	"math"

	"github.com/sc2coop/cevcalc/internal/models"
)

// RangeCurve selects the shape of the range-advantage factor
type RangeCurve string

const (
	// RangeCurveSqrt is sqrt(range / radius), the canonical curve
	RangeCurveSqrt RangeCurve = "sqrt"
	// RangeCurveLog2 is log2(1 + range / radius), kept for the v2.3 preset
	RangeCurveLog2 RangeCurve = "log2"
)

// FactorEntry is one row of a per-family factor table. Mode-qualified
// entries take priority over plain family entries.
type FactorEntry struct {
	Family string
	Mode   string // empty matches any mode
	Factor float64
}

// FactorTable is an explicit, inspectable lookup table from unit family
// (plus optional weapon mode) to a multiplier, with a documented default.
type FactorTable struct {
	Entries []FactorEntry
	Default float64
}

// Lookup resolves the factor for a family and weapon mode. Mode-qualified
// entries win over family-wide ones; unknown families get the default.
func (t FactorTable) Lookup(family, mode string) float64 {
	if mode != "" {
		for _, e := range t.Entries {
			if e.Family == family && e.Mode == mode {
				return e.Factor
			}
		}
	}
	for _, e := range t.Entries {
		if e.Family == family && e.Mode == "" {
			return e.Factor
		}
	}
	return t.Default
}

// OverkillStep is one row of the overkill penalty table
type OverkillStep struct {
	Threshold float64 // raw volley damage at or above which the penalty applies
	Penalty   float64
}

// Config holds every tunable constant of the scoring pipeline. Historical
// formula versions are expressed as presets over this one struct, never as
// separate code paths.
type Config struct {
	// DefaultMineralGasRate is the mineral value of one gas when the
	// commander does not carry its own rate.
	DefaultMineralGasRate float64

	// PopulationBaseValue is the mineral-equivalent value of one supply
	// of population infrastructure (rho).
	PopulationBaseValue float64

	// TaxMidpointSeconds and TaxSlope shape the logistic population
	// pressure curve lambda(t).
	TaxMidpointSeconds float64
	TaxSlope           float64

	// ReducedCapLambdaMax caps how far lambda may scale up for commanders
	// below the reference population cap.
	ReducedCapLambdaMax float64

	// FlatLambda, when positive, replaces the logistic curve with a fixed
	// population pressure (the v2.4 behavior).
	FlatLambda float64

	// ArmorConstant is the denominator constant in armor/(armor+k).
	ArmorConstant float64

	// ShieldFactor scales raw shield points before they are added to EHP.
	ShieldFactor float64

	// ShieldRegenRate (points/second) and CombatWindowSeconds bound the
	// in-combat shield regeneration credit. A zero window disables it.
	ShieldRegenRate     float64
	CombatWindowSeconds float64

	// Overkill is the penalty table over raw volley damage, ordered by
	// descending threshold with a final zero-threshold row.
	Overkill []OverkillStep

	// SplashFactors approximate area damage per unit family; applied only
	// to weapons with a splash descriptor.
	SplashFactors FactorTable

	// OperationFactors reward or penalize units by how demanding they are
	// to operate (omega).
	OperationFactors FactorTable

	RangeCurve       RangeCurve
	AirNominalRadius float64

	// ReferencePopulationCap anchors the population quality multiplier.
	ReferencePopulationCap int
}

// DefaultConfig returns the canonical pipeline constants
func DefaultConfig() Config {
	return Config{
		DefaultMineralGasRate:  2.5,
		PopulationBaseValue:    20,
		TaxMidpointSeconds:     300,
		TaxSlope:               0.00125,
		ReducedCapLambdaMax:    2.0,
		ArmorConstant:          10,
		ShieldFactor:           1.0,
		ShieldRegenRate:        2.0,
		CombatWindowSeconds:    15,
		Overkill:               DefaultOverkillTable(),
		SplashFactors:          DefaultSplashFactors(),
		OperationFactors:       DefaultOperationFactors(),
		RangeCurve:             RangeCurveSqrt,
		AirNominalRadius:       0.5,
		ReferencePopulationCap: 200,
	}
}

// DefaultOverkillTable returns the canonical overkill penalty rows
func DefaultOverkillTable() []OverkillStep {
	return []OverkillStep{
		{Threshold: 200, Penalty: 0.8},
		{Threshold: 150, Penalty: 0.85},
		{Threshold: 100, Penalty: 0.9},
		{Threshold: 0, Penalty: 1.0},
	}
}

// DefaultSplashFactors returns the canonical splash multipliers
func DefaultSplashFactors() FactorTable {
	return FactorTable{
		Entries: []FactorEntry{
			{Family: "SiegeTank", Factor: 1.25},
			{Family: "Liberator", Mode: "AA", Factor: 2.5},
			{Family: "Liberator", Mode: "AG", Factor: 1.0},
		},
		Default: 1.0,
	}
}

// DefaultOperationFactors returns the canonical omega multipliers
func DefaultOperationFactors() FactorTable {
	return FactorTable{
		Entries: []FactorEntry{
			{Family: "Wrathwalker", Factor: 1.1}, // fires while moving
			{Family: "SiegeTank", Factor: 0.8},   // siege transition
			{Family: "Impaler", Factor: 0.9},     // burrow transition
			{Family: "Liberator", Mode: "AG", Factor: 0.75},
		},
		Default: 1.0,
	}
}

// Lambda returns the population pressure weight at game time t for the
// given commander. The logistic curve saturates at 1.0 for commanders at
// the reference cap and proportionally higher for reduced caps, bounded
// by ReducedCapLambdaMax.
func (c Config) Lambda(t float64, commander *models.CommanderProfile) float64 {
	if c.FlatLambda > 0 {
		return c.FlatLambda
	}
	max := 1.0
	if commander != nil && commander.PopulationCap > 0 && commander.PopulationCap < c.ReferencePopulationCap {
		max = float64(c.ReferencePopulationCap) / float64(commander.PopulationCap)
		if max > c.ReducedCapLambdaMax {
			max = c.ReducedCapLambdaMax
		}
	}
	return max / (1 + math.Exp(-c.TaxSlope*(t-c.TaxMidpointSeconds)))
}

// OverkillPenalty resolves the penalty for a raw volley damage value,
// highest threshold first, 1.0 below the lowest row.
func (c Config) OverkillPenalty(rawVolley float64) float64 {
	for _, step := range c.Overkill {
		if rawVolley >= step.Threshold {
			return step.Penalty
		}
	}
	return 1.0
}

// Validate checks the constants against their documented domains
func (c Config) Validate() error {
	if c.DefaultMineralGasRate <= 0 {
		return fmt.Errorf("%w: mineral/gas rate %.2f must be positive", ErrInvalidConfig, c.DefaultMineralGasRate)
	}
	if c.PopulationBaseValue < 0 {
		return fmt.Errorf("%w: population base value %.2f must be non-negative", ErrInvalidConfig, c.PopulationBaseValue)
	}
	if c.ArmorConstant <= 0 {
		return fmt.Errorf("%w: armor constant %.2f must be positive", ErrInvalidConfig, c.ArmorConstant)
	}
	if c.ShieldFactor < 0 {
		return fmt.Errorf("%w: shield factor %.2f must be non-negative", ErrInvalidConfig, c.ShieldFactor)
	}
	if c.AirNominalRadius <= 0 {
		return fmt.Errorf("%w: air nominal radius %.2f must be positive", ErrInvalidConfig, c.AirNominalRadius)
	}
	if c.ReferencePopulationCap <= 0 {
		return fmt.Errorf("%w: reference population cap %d must be positive", ErrInvalidConfig, c.ReferencePopulationCap)
	}
	switch c.RangeCurve {
	case RangeCurveSqrt, RangeCurveLog2:
	default:
		return fmt.Errorf("%w: unknown range curve %q", ErrInvalidConfig, c.RangeCurve)
	}
	if len(c.Overkill) == 0 {
		return fmt.Errorf("%w: overkill table is empty", ErrInvalidConfig)
	}
	prev := math.Inf(1)
	for i, step := range c.Overkill {
		if step.Threshold >= prev {
			return fmt.Errorf("%w: overkill thresholds must strictly descend (row %d)", ErrInvalidConfig, i)
		}
		if step.Penalty <= 0 || step.Penalty > 1 {
			return fmt.Errorf("%w: overkill penalty %.2f at threshold %.0f outside (0, 1]", ErrInvalidConfig, step.Penalty, step.Threshold)
		}
		prev = step.Threshold
	}
	if last := c.Overkill[len(c.Overkill)-1]; last.Threshold != 0 {
		return fmt.Errorf("%w: overkill table must end with a zero-threshold row", ErrInvalidConfig)
	}
	return nil
}
