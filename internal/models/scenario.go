package models

import "fmt"

// ScoringScenario holds the parameters of one scoring run. It is built per
// call and never stored on a unit.
type ScoringScenario struct {
	Name string

	// GameTime in seconds drives the population-pressure weighting.
	GameTime float64

	// TargetAttribute selects which bonus-damage entry applies. Empty
	// means no attribute matchup.
	TargetAttribute UnitAttribute

	// TargetPlane restricts weapon selection to ground or air targets.
	// Empty means any plane.
	TargetPlane TargetFilter

	ApplyMastery bool

	// WeaponMode picks one of the unit's weapon modes. Empty selects the
	// default weapon.
	WeaponMode string

	// Synergy is an army-composition multiplier, at least 1.0.
	Synergy float64
}

// midGameSeconds is the game time at which the population-pressure curve
// sits near its midpoint; shared by all named scenarios.
const midGameSeconds = 600

// StandardScenario scores the default weapon against a generic target
func StandardScenario() ScoringScenario {
	return ScoringScenario{
		Name:         "standard",
		GameTime:     midGameSeconds,
		ApplyMastery: true,
		Synergy:      1.0,
	}
}

// ScenarioNames lists the named scenarios in deterministic order
func ScenarioNames() []string {
	return []string{"standard", "vs_ground", "vs_air", "vs_light", "vs_armored", "vs_structure"}
}

// ScenarioByName resolves a named scenario from the benchmark matrix
func ScenarioByName(name string) (ScoringScenario, error) {
	s := StandardScenario()
	s.Name = name
	switch name {
	case "standard":
	case "vs_ground":
		s.TargetPlane = TargetGround
	case "vs_air":
		s.TargetPlane = TargetAir
	case "vs_light":
		s.TargetPlane = TargetGround
		s.TargetAttribute = Light
	case "vs_armored":
		s.TargetPlane = TargetGround
		s.TargetAttribute = Armored
	case "vs_structure":
		s.TargetPlane = TargetGround
		s.TargetAttribute = Structure
	default:
		return ScoringScenario{}, fmt.Errorf("unknown scenario %q", name)
	}
	return s, nil
}
