package scoring

import (
	"fmt"

	"github.com/sc2coop/cevcalc/internal/models"
)

// Components are the multiplicative pieces of a CEV score, reported so
// downstream consumers can audit and reconstruct the scalar.
type Components struct {
	EffectiveDPS  float64
	EffectiveHP   float64
	EffectiveCost float64

	Omega       float64
	RangeFactor float64
	Synergy     float64

	OverkillPenalty   float64
	SplashFactor      float64
	Lambda            float64
	PopulationQuality float64 // reference cap / commander cap
}

// Result is the structured outcome of one scoring call. The component
// breakdown is part of the contract, not debug output: benchmarking and
// reporting consume the pieces individually.
type Result struct {
	UnitID      string
	UnitName    string
	CommanderID string
	Scenario    string
	WeaponID    string
	WeaponMode  string

	CEV              float64
	CEVPerPopulation float64

	// Unbounded marks a degenerate (free) unit whose score has no finite
	// value. CEV fields are zero and must not be compared numerically.
	Unbounded bool

	Components    Components
	Cost          CostBreakdown
	Survivability SurvivabilityBreakdown
	Damage        DamageBreakdown
}

// Calculator scores units against one data set under one configuration.
// It keeps no per-call state; methods are safe for concurrent use.
type Calculator struct {
	Data   *models.DataSet
	Config Config
}

// NewCalculator validates the configuration and returns a calculator
func NewCalculator(data *models.DataSet, cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{Data: data, Config: cfg}, nil
}

// Evaluate scores the unit with the given ID under the scenario
func (c *Calculator) Evaluate(unitID string, scenario models.ScoringScenario) (*Result, error) {
	unit, ok := c.Data.Unit(unitID)
	if !ok {
		return nil, fmt.Errorf("%q: %w", unitID, ErrUnitNotFound)
	}
	return c.EvaluateStats(unit, scenario)
}

// EvaluateStats scores a unit value directly, resolving its weapon and
// commander from the calculator's data set. Used for candidates that are
// not part of the reference roster.
func (c *Calculator) EvaluateStats(unit *models.UnitStats, scenario models.ScoringScenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}

	commander, ok := c.Data.Commander(unit.Commander)
	if !ok {
		return nil, fmt.Errorf("%q (unit %q): %w", unit.Commander, unit.ID, ErrCommanderNotFound)
	}
	if commander.PopulationCap <= 0 {
		return nil, fmt.Errorf("%w: commander %q population cap %d must be positive",
			ErrInvalidConfig, commander.ID, commander.PopulationCap)
	}

	weapon, mode, err := c.selectWeapon(unit, scenario)
	if err != nil {
		return nil, err
	}

	synergy := scenario.Synergy
	if synergy == 0 {
		synergy = 1.0
	}

	cost := EffectiveCost(c.Config, unit, commander, scenario)
	surv := EffectiveHP(c.Config, unit, commander, scenario.ApplyMastery)
	dmg := EffectiveDPS(c.Config, unit, weapon, commander, scenario, mode)
	omega := OperationFactor(c.Config, unit, mode)
	frange := RangeFactor(c.Config, unit, weapon)
	mu := float64(c.Config.ReferencePopulationCap) / float64(commander.PopulationCap)

	res := &Result{
		UnitID:      unit.ID,
		UnitName:    unit.Name,
		CommanderID: commander.ID,
		Scenario:    scenario.Name,
		WeaponID:    weapon.ID,
		WeaponMode:  mode,
		Components: Components{
			EffectiveDPS:      dmg.EffectiveDPS,
			EffectiveHP:       surv.EffectiveHP,
			EffectiveCost:     cost.EffectiveCost,
			Omega:             omega,
			RangeFactor:       frange,
			Synergy:           synergy,
			OverkillPenalty:   dmg.OverkillPenalty,
			SplashFactor:      dmg.SplashFactor,
			Lambda:            cost.Lambda,
			PopulationQuality: mu,
		},
		Cost:          cost,
		Survivability: surv,
		Damage:        dmg,
	}

	if cost.EffectiveCost <= 0 {
		res.Unbounded = true
		return res, nil
	}

	res.CEV = dmg.EffectiveDPS * surv.EffectiveHP * omega * frange * synergy / cost.EffectiveCost

	if effPop := unit.Population * mu; effPop > 0 {
		res.CEVPerPopulation = res.CEV / effPop
	}

	return res, nil
}

// selectWeapon resolves the weapon profile and mode for the scenario. An
// explicit mode must exist and serve the requested plane; otherwise the
// default weapon is preferred and the first weapon able to hit the plane
// is taken.
func (c *Calculator) selectWeapon(unit *models.UnitStats, scenario models.ScoringScenario) (*models.WeaponProfile, string, error) {
	if len(unit.Weapons) == 0 {
		return nil, "", fmt.Errorf("unit %q has no weapons: %w", unit.ID, ErrNoWeapon)
	}

	if scenario.WeaponMode != "" {
		ref, ok := unit.WeaponRefFor(scenario.WeaponMode)
		if !ok {
			return nil, "", fmt.Errorf("unit %q has no weapon mode %q: %w", unit.ID, scenario.WeaponMode, ErrNoWeapon)
		}
		weapon, ok := c.Data.Weapon(ref.WeaponID)
		if !ok {
			return nil, "", fmt.Errorf("%q (unit %q): %w", ref.WeaponID, unit.ID, ErrWeaponNotFound)
		}
		if !weapon.Targets.Matches(scenario.TargetPlane) {
			return nil, "", fmt.Errorf("weapon mode %q of unit %q cannot target %s: %w",
				scenario.WeaponMode, unit.ID, scenario.TargetPlane, ErrNoWeapon)
		}
		return weapon, ref.Mode, nil
	}

	ordered := make([]models.WeaponRef, 0, len(unit.Weapons))
	if def, ok := unit.WeaponRefFor(""); ok {
		ordered = append(ordered, def)
	}
	for _, ref := range unit.Weapons {
		if len(ordered) > 0 && ref.WeaponID == ordered[0].WeaponID && ref.Mode == ordered[0].Mode {
			continue
		}
		ordered = append(ordered, ref)
	}

	for _, ref := range ordered {
		weapon, ok := c.Data.Weapon(ref.WeaponID)
		if !ok {
			return nil, "", fmt.Errorf("%q (unit %q): %w", ref.WeaponID, unit.ID, ErrWeaponNotFound)
		}
		if weapon.Targets.Matches(scenario.TargetPlane) {
			return weapon, ref.Mode, nil
		}
	}
	return nil, "", fmt.Errorf("unit %q has no weapon targeting %s: %w", unit.ID, scenario.TargetPlane, ErrNoWeapon)
}

func validateScenario(s models.ScoringScenario) error {
	if s.GameTime < 0 {
		return fmt.Errorf("%w: game time %.1f must be non-negative", ErrInvalidScenario, s.GameTime)
	}
	if s.Synergy != 0 && s.Synergy < 1 {
		return fmt.Errorf("%w: synergy %.2f must be at least 1.0", ErrInvalidScenario, s.Synergy)
	}
	switch s.TargetPlane {
	case "", models.TargetGround, models.TargetAir, models.TargetBoth:
	default:
		return fmt.Errorf("%w: unknown target plane %q", ErrInvalidScenario, s.TargetPlane)
	}
	return nil
}
