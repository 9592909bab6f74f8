package scoring

import "github.com/sc2coop/cevcalc/internal/models"

// CostBreakdown carries the effective cost and the terms it was built from
type CostBreakdown struct {
	ResourceCost  float64 // minerals + rate * gas
	Lambda        float64 // population pressure at the scenario's game time
	PopulationTax float64 // lambda * population * rho, 0 for exempt commanders
	EffectiveCost float64
}

// EffectiveCost converts raw resource costs into a single mineral-equivalent
// scalar. Gas is weighted by the commander's exchange rate; population is
// taxed by the time-dependent pressure weight unless the commander is
// exempt from population costs.
func EffectiveCost(cfg Config, unit *models.UnitStats, commander *models.CommanderProfile, scenario models.ScoringScenario) CostBreakdown {
	rate := cfg.DefaultMineralGasRate
	if commander != nil && commander.MineralGasRate > 0 {
		rate = commander.MineralGasRate
	}

	b := CostBreakdown{
		ResourceCost: float64(unit.Minerals) + rate*float64(unit.Gas),
	}

	if commander == nil || !commander.PopulationTaxExempt {
		b.Lambda = cfg.Lambda(scenario.GameTime, commander)
		b.PopulationTax = b.Lambda * unit.Population * cfg.PopulationBaseValue
	}

	b.EffectiveCost = b.ResourceCost + b.PopulationTax
	return b
}
