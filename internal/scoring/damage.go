package scoring

import "github.com/sc2coop/cevcalc/internal/models"

// DamageBreakdown carries the effective DPS and its terms
type DamageBreakdown struct {
	RawVolley       float64 // damage * strikes, before bonuses
	BonusDamage     float64 // attribute bonus * strikes for the scenario target
	Period          float64 // after any attack speed mastery
	SplashFactor    float64
	OverkillPenalty float64
	WeaponDPS       float64 // the multiplicative chain
	AbilityValue    float64 // flat additive contribution
	EffectiveDPS    float64
}

// EffectiveDPS converts a weapon profile into damage per second under the
// scenario. Attack speed mastery shrinks the period before the rate is
// taken; splash and overkill multiply the rate; the unit's ability value
// is added outside the chain. The overkill penalty keys off the raw volley
// damage since excess single-hit damage is wasted regardless of bonuses.
func EffectiveDPS(cfg Config, unit *models.UnitStats, weapon *models.WeaponProfile, commander *models.CommanderProfile, scenario models.ScoringScenario, mode string) DamageBreakdown {
	b := DamageBreakdown{
		RawVolley:    weapon.VolleyDamage(),
		Period:       weapon.Period,
		SplashFactor: 1.0,
		AbilityValue: unit.AbilityValue,
	}

	if scenario.TargetAttribute != "" {
		b.BonusDamage = weapon.BonusVs(scenario.TargetAttribute) * float64(weapon.Strikes)
	}

	if scenario.ApplyMastery && commander != nil && commander.Mastery.AttackSpeed > 0 {
		b.Period = weapon.Period / (1 + commander.Mastery.AttackSpeed)
	}

	if weapon.HasSplash() {
		b.SplashFactor = cfg.SplashFactors.Lookup(unit.Family, mode)
	}

	b.OverkillPenalty = cfg.OverkillPenalty(b.RawVolley)

	if b.Period > 0 {
		b.WeaponDPS = (b.RawVolley + b.BonusDamage) * b.SplashFactor * b.OverkillPenalty / b.Period
	}

	b.EffectiveDPS = b.WeaponDPS + b.AbilityValue
	return b
}
