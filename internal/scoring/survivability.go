package scoring

import "github.com/sc2coop/cevcalc/internal/models"

// SurvivabilityBreakdown carries the effective HP and its terms
type SurvivabilityBreakdown struct {
	BaseHP      float64 // after any mastery HP bonus
	ArmoredHP   float64 // base HP scaled by the armor reduction factor
	ShieldValue float64 // shields do not benefit from armor
	RegenCredit float64 // in-combat shield regeneration over the window
	EffectiveHP float64
}

// EffectiveHP converts hit points, armor and shields into one scalar.
// Armor of value a absorbs the fraction a/(a+k) of incoming damage, so HP
// scales by the reciprocal of what gets through. Shields are added on top
// and, when present, earn a flat regeneration credit over the configured
// combat window.
func EffectiveHP(cfg Config, unit *models.UnitStats, commander *models.CommanderProfile, applyMastery bool) SurvivabilityBreakdown {
	hp := unit.HP
	if applyMastery && commander != nil {
		hp *= 1 + commander.Mastery.HPBonusFor(unit)
	}

	reduction := unit.Armor / (unit.Armor + cfg.ArmorConstant)

	b := SurvivabilityBreakdown{
		BaseHP:      hp,
		ArmoredHP:   hp / (1 - reduction),
		ShieldValue: unit.Shields * cfg.ShieldFactor,
	}

	if unit.Shields > 0 && cfg.CombatWindowSeconds > 0 {
		rate := cfg.ShieldRegenRate
		if applyMastery && commander != nil {
			rate *= 1 + commander.Mastery.ShieldRegen
		}
		b.RegenCredit = rate * cfg.CombatWindowSeconds
	}

	b.EffectiveHP = b.ArmoredHP + b.ShieldValue + b.RegenCredit
	return b
}
