package scoring

import (
	"math"

	"github.com/sc2coop/cevcalc/internal/models"
)

// RangeFactor rewards units that outrange their own footprint. Flying
// units use the fixed nominal radius instead of their physical one.
func RangeFactor(cfg Config, unit *models.UnitStats, weapon *models.WeaponProfile) float64 {
	radius := unit.EffectiveRadius(cfg.AirNominalRadius)
	if radius <= 0 {
		radius = cfg.AirNominalRadius
	}
	if weapon.Range <= 0 {
		return 0
	}
	switch cfg.RangeCurve {
	case RangeCurveLog2:
		return math.Log2(1 + weapon.Range/radius)
	default:
		return math.Sqrt(weapon.Range / radius)
	}
}

// OperationFactor resolves omega, the per-family operation difficulty
// multiplier, for the unit under the resolved weapon mode.
func OperationFactor(cfg Config, unit *models.UnitStats, mode string) float64 {
	return cfg.OperationFactors.Lookup(unit.Family, mode)
}
