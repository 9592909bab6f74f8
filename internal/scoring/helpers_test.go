package scoring

import (
	"testing"

	"github.com/sc2coop/cevcalc/internal/models"
)

// Shared fixtures for the scoring tests. Most tests run against the
// builtin catalog; the handcrafted constructors below pin down a single
// formula term without the rest of the roster in the way.

// newTestCalculator returns a calculator over the builtin roster with the
// default constants
func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(models.BuiltinDataSet(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

// newCalculatorFor returns a calculator over a handcrafted data set
func newCalculatorFor(t *testing.T, cfg Config, units []*models.UnitStats, weapons []*models.WeaponProfile, commanders []*models.CommanderProfile) *Calculator {
	t.Helper()
	calc, err := NewCalculator(models.NewDataSet(units, weapons, commanders), cfg)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

// plainCommander returns a commander with no mastery at the full population cap
func plainCommander(id string) *models.CommanderProfile {
	return &models.CommanderProfile{ID: id, Name: id, PopulationCap: 200, MineralGasRate: 2.5}
}

// freeCommander returns a population-tax-exempt commander, for tests that
// need exact costs without the logistic tax term
func freeCommander(id string) *models.CommanderProfile {
	c := plainCommander(id)
	c.PopulationTaxExempt = true
	return c
}

// plainWeapon returns a single-strike ground weapon with no bonuses
func plainWeapon(id string, damage, period, reach float64) *models.WeaponProfile {
	return &models.WeaponProfile{
		ID: id, Name: id, Targets: models.TargetGround,
		Damage: damage, Strikes: 1, Period: period, Range: reach,
		Splash: models.SplashNone,
	}
}

// plainUnit returns a ground unit bound to the given commander and weapon
func plainUnit(id, commander, weaponID string) *models.UnitStats {
	return &models.UnitStats{
		ID: id, Name: id, Commander: commander, Family: id,
		Minerals: 100, Population: 2, HP: 100, Radius: 0.5,
		Weapons: []models.WeaponRef{{WeaponID: weaponID, Default: true}},
	}
}

// mustEvaluate scores a unit and fails the test on error
func mustEvaluate(t *testing.T, calc *Calculator, unitID string, scenario models.ScoringScenario) *Result {
	t.Helper()
	res, err := calc.Evaluate(unitID, scenario)
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", unitID, err)
	}
	return res
}
