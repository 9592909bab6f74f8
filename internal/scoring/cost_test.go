package scoring

import (
	"testing"

	"github.com/sc2coop/cevcalc/internal/models"
)

// TestEffectiveCostResourceTerm verifies the mineral-equivalent resource
// cost: minerals plus gas weighted by the commander's exchange rate.
func TestEffectiveCostResourceTerm(t *testing.T) {
	tests := []struct {
		name     string
		minerals int
		gas      int
		rate     float64 // commander rate, 0 falls back to the config default
		want     float64
	}{
		{"minerals only", 100, 0, 0, 100},
		{"gas at default rate", 100, 40, 0, 200}, // 100 + 2.5*40
		{"gas at commander rate", 100, 40, 3.0, 220},
		{"gas heavy", 0, 100, 0, 250},
		{"cheap gas commander", 50, 25, 1.0, 75},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commander := freeCommander("C")
			commander.MineralGasRate = tt.rate
			unit := plainUnit("U", "C", "W")
			unit.Minerals = tt.minerals
			unit.Gas = tt.gas

			b := EffectiveCost(cfg, unit, commander, models.StandardScenario())

			diff := b.ResourceCost - tt.want
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.0001 {
				t.Errorf("ResourceCost = %v, want %v", b.ResourceCost, tt.want)
			}
			// Exempt commander pays no tax, so the total is the resource term
			if b.EffectiveCost != b.ResourceCost {
				t.Errorf("EffectiveCost = %v, want resource term %v", b.EffectiveCost, b.ResourceCost)
			}
		})
	}
}

// TestEffectiveCostPopulationTax verifies the logistic population tax at
// mid game: lambda(600) * population * rho on top of the resource cost.
func TestEffectiveCostPopulationTax(t *testing.T) {
	cfg := DefaultConfig()
	commander := plainCommander("C")
	unit := plainUnit("U", "C", "W")
	unit.Minerals = 100
	unit.Population = 4

	b := EffectiveCost(cfg, unit, commander, models.StandardScenario())

	wantLambda := 0.5926665999540697 // logistic curve at t=600
	wantTax := 47.41332799632558     // lambda * 4 * 20
	wantTotal := 147.41332799632556

	for _, check := range []struct {
		name string
		got  float64
		want float64
	}{
		{"Lambda", b.Lambda, wantLambda},
		{"PopulationTax", b.PopulationTax, wantTax},
		{"EffectiveCost", b.EffectiveCost, wantTotal},
	} {
		diff := check.got - check.want
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.0001 {
			t.Errorf("%s = %v, want %v", check.name, check.got, check.want)
		}
	}
}

// TestEffectiveCostExemptCommander verifies that commanders without supply
// structures pay no population tax at any game time.
func TestEffectiveCostExemptCommander(t *testing.T) {
	cfg := DefaultConfig()
	commander := freeCommander("C")
	unit := plainUnit("U", "C", "W")
	unit.Minerals = 150
	unit.Gas = 150
	unit.Population = 3

	for _, gameTime := range []float64{0, 300, 600, 3600} {
		scenario := models.StandardScenario()
		scenario.GameTime = gameTime

		b := EffectiveCost(cfg, unit, commander, scenario)
		if b.Lambda != 0 || b.PopulationTax != 0 {
			t.Errorf("t=%v: exempt commander taxed: lambda=%v tax=%v", gameTime, b.Lambda, b.PopulationTax)
		}
		if b.EffectiveCost != 525 {
			t.Errorf("t=%v: EffectiveCost = %v, want 525", gameTime, b.EffectiveCost)
		}
	}
}

// TestEffectiveCostNilCommander verifies the fallbacks when no commander
// profile is available: default gas rate and the full-cap tax curve.
func TestEffectiveCostNilCommander(t *testing.T) {
	cfg := DefaultConfig()
	unit := plainUnit("U", "", "W")
	unit.Minerals = 100
	unit.Gas = 40
	unit.Population = 2

	scenario := models.StandardScenario()
	scenario.GameTime = 300 // lambda is exactly 0.5 at the midpoint

	b := EffectiveCost(cfg, unit, nil, scenario)

	if b.ResourceCost != 200 {
		t.Errorf("ResourceCost = %v, want 200", b.ResourceCost)
	}
	wantTax := 0.5 * 2 * 20
	diff := b.PopulationTax - wantTax
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.0001 {
		t.Errorf("PopulationTax = %v, want %v", b.PopulationTax, wantTax)
	}
}

// TestEffectiveCostGrowsWithGameTime verifies the population tax rises
// monotonically over a game for non-exempt commanders.
func TestEffectiveCostGrowsWithGameTime(t *testing.T) {
	cfg := DefaultConfig()
	commander := plainCommander("C")
	unit := plainUnit("U", "C", "W")
	unit.Population = 2

	prev := -1.0
	for _, gameTime := range []float64{0, 150, 300, 600, 1200, 3600} {
		scenario := models.StandardScenario()
		scenario.GameTime = gameTime
		b := EffectiveCost(cfg, unit, commander, scenario)
		if b.EffectiveCost <= prev {
			t.Errorf("t=%v: cost %v did not grow past %v", gameTime, b.EffectiveCost, prev)
		}
		prev = b.EffectiveCost
	}
}

// TestEffectiveCostPresetShifts verifies the preset rho and lambda values
// reproduce the documented costs for the builtin Marine.
func TestEffectiveCostPresetShifts(t *testing.T) {
	tests := []struct {
		preset string
		want   float64
	}{
		{"default", 61.85333199908139}, // 50 + lambda(600)*1*20
		{"v2.4", 62.5},                 // 50 + 0.625*1*20 flat
		{"refined", 64.81666499885173}, // 50 + lambda(600)*1*25
		{"v2.3", 60.0},                 // 50 + 0.5*1*20 flat
	}

	ds := models.BuiltinDataSet()
	marine, ok := ds.Unit("Marine")
	if !ok {
		t.Fatal("builtin Marine missing")
	}
	raynor, ok := ds.Commander("Raynor")
	if !ok {
		t.Fatal("builtin Raynor missing")
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg, err := PresetByName(tt.preset)
			if err != nil {
				t.Fatalf("PresetByName(%s): %v", tt.preset, err)
			}
			b := EffectiveCost(cfg, marine, raynor, models.StandardScenario())
			diff := b.EffectiveCost - tt.want
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.0001 {
				t.Errorf("EffectiveCost = %v, want %v", b.EffectiveCost, tt.want)
			}
		})
	}
}
