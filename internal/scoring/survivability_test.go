package scoring

import (
	"testing"

	"github.com/sc2coop/cevcalc/internal/models"
)

// TestEffectiveHPArmorScaling verifies the armor reduction factor: armor a
// absorbs a/(a+10), so HP scales by the reciprocal of what gets through.
func TestEffectiveHPArmorScaling(t *testing.T) {
	tests := []struct {
		name  string
		hp    float64
		armor float64
		want  float64
	}{
		{"no armor", 100, 0, 100},
		{"armor 1", 120, 1, 132},   // 120 / (1 - 1/11)
		{"armor 2", 100, 2, 120},   // 100 / (1 - 2/12)
		{"armor 5", 300, 5, 450},   // 300 / (1 - 5/15)
		{"armor 10", 100, 10, 200}, // absorbs half
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := plainUnit("U", "C", "W")
			unit.HP = tt.hp
			unit.Armor = tt.armor

			b := EffectiveHP(cfg, unit, nil, false)

			diff := b.ArmoredHP - tt.want
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.0001 {
				t.Errorf("ArmoredHP = %v, want %v", b.ArmoredHP, tt.want)
			}
			if b.EffectiveHP != b.ArmoredHP {
				t.Errorf("EffectiveHP = %v, want %v with no shields", b.EffectiveHP, b.ArmoredHP)
			}
		})
	}
}

// TestEffectiveHPArmorMonotonic verifies more armor never lowers EHP
func TestEffectiveHPArmorMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := 0.0
	for _, armor := range []float64{0, 1, 2, 3, 5, 8, 10} {
		unit := plainUnit("U", "C", "W")
		unit.Armor = armor
		b := EffectiveHP(cfg, unit, nil, false)
		if b.EffectiveHP <= prev {
			t.Errorf("armor %v: EffectiveHP %v did not grow past %v", armor, b.EffectiveHP, prev)
		}
		prev = b.EffectiveHP
	}
}

// TestEffectiveHPShieldsAndRegen verifies shields are added after armor
// scaling and earn the flat regeneration credit over the combat window.
func TestEffectiveHPShieldsAndRegen(t *testing.T) {
	cfg := DefaultConfig()

	unit := plainUnit("U", "C", "W")
	unit.Shields = 60

	b := EffectiveHP(cfg, unit, nil, false)
	if b.ShieldValue != 60 {
		t.Errorf("ShieldValue = %v, want 60", b.ShieldValue)
	}
	if b.RegenCredit != 30 { // 2.0 points/s over 15s
		t.Errorf("RegenCredit = %v, want 30", b.RegenCredit)
	}
	if b.EffectiveHP != 190 {
		t.Errorf("EffectiveHP = %v, want 190", b.EffectiveHP)
	}

	// No shields means no regeneration credit
	unit.Shields = 0
	b = EffectiveHP(cfg, unit, nil, false)
	if b.RegenCredit != 0 {
		t.Errorf("RegenCredit = %v without shields, want 0", b.RegenCredit)
	}
	if b.EffectiveHP != 100 {
		t.Errorf("EffectiveHP = %v, want 100", b.EffectiveHP)
	}

	// A zero combat window disables the credit even with shields up
	cfg.CombatWindowSeconds = 0
	unit.Shields = 80
	b = EffectiveHP(cfg, unit, nil, false)
	if b.RegenCredit != 0 {
		t.Errorf("RegenCredit = %v with zero window, want 0", b.RegenCredit)
	}
}

// TestEffectiveHPShieldFactor verifies the shield valuation factor of the
// v2.4 constants: shields at 1.4x with no separate regeneration credit.
func TestEffectiveHPShieldFactor(t *testing.T) {
	cfg := PresetV24()
	unit := plainUnit("U", "C", "W")
	unit.Shields = 80

	b := EffectiveHP(cfg, unit, nil, false)

	diff := b.ShieldValue - 112.0 // 80 * 1.4
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.0001 {
		t.Errorf("ShieldValue = %v, want 112", b.ShieldValue)
	}
	if b.RegenCredit != 0 {
		t.Errorf("RegenCredit = %v under v2.4, want 0", b.RegenCredit)
	}
	diff = b.EffectiveHP - 212.0
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.0001 {
		t.Errorf("EffectiveHP = %v, want 212", b.EffectiveHP)
	}
}

// TestEffectiveHPMasteryGate verifies the HP mastery bonus applies only to
// units carrying the commander's mastery tag, and only when masteries are on.
func TestEffectiveHPMasteryGate(t *testing.T) {
	commander := plainCommander("C")
	commander.Mastery = models.MasteryTable{HPBonus: 0.30, HPBonusTag: models.Mechanical}

	mech := plainUnit("Mech", "C", "W")
	mech.HP = 175
	mech.Attributes = models.NewAttributeSet(models.Armored, models.Mechanical)

	bio := plainUnit("Bio", "C", "W")
	bio.HP = 175
	bio.Attributes = models.NewAttributeSet(models.Light, models.Biological)

	cfg := DefaultConfig()

	tests := []struct {
		name         string
		unit         *models.UnitStats
		applyMastery bool
		wantBase     float64
	}{
		{"tagged unit with mastery", mech, true, 227.5}, // 175 * 1.3
		{"tagged unit mastery off", mech, false, 175},
		{"untagged unit with mastery", bio, true, 175},
		{"untagged unit mastery off", bio, false, 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := EffectiveHP(cfg, tt.unit, commander, tt.applyMastery)
			diff := b.BaseHP - tt.wantBase
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.0001 {
				t.Errorf("BaseHP = %v, want %v", b.BaseHP, tt.wantBase)
			}
		})
	}
}

// TestEffectiveHPShieldRegenMastery verifies the shield regeneration
// mastery scales the credit rate.
func TestEffectiveHPShieldRegenMastery(t *testing.T) {
	commander := plainCommander("C")
	commander.Mastery = models.MasteryTable{ShieldRegen: 0.15}

	unit := plainUnit("U", "C", "W")
	unit.Shields = 80

	cfg := DefaultConfig()

	b := EffectiveHP(cfg, unit, commander, true)
	diff := b.RegenCredit - 34.5 // 2.0 * 1.15 * 15
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.0001 {
		t.Errorf("RegenCredit = %v with mastery, want 34.5", b.RegenCredit)
	}

	b = EffectiveHP(cfg, unit, commander, false)
	if b.RegenCredit != 30 {
		t.Errorf("RegenCredit = %v with mastery off, want 30", b.RegenCredit)
	}
}

// TestEffectiveHPBreakdownConsistency verifies the reported terms always
// sum to the effective HP across the builtin roster.
func TestEffectiveHPBreakdownConsistency(t *testing.T) {
	cfg := DefaultConfig()
	ds := models.BuiltinDataSet()

	for _, unit := range ds.Units {
		commander, _ := ds.Commander(unit.Commander)
		for _, applyMastery := range []bool{true, false} {
			b := EffectiveHP(cfg, unit, commander, applyMastery)
			sum := b.ArmoredHP + b.ShieldValue + b.RegenCredit
			if b.EffectiveHP != sum {
				t.Errorf("%s mastery=%v: EffectiveHP %v != terms %v", unit.ID, applyMastery, b.EffectiveHP, sum)
			}
			if b.ArmoredHP < b.BaseHP {
				t.Errorf("%s: ArmoredHP %v below base %v", unit.ID, b.ArmoredHP, b.BaseHP)
			}
		}
	}
}
