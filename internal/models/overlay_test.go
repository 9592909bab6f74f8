package models

import "testing"

func TestApplyOverlayNeverMutatesBase(t *testing.T) {
	base := UnitStats{
		ID: "U", HP: 100, Shields: 50, Armor: 1, AbilityValue: 5,
		Weapons: []WeaponRef{{WeaponID: "W", Default: true}},
	}
	snapshot := base
	snapshotWeapons := append([]WeaponRef(nil), base.Weapons...)

	derived := ApplyOverlay(base, StatOverlay{
		HPFactor:          1.3,
		ShieldFactor:      2.0,
		ArmorDelta:        2,
		AbilityValueDelta: 10,
	})
	derived.Weapons[0].WeaponID = "tampered"

	if base.HP != snapshot.HP || base.Shields != snapshot.Shields ||
		base.Armor != snapshot.Armor || base.AbilityValue != snapshot.AbilityValue {
		t.Errorf("base stats mutated: %+v", base)
	}
	if base.Weapons[0] != snapshotWeapons[0] {
		t.Errorf("base weapon refs mutated: %+v", base.Weapons)
	}
}

func TestApplyOverlayValues(t *testing.T) {
	base := UnitStats{HP: 100, Shields: 50, Armor: 1, AbilityValue: 5}

	tests := []struct {
		name    string
		overlay StatOverlay
		check   func(t *testing.T, u UnitStats)
	}{
		{
			"hp factor",
			StatOverlay{HPFactor: 1.3},
			func(t *testing.T, u UnitStats) {
				if u.HP != 130 {
					t.Errorf("HP = %v, want 130", u.HP)
				}
			},
		},
		{
			"zero factors leave stats unchanged",
			StatOverlay{},
			func(t *testing.T, u UnitStats) {
				if u.HP != 100 || u.Shields != 50 || u.Armor != 1 || u.AbilityValue != 5 {
					t.Errorf("stats changed: %+v", u)
				}
			},
		},
		{
			"armor delta clamps at zero",
			StatOverlay{ArmorDelta: -5},
			func(t *testing.T, u UnitStats) {
				if u.Armor != 0 {
					t.Errorf("Armor = %v, want 0", u.Armor)
				}
			},
		},
		{
			"ability delta",
			StatOverlay{AbilityValueDelta: 7},
			func(t *testing.T, u UnitStats) {
				if u.AbilityValue != 12 {
					t.Errorf("AbilityValue = %v, want 12", u.AbilityValue)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ApplyOverlay(base, tt.overlay))
		})
	}
}

func TestApplyWeaponOverlay(t *testing.T) {
	base := WeaponProfile{Damage: 10, Strikes: 2, Period: 1.5, Range: 6}

	derived := ApplyWeaponOverlay(base, WeaponOverlay{
		DamageDelta:  5,
		RangeDelta:   2,
		PeriodFactor: 0.8,
		ExtraStrikes: 1,
	})

	if base.Damage != 10 || base.Period != 1.5 {
		t.Errorf("base weapon mutated: %+v", base)
	}
	if derived.Damage != 15 || derived.Range != 8 || derived.Strikes != 3 {
		t.Errorf("derived weapon = %+v", derived)
	}
	diff := derived.Period - 1.2
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.0001 {
		t.Errorf("Period = %v, want 1.2", derived.Period)
	}
}

func TestApplyWeaponOverlayStrikesFloor(t *testing.T) {
	base := WeaponProfile{Damage: 10, Strikes: 1, Period: 1.0}
	derived := ApplyWeaponOverlay(base, WeaponOverlay{ExtraStrikes: -3})
	if derived.Strikes != 1 {
		t.Errorf("Strikes = %v, want floor of 1", derived.Strikes)
	}
}
