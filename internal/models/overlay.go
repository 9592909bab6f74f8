package models

// StatOverlay describes a hypothetical tech/upgrade configuration applied
// to a unit for what-if scoring. Factor fields of 0 mean "unchanged".
type StatOverlay struct {
	HPFactor          float64
	ShieldFactor      float64
	ArmorDelta        float64
	AbilityValueDelta float64
}

// WeaponOverlay describes a hypothetical upgrade applied to a weapon.
// Factor fields of 0 mean "unchanged".
type WeaponOverlay struct {
	DamageDelta  float64
	RangeDelta   float64
	PeriodFactor float64
	ExtraStrikes int
}

// ApplyOverlay returns a copy of the unit with the overlay applied.
// The input is never modified.
func ApplyOverlay(base UnitStats, o StatOverlay) UnitStats {
	derived := base
	derived.Weapons = make([]WeaponRef, len(base.Weapons))
	copy(derived.Weapons, base.Weapons)

	if o.HPFactor != 0 {
		derived.HP = base.HP * o.HPFactor
	}
	if o.ShieldFactor != 0 {
		derived.Shields = base.Shields * o.ShieldFactor
	}
	derived.Armor = base.Armor + o.ArmorDelta
	if derived.Armor < 0 {
		derived.Armor = 0
	}
	derived.AbilityValue = base.AbilityValue + o.AbilityValueDelta
	return derived
}

// ApplyWeaponOverlay returns a copy of the weapon with the overlay applied.
// The input is never modified.
func ApplyWeaponOverlay(base WeaponProfile, o WeaponOverlay) WeaponProfile {
	derived := base
	derived.Damage = base.Damage + o.DamageDelta
	derived.Range = base.Range + o.RangeDelta
	if o.PeriodFactor != 0 {
		derived.Period = base.Period * o.PeriodFactor
	}
	derived.Strikes = base.Strikes + o.ExtraStrikes
	if derived.Strikes < 1 {
		derived.Strikes = 1
	}
	return derived
}
