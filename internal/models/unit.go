package models

// WeaponProfile contains the static damage profile of one attack mode.
// Base DPS is derived on demand, never stored.
type WeaponProfile struct {
	ID      string
	Name    string
	Targets TargetFilter
	Damage  float64 // damage per strike
	Strikes int     // strikes per attack
	Period  float64 // seconds per attack
	Range   float64
	Bonus   BonusDamageMap
	Splash  SplashType
}

// VolleyDamage returns the raw damage of one full attack
func (w *WeaponProfile) VolleyDamage() float64 {
	return w.Damage * float64(w.Strikes)
}

// BaseDPS returns damage per second without any scenario modifiers
func (w *WeaponProfile) BaseDPS() float64 {
	if w.Period <= 0 {
		return 0
	}
	return w.VolleyDamage() / w.Period
}

// BonusVs returns the extra damage per strike against the given attribute
func (w *WeaponProfile) BonusVs(a UnitAttribute) float64 {
	if a == "" {
		return 0
	}
	return w.Bonus.Get(a)
}

// HasSplash reports whether the weapon deals area damage
func (w *WeaponProfile) HasSplash() bool {
	return w.Splash != "" && w.Splash != SplashNone
}

// WeaponRef binds a unit to one of its weapons under a named mode
type WeaponRef struct {
	Mode     string // empty for single-mode units
	WeaponID string
	Default  bool
}

// UnitStats contains the base combat attributes of one unit.
// Values are read-only once constructed; what-if modifications go
// through ApplyOverlay which returns a fresh copy.
type UnitStats struct {
	ID        string
	Name      string
	Commander string
	Family    string // explicit key for splash/operation factor tables

	Minerals   int
	Gas        int
	Population float64

	HP      float64
	Shields float64
	Armor   float64

	Radius float64
	Flying bool

	Attributes AttributeSet
	Weapons    []WeaponRef

	// AbilityValue is a designer-estimated DPS equivalent of the unit's
	// non-weapon abilities, added outside the multiplicative damage chain.
	AbilityValue float64
}

// HasAttribute reports whether the unit carries the given tag
func (u *UnitStats) HasAttribute(a UnitAttribute) bool {
	return u.Attributes.Has(a)
}

// WeaponRefFor selects the weapon reference for the requested mode.
// An empty mode resolves to the default weapon, falling back to the
// first listed one. The second return is false when the unit has no
// weapon matching the request.
func (u *UnitStats) WeaponRefFor(mode string) (WeaponRef, bool) {
	if mode == "" {
		for _, ref := range u.Weapons {
			if ref.Default {
				return ref, true
			}
		}
		if len(u.Weapons) > 0 {
			return u.Weapons[0], true
		}
		return WeaponRef{}, false
	}
	for _, ref := range u.Weapons {
		if ref.Mode == mode {
			return ref, true
		}
	}
	return WeaponRef{}, false
}

// EffectiveRadius returns the collision radius used for range math.
// Flying units use the fixed nominal radius instead of their physical one.
func (u *UnitStats) EffectiveRadius(nominalAirRadius float64) float64 {
	if u.Flying {
		return nominalAirRadius
	}
	return u.Radius
}

// MasteryTable holds the named mastery bonuses of one commander
type MasteryTable struct {
	AttackSpeed float64       // fractional attack speed bonus, e.g. 0.15
	HPBonus     float64       // fractional HP bonus for units tagged HPBonusTag
	HPBonusTag  UnitAttribute // empty when the commander has no HP mastery
	ShieldRegen float64       // fractional shield regeneration bonus
}

// HPBonusFor returns the HP mastery fraction applying to the unit, if any
func (m MasteryTable) HPBonusFor(u *UnitStats) float64 {
	if m.HPBonusTag == "" || m.HPBonus == 0 {
		return 0
	}
	if u.HasAttribute(m.HPBonusTag) {
		return m.HPBonus
	}
	return 0
}

// CommanderProfile contains the economic modifiers shared by all units
// of one commander
type CommanderProfile struct {
	ID             string
	Name           string
	PopulationCap  int
	MineralGasRate float64 // mineral value of one gas, default 2.5

	// PopulationTaxExempt marks commanders without supply-producing
	// structures; their units pay no population tax.
	PopulationTaxExempt bool

	Mastery MasteryTable
}
