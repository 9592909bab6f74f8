package models

// UnitAttribute represents a combat attribute tag carried by a unit
type UnitAttribute string

const (
	Light      UnitAttribute = "light"
	Armored    UnitAttribute = "armored"
	Biological UnitAttribute = "biological"
	Mechanical UnitAttribute = "mechanical"
	Psionic    UnitAttribute = "psionic"
	Massive    UnitAttribute = "massive"
	Structure  UnitAttribute = "structure"
	Heroic     UnitAttribute = "heroic"
)

// AllUnitAttributes returns all attribute tags in deterministic order
func AllUnitAttributes() []UnitAttribute {
	return []UnitAttribute{
		Light, Armored, Biological, Mechanical,
		Psionic, Massive, Structure, Heroic,
	}
}

// TargetFilter restricts which plane a weapon can shoot at
type TargetFilter string

const (
	TargetGround TargetFilter = "ground"
	TargetAir    TargetFilter = "air"
	TargetBoth   TargetFilter = "both"
)

// Matches reports whether a weapon with this filter can engage the given plane.
// An empty plane means "any target" and always matches.
func (f TargetFilter) Matches(plane TargetFilter) bool {
	if plane == "" || f == TargetBoth {
		return true
	}
	return f == plane
}

// SplashType describes the area-damage geometry of a weapon
type SplashType string

const (
	SplashNone     SplashType = "none"
	SplashLinear   SplashType = "linear"
	SplashCircular SplashType = "circular"
	SplashCone     SplashType = "cone"
)

// AttributeSet is a deterministic struct for attribute tags (replaces map[UnitAttribute]bool)
type AttributeSet struct {
	Light      bool
	Armored    bool
	Biological bool
	Mechanical bool
	Psionic    bool
	Massive    bool
	Structure  bool
	Heroic     bool
}

// NewAttributeSet builds a set from the given tags
func NewAttributeSet(attrs ...UnitAttribute) AttributeSet {
	var s AttributeSet
	for _, a := range attrs {
		s.Set(a, true)
	}
	return s
}

// Has reports whether the tag is present
func (s AttributeSet) Has(a UnitAttribute) bool {
	switch a {
	case Light:
		return s.Light
	case Armored:
		return s.Armored
	case Biological:
		return s.Biological
	case Mechanical:
		return s.Mechanical
	case Psionic:
		return s.Psionic
	case Massive:
		return s.Massive
	case Structure:
		return s.Structure
	case Heroic:
		return s.Heroic
	}
	return false
}

// Set adds or removes a tag
func (s *AttributeSet) Set(a UnitAttribute, present bool) {
	switch a {
	case Light:
		s.Light = present
	case Armored:
		s.Armored = present
	case Biological:
		s.Biological = present
	case Mechanical:
		s.Mechanical = present
	case Psionic:
		s.Psionic = present
	case Massive:
		s.Massive = present
	case Structure:
		s.Structure = present
	case Heroic:
		s.Heroic = present
	}
}

// Each iterates over present tags in deterministic order
func (s AttributeSet) Each(fn func(UnitAttribute)) {
	for _, a := range AllUnitAttributes() {
		if s.Has(a) {
			fn(a)
		}
	}
}

// List returns the present tags in deterministic order
func (s AttributeSet) List() []UnitAttribute {
	var out []UnitAttribute
	s.Each(func(a UnitAttribute) { out = append(out, a) })
	return out
}

// BonusDamageMap is a deterministic struct for per-attribute bonus damage
// (replaces map[UnitAttribute]float64)
type BonusDamageMap struct {
	Light      float64
	Armored    float64
	Biological float64
	Mechanical float64
	Psionic    float64
	Massive    float64
	Structure  float64
	Heroic     float64
}

// Get returns the bonus damage against the given attribute
func (m BonusDamageMap) Get(a UnitAttribute) float64 {
	switch a {
	case Light:
		return m.Light
	case Armored:
		return m.Armored
	case Biological:
		return m.Biological
	case Mechanical:
		return m.Mechanical
	case Psionic:
		return m.Psionic
	case Massive:
		return m.Massive
	case Structure:
		return m.Structure
	case Heroic:
		return m.Heroic
	}
	return 0
}

// Set sets the bonus damage against the given attribute
func (m *BonusDamageMap) Set(a UnitAttribute, dmg float64) {
	switch a {
	case Light:
		m.Light = dmg
	case Armored:
		m.Armored = dmg
	case Biological:
		m.Biological = dmg
	case Mechanical:
		m.Mechanical = dmg
	case Psionic:
		m.Psionic = dmg
	case Massive:
		m.Massive = dmg
	case Structure:
		m.Structure = dmg
	case Heroic:
		m.Heroic = dmg
	}
}

// Each iterates over nonzero bonuses in deterministic order
func (m BonusDamageMap) Each(fn func(UnitAttribute, float64)) {
	for _, a := range AllUnitAttributes() {
		if v := m.Get(a); v != 0 {
			fn(a, v)
		}
	}
}
