package models

import "testing"

func TestWeaponDerivedValues(t *testing.T) {
	tests := []struct {
		name       string
		damage     float64
		strikes    int
		period     float64
		wantVolley float64
		wantDPS    float64
	}{
		{"single strike", 10, 1, 2.0, 10, 5},
		{"multi strike", 7, 2, 1.29, 14, 10.852713178294573},
		{"heavy slow", 100, 1, 3.8, 100, 26.31578947368421},
		{"zero damage", 0, 3, 1.0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WeaponProfile{Damage: tt.damage, Strikes: tt.strikes, Period: tt.period}
			if got := w.VolleyDamage(); got != tt.wantVolley {
				t.Errorf("VolleyDamage() = %v, want %v", got, tt.wantVolley)
			}
			diff := w.BaseDPS() - tt.wantDPS
			if diff < 0 {
				diff = -diff
			}
			if diff > 0.0001 {
				t.Errorf("BaseDPS() = %v, want %v", w.BaseDPS(), tt.wantDPS)
			}
		})
	}
}

func TestWeaponBaseDPSZeroPeriod(t *testing.T) {
	w := WeaponProfile{Damage: 10, Strikes: 1, Period: 0}
	if got := w.BaseDPS(); got != 0 {
		t.Errorf("BaseDPS() with zero period = %v, want 0", got)
	}
}

func TestWeaponBonusVs(t *testing.T) {
	w := WeaponProfile{Bonus: BonusDamageMap{Armored: 15, Light: 5}}

	tests := []struct {
		attr UnitAttribute
		want float64
	}{
		{Armored, 15},
		{Light, 5},
		{Biological, 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := w.BonusVs(tt.attr); got != tt.want {
			t.Errorf("BonusVs(%q) = %v, want %v", tt.attr, got, tt.want)
		}
	}
}

func TestWeaponHasSplash(t *testing.T) {
	tests := []struct {
		splash SplashType
		want   bool
	}{
		{SplashNone, false},
		{"", false},
		{SplashLinear, true},
		{SplashCircular, true},
		{SplashCone, true},
	}
	for _, tt := range tests {
		w := WeaponProfile{Splash: tt.splash}
		if got := w.HasSplash(); got != tt.want {
			t.Errorf("HasSplash() with %q = %v, want %v", tt.splash, got, tt.want)
		}
	}
}

func TestWeaponRefFor(t *testing.T) {
	unit := UnitStats{
		Weapons: []WeaponRef{
			{Mode: "Tank", WeaponID: "cannon"},
			{Mode: "Sieged", WeaponID: "shock", Default: true},
		},
	}

	tests := []struct {
		name     string
		mode     string
		wantID   string
		wantMode string
		found    bool
	}{
		{"empty mode resolves default", "", "shock", "Sieged", true},
		{"explicit mode", "Tank", "cannon", "Tank", true},
		{"explicit default mode", "Sieged", "shock", "Sieged", true},
		{"unknown mode", "Air", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := unit.WeaponRefFor(tt.mode)
			if ok != tt.found {
				t.Fatalf("WeaponRefFor(%q) found = %v, want %v", tt.mode, ok, tt.found)
			}
			if ok && (ref.WeaponID != tt.wantID || ref.Mode != tt.wantMode) {
				t.Errorf("WeaponRefFor(%q) = %+v, want weapon %q mode %q", tt.mode, ref, tt.wantID, tt.wantMode)
			}
		})
	}
}

func TestWeaponRefForNoDefaultFallsBackToFirst(t *testing.T) {
	unit := UnitStats{
		Weapons: []WeaponRef{
			{Mode: "AA", WeaponID: "concord"},
			{Mode: "AG", WeaponID: "railgun"},
		},
	}
	ref, ok := unit.WeaponRefFor("")
	if !ok || ref.WeaponID != "concord" {
		t.Errorf("WeaponRefFor(\"\") = %+v, %v; want first weapon concord", ref, ok)
	}
}

func TestWeaponRefForUnarmed(t *testing.T) {
	unit := UnitStats{}
	if _, ok := unit.WeaponRefFor(""); ok {
		t.Error("WeaponRefFor on an unarmed unit reported a weapon")
	}
}

func TestEffectiveRadius(t *testing.T) {
	ground := UnitStats{Radius: 0.75}
	if got := ground.EffectiveRadius(0.5); got != 0.75 {
		t.Errorf("ground EffectiveRadius = %v, want 0.75", got)
	}

	air := UnitStats{Radius: 0.75, Flying: true}
	if got := air.EffectiveRadius(0.5); got != 0.5 {
		t.Errorf("flying EffectiveRadius = %v, want nominal 0.5", got)
	}
}

func TestMasteryHPBonusFor(t *testing.T) {
	mech := UnitStats{Attributes: NewAttributeSet(Armored, Mechanical)}
	bio := UnitStats{Attributes: NewAttributeSet(Light, Biological)}

	tests := []struct {
		name    string
		mastery MasteryTable
		unit    *UnitStats
		want    float64
	}{
		{"tag matches", MasteryTable{HPBonus: 0.3, HPBonusTag: Mechanical}, &mech, 0.3},
		{"tag does not match", MasteryTable{HPBonus: 0.3, HPBonusTag: Mechanical}, &bio, 0},
		{"no mastery", MasteryTable{}, &mech, 0},
		{"tag without bonus", MasteryTable{HPBonusTag: Mechanical}, &mech, 0},
		{"bonus without tag", MasteryTable{HPBonus: 0.3}, &mech, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mastery.HPBonusFor(tt.unit); got != tt.want {
				t.Errorf("HPBonusFor = %v, want %v", got, tt.want)
			}
		})
	}
}
