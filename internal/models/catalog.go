package models

// Builtin reference roster: the elite units used by the balance benchmarks
// plus the line units that anchor the low end of the population. Stats are
// co-op values, not versus-mode values.

// AllCommanders returns the builtin commander profiles
func AllCommanders() []*CommanderProfile {
	return []*CommanderProfile{
		{
			ID:             "Raynor",
			Name:           "Jim Raynor",
			PopulationCap:  200,
			MineralGasRate: 2.5,
		},
		{
			ID:             "Swann",
			Name:           "Rory Swann",
			PopulationCap:  200,
			MineralGasRate: 2.5,
			Mastery: MasteryTable{
				HPBonus:    0.30,
				HPBonusTag: Mechanical,
			},
		},
		{
			ID:             "Artanis",
			Name:           "Artanis",
			PopulationCap:  200,
			MineralGasRate: 2.5,
			Mastery: MasteryTable{
				ShieldRegen: 0.15,
			},
		},
		{
			ID:             "Alarak",
			Name:           "Alarak",
			PopulationCap:  200,
			MineralGasRate: 2.5,
			Mastery: MasteryTable{
				AttackSpeed: 0.15,
			},
		},
		{
			ID:                  "Nova",
			Name:                "Nova Terra",
			PopulationCap:       100,
			MineralGasRate:      2.5,
			PopulationTaxExempt: true,
			Mastery: MasteryTable{
				AttackSpeed: 0.15,
			},
		},
		{
			ID:                  "Dehaka",
			Name:                "Dehaka",
			PopulationCap:       200,
			MineralGasRate:      2.5,
			PopulationTaxExempt: true,
			Mastery: MasteryTable{
				HPBonus:    0.30,
				HPBonusTag: Biological,
			},
		},
	}
}

// AllWeapons returns the builtin weapon profiles
func AllWeapons() []*WeaponProfile {
	return []*WeaponProfile{
		{
			ID:      "GaussRifle",
			Name:    "C-14 Gauss Rifle",
			Targets: TargetBoth,
			Damage:  6,
			Strikes: 1,
			Period:  0.8608,
			Range:   5,
			Splash:  SplashNone,
		},
		{
			ID:      "PunisherGrenades",
			Name:    "Punisher Grenades",
			Targets: TargetGround,
			Damage:  10,
			Strikes: 1,
			Period:  1.5,
			Range:   6,
			Bonus:   BonusDamageMap{Armored: 10},
			Splash:  SplashNone,
		},
		{
			ID:      "CrucioCannon",
			Name:    "90mm Twin Cannon",
			Targets: TargetGround,
			Damage:  15,
			Strikes: 1,
			Period:  0.74,
			Range:   7,
			Bonus:   BonusDamageMap{Armored: 10},
			Splash:  SplashNone,
		},
		{
			ID:      "CrucioShockCannon",
			Name:    "Crucio Shock Cannon", // siege mode
			Targets: TargetGround,
			Damage:  40,
			Strikes: 1,
			Period:  2.8,
			Range:   13,
			Bonus:   BonusDamageMap{Armored: 30},
			Splash:  SplashCircular,
		},
		{
			ID:      "PhasedDisruptors",
			Name:    "Phased Disruptors",
			Targets: TargetBoth,
			Damage:  100,
			Strikes: 1,
			Period:  3.8,
			Range:   9,
			Splash:  SplashNone,
		},
		{
			ID:      "TenderizerSpines",
			Name:    "Tenderizer Spines",
			Targets: TargetGround,
			Damage:  40,
			Strikes: 1,
			Period:  1.45,
			Range:   11,
			Bonus:   BonusDamageMap{Armored: 20},
			Splash:  SplashNone,
		},
		{
			ID:      "ConcordCannon",
			Name:    "Concord Cannon",
			Targets: TargetAir,
			Damage:  7,
			Strikes: 2,
			Period:  1.29,
			Range:   10,
			Splash:  SplashCircular,
		},
		{
			ID:      "LexingtonRailgun",
			Name:    "Lexington Railgun", // defender mode
			Targets: TargetGround,
			Damage:  85,
			Strikes: 1,
			Period:  1.6,
			Range:   10,
			Splash:  SplashNone,
		},
		{
			ID:      "ParticleDisruptors",
			Name:    "Particle Disruptors",
			Targets: TargetBoth,
			Damage:  15,
			Strikes: 1,
			Period:  1.44,
			Range:   8,
			Bonus:   BonusDamageMap{Armored: 10},
			Splash:  SplashNone,
		},
		{
			ID:      "PsiBlades",
			Name:    "Psi Blades",
			Targets: TargetGround,
			Damage:  8,
			Strikes: 2,
			Period:  1.2,
			Range:   0.1,
			Splash:  SplashNone,
		},
	}
}

// AllUnits returns the builtin unit roster
func AllUnits() []*UnitStats {
	return []*UnitStats{
		{
			ID:           "Marine",
			Name:         "Marine",
			Commander:    "Raynor",
			Family:       "Marine",
			Minerals:     50,
			Population:   1,
			HP:           45,
			Radius:       0.375,
			Attributes:   NewAttributeSet(Light, Biological),
			Weapons:      []WeaponRef{{WeaponID: "GaussRifle", Default: true}},
			AbilityValue: 2, // stimpack
		},
		{
			ID:           "Marauder",
			Name:         "Marauder",
			Commander:    "Raynor",
			Family:       "Marauder",
			Minerals:     100,
			Gas:          25,
			Population:   2,
			HP:           125,
			Armor:        1,
			Radius:       0.5625,
			Attributes:   NewAttributeSet(Armored, Biological),
			Weapons:      []WeaponRef{{WeaponID: "PunisherGrenades", Default: true}},
			AbilityValue: 3, // concussive shells
		},
		{
			ID:         "SiegeTank",
			Name:       "Siege Tank",
			Commander:  "Swann",
			Family:     "SiegeTank",
			Minerals:   150,
			Gas:        125,
			Population: 3,
			HP:         175,
			Armor:      1,
			Radius:     0.75,
			Attributes: NewAttributeSet(Armored, Mechanical),
			Weapons: []WeaponRef{
				{Mode: "Tank", WeaponID: "CrucioCannon"},
				{Mode: "Sieged", WeaponID: "CrucioShockCannon", Default: true},
			},
			AbilityValue: 20, // siege-mode splash coverage
		},
		{
			ID:           "Wrathwalker",
			Name:         "Wrathwalker",
			Commander:    "Alarak",
			Family:       "Wrathwalker",
			Minerals:     300,
			Gas:          200,
			Population:   6,
			HP:           300,
			Shields:      150,
			Armor:        1,
			Radius:       1.0,
			Attributes:   NewAttributeSet(Armored, Mechanical, Massive),
			Weapons:      []WeaponRef{{WeaponID: "PhasedDisruptors", Default: true}},
			AbilityValue: 15, // fires while moving, cliff walk
		},
		{
			ID:           "Impaler",
			Name:         "Impaler",
			Commander:    "Dehaka",
			Family:       "Impaler",
			Minerals:     150,
			Gas:          100,
			Population:   3,
			HP:           200,
			Armor:        2,
			Radius:       0.75,
			Attributes:   NewAttributeSet(Armored, Biological),
			Weapons:      []WeaponRef{{WeaponID: "TenderizerSpines", Default: true}},
			AbilityValue: 10, // burrow, tenderize
		},
		{
			ID:         "RaidLiberator",
			Name:       "Raid Liberator",
			Commander:  "Nova",
			Family:     "Liberator",
			Minerals:   150,
			Gas:        150,
			Population: 3,
			HP:         180,
			Radius:     0.75,
			Flying:     true,
			Attributes: NewAttributeSet(Armored, Mechanical),
			Weapons: []WeaponRef{
				{Mode: "AA", WeaponID: "ConcordCannon", Default: true},
				{Mode: "AG", WeaponID: "LexingtonRailgun"},
			},
			AbilityValue: 10, // defender mode zone control
		},
		{
			ID:           "Dragoon",
			Name:         "Dragoon",
			Commander:    "Artanis",
			Family:       "Dragoon",
			Minerals:     125,
			Gas:          50,
			Population:   2,
			HP:           120,
			Shields:      80,
			Armor:        1,
			Radius:       0.75,
			Attributes:   NewAttributeSet(Armored, Mechanical),
			Weapons:      []WeaponRef{{WeaponID: "ParticleDisruptors", Default: true}},
			AbilityValue: 5, // guardian shell
		},
		{
			ID:           "Zealot",
			Name:         "Zealot",
			Commander:    "Artanis",
			Family:       "Zealot",
			Minerals:     100,
			Population:   2,
			HP:           100,
			Shields:      60,
			Armor:        1,
			Radius:       0.5,
			Attributes:   NewAttributeSet(Light, Biological),
			Weapons:      []WeaponRef{{WeaponID: "PsiBlades", Default: true}},
			AbilityValue: 4, // whirlwind
		},
	}
}

// BuiltinDataSet returns a data set over the builtin roster
func BuiltinDataSet() *DataSet {
	return NewDataSet(AllUnits(), AllWeapons(), AllCommanders())
}
