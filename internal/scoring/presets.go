package scoring

import "fmt"

// Historical formula versions expressed as configuration presets over the
// single pipeline. Constants follow the versions they are named after; the
// disputed ones (rho 20 vs 25, sqrt vs log2 range curve) live here instead
// of in forked code paths.

// PresetNames lists the available presets in deterministic order
func PresetNames() []string {
	return []string{"default", "v2.3", "v2.4", "refined"}
}

// PresetByName resolves a preset for CLI and experiment configs
func PresetByName(name string) (Config, error) {
	switch name {
	case "", "default":
		return DefaultConfig(), nil
	case "v2.3":
		return PresetV23(), nil
	case "v2.4":
		return PresetV24(), nil
	case "refined":
		return PresetRefined(), nil
	}
	return Config{}, fmt.Errorf("unknown preset %q", name)
}

// PresetV23 reproduces the v2.3 constants: log2 range curve and a flat
// mid-game population pressure. Its inverted population normalization was
// superseded by v2.4 and is not carried.
func PresetV23() Config {
	c := DefaultConfig()
	c.RangeCurve = RangeCurveLog2
	c.FlatLambda = 0.5
	return c
}

// PresetV24 reproduces the v2.4 constants: a flat population tax of 12.5
// minerals per supply (lambda 0.625 at rho 20) and shields valued at 1.4x
// with no separate regeneration credit.
func PresetV24() Config {
	c := DefaultConfig()
	c.FlatLambda = 0.625
	c.ShieldFactor = 1.4
	c.CombatWindowSeconds = 0
	return c
}

// PresetRefined reproduces the refined-model constants: rho 25 and a 20
// second combat window for the shield regeneration credit.
func PresetRefined() Config {
	c := DefaultConfig()
	c.PopulationBaseValue = 25
	c.CombatWindowSeconds = 20
	return c
}
