package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sc2coop/cevcalc/internal/models"
)

func writeYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFileCandidate(t *testing.T) {
	ds, err := LoadFile("testdata/thor_mk2.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	unit, ok := ds.Unit("ThorMk2")
	if !ok {
		t.Fatal("ThorMk2 missing from loaded data")
	}
	if unit.Commander != "Moebius" || unit.Family != "Thor" {
		t.Errorf("unit = %+v", unit)
	}
	if unit.Minerals != 600 || unit.Gas != 450 || unit.Population != 6 {
		t.Errorf("costs = %d/%d/%v", unit.Minerals, unit.Gas, unit.Population)
	}
	if unit.HP != 300 || unit.Shields != 170 || unit.Armor != 5 {
		t.Errorf("survivability = %v/%v/%v", unit.HP, unit.Shields, unit.Armor)
	}
	if !unit.HasAttribute(models.Armored) || !unit.HasAttribute(models.Massive) {
		t.Errorf("attributes = %v", unit.Attributes.List())
	}

	weapon, ok := ds.Weapon("LanceMissileLaunchersMk2")
	if !ok {
		t.Fatal("candidate weapon missing")
	}
	if weapon.Strikes != 4 || weapon.Targets != models.TargetBoth {
		t.Errorf("weapon = %+v", weapon)
	}
	if got := weapon.Bonus.Get(models.Armored); got != 15 {
		t.Errorf("armored bonus = %v, want 15", got)
	}

	commander, ok := ds.Commander("Moebius")
	if !ok {
		t.Fatal("candidate commander missing")
	}
	if commander.Mastery.AttackSpeed != 0.15 {
		t.Errorf("attack speed mastery = %v, want 0.15", commander.Mastery.AttackSpeed)
	}

	if err := ValidateReferences(ds); err != nil {
		t.Errorf("ValidateReferences: %v", err)
	}
}

func TestLoadDirMergesFiles(t *testing.T) {
	ds, err := Load("testdata/corpus")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := ds.Commander("Mengsk"); !ok {
		t.Error("Mengsk missing from corpus")
	}
	unit, ok := ds.Unit("DominionTrooper")
	if !ok {
		t.Fatal("DominionTrooper missing from corpus")
	}
	if unit.AbilityValue != 1 {
		t.Errorf("AbilityValue = %v, want 1", unit.AbilityValue)
	}

	// strikes defaults to 1, targets parsed explicitly
	weapon, ok := ds.Weapon("TrooperRifle")
	if !ok {
		t.Fatal("TrooperRifle missing from corpus")
	}
	if weapon.Strikes != 1 {
		t.Errorf("Strikes = %d, want default 1", weapon.Strikes)
	}
}

func TestLoadFieldDefaults(t *testing.T) {
	path := writeYAML(t, "defaults.yaml", `
weapons:
  - id: W
    damage: 10
    period: 1.0
`)
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, ok := ds.Weapon("W")
	if !ok {
		t.Fatal("weapon missing")
	}
	if w.Targets != models.TargetGround {
		t.Errorf("Targets = %q, want ground default", w.Targets)
	}
	if w.Splash != models.SplashNone {
		t.Errorf("Splash = %q, want none default", w.Splash)
	}
}

func TestLoadRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"unit without id",
			"units:\n  - name: Nameless\n    commander: C\n    hp: 10\n",
		},
		{
			"unit without commander",
			"units:\n  - id: U\n    hp: 10\n",
		},
		{
			"unit with zero hp",
			"units:\n  - id: U\n    commander: C\n    hp: 0\n",
		},
		{
			"unit with negative cost",
			"units:\n  - id: U\n    commander: C\n    hp: 10\n    minerals: -5\n",
		},
		{
			"unit with unknown attribute",
			"units:\n  - id: U\n    commander: C\n    hp: 10\n    attributes: [spectral]\n",
		},
		{
			"unit with duplicate weapon mode",
			"units:\n  - id: U\n    commander: C\n    hp: 10\n    weapons:\n      - weapon: W\n      - weapon: X\n",
		},
		{
			"unit with two default weapons",
			"units:\n  - id: U\n    commander: C\n    hp: 10\n    weapons:\n      - weapon: W\n        mode: A\n        default: true\n      - weapon: X\n        mode: B\n        default: true\n",
		},
		{
			"weapon with zero period",
			"weapons:\n  - id: W\n    damage: 10\n    period: 0\n",
		},
		{
			"weapon with unknown target filter",
			"weapons:\n  - id: W\n    damage: 10\n    period: 1\n    targets: underground\n",
		},
		{
			"weapon with unknown splash type",
			"weapons:\n  - id: W\n    damage: 10\n    period: 1\n    splash: square\n",
		},
		{
			"commander with zero cap",
			"commanders:\n  - id: C\n    population_cap: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, "bad.yaml", tt.content)
			_, err := Load(path)
			if !errors.Is(err, ErrBadDefinition) {
				t.Errorf("Load error = %v, want ErrBadDefinition", err)
			}
		})
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeYAML(t, "dup.yaml", `
commanders:
  - id: C
    population_cap: 200
  - id: C
    population_cap: 100
`)
	_, err := Load(path)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Load error = %v, want ErrDuplicateID", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load accepted a missing path")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeYAML(t, "broken.yaml", "units: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestMergeOverridesByID(t *testing.T) {
	base := models.BuiltinDataSet()
	baseMarine, _ := base.Unit("Marine")

	extra, err := LoadFile("testdata/thor_mk2.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	patch := models.NewDataSet(
		[]*models.UnitStats{{
			ID: "Marine", Name: "Marine (patched)", Commander: "Raynor", Family: "Marine",
			Minerals: 60, Population: 1, HP: 55, Radius: 0.375,
			Weapons: []models.WeaponRef{{WeaponID: "GaussRifle", Default: true}},
		}},
		nil, nil,
	)

	merged := Merge(Merge(base, extra), patch)

	if _, ok := merged.Unit("ThorMk2"); !ok {
		t.Error("merged set lost the candidate unit")
	}
	marine, ok := merged.Unit("Marine")
	if !ok {
		t.Fatal("merged set lost the Marine")
	}
	if marine.HP != 55 {
		t.Errorf("patched Marine HP = %v, want 55", marine.HP)
	}
	if baseMarine.HP != 45 {
		t.Errorf("base Marine mutated: HP = %v", baseMarine.HP)
	}

	count := 0
	for _, u := range merged.Units {
		if u.ID == "Marine" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("merged set holds %d Marines, want 1", count)
	}

	if err := ValidateReferences(merged); err != nil {
		t.Errorf("ValidateReferences after merge: %v", err)
	}
}
