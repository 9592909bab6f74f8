// Package loader reads unit, weapon and commander definitions from YAML
// files and converts them into the typed reference data the scoring
// pipeline works on.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sc2coop/cevcalc/internal/models"
)

var (
	// ErrDuplicateID is returned when one corpus defines the same ID twice
	ErrDuplicateID = errors.New("duplicate definition id")

	// ErrBadDefinition is returned when a definition fails field validation
	ErrBadDefinition = errors.New("invalid definition")

	// ErrUnknownReference is returned when a definition points at an ID
	// that does not exist in the data set
	ErrUnknownReference = errors.New("unknown reference")
)

// DocumentYAML is the top-level shape of one definition file. A file may
// carry any subset of the three sections.
type DocumentYAML struct {
	Commanders []CommanderYAML `yaml:"commanders"`
	Weapons    []WeaponYAML    `yaml:"weapons"`
	Units      []UnitYAML      `yaml:"units"`
}

// CommanderYAML mirrors the YAML shape of one commander definition
type CommanderYAML struct {
	ID                  string      `yaml:"id"`
	Name                string      `yaml:"name"`
	PopulationCap       int         `yaml:"population_cap"`
	MineralGasRate      float64     `yaml:"mineral_gas_rate"`
	PopulationTaxExempt bool        `yaml:"population_tax_exempt"`
	Mastery             MasteryYAML `yaml:"mastery"`
}

// MasteryYAML mirrors the YAML shape of a commander's mastery bonuses
type MasteryYAML struct {
	AttackSpeed float64 `yaml:"attack_speed"`
	HPBonus     float64 `yaml:"hp_bonus"`
	HPBonusTag  string  `yaml:"hp_bonus_tag"`
	ShieldRegen float64 `yaml:"shield_regen"`
}

// WeaponYAML mirrors the YAML shape of one weapon definition
type WeaponYAML struct {
	ID      string             `yaml:"id"`
	Name    string             `yaml:"name"`
	Targets string             `yaml:"targets"`
	Damage  float64            `yaml:"damage"`
	Strikes int                `yaml:"strikes"`
	Period  float64            `yaml:"period"`
	Range   float64            `yaml:"range"`
	Bonus   map[string]float64 `yaml:"bonus"`
	Splash  string             `yaml:"splash"`
}

// WeaponRefYAML mirrors the YAML shape of one unit weapon binding
type WeaponRefYAML struct {
	Mode    string `yaml:"mode"`
	Weapon  string `yaml:"weapon"`
	Default bool   `yaml:"default"`
}

// UnitYAML mirrors the YAML shape of one unit definition
type UnitYAML struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	Commander    string          `yaml:"commander"`
	Family       string          `yaml:"family"`
	Minerals     int             `yaml:"minerals"`
	Gas          int             `yaml:"gas"`
	Population   float64         `yaml:"population"`
	HP           float64         `yaml:"hp"`
	Shields      float64         `yaml:"shields"`
	Armor        float64         `yaml:"armor"`
	Radius       float64         `yaml:"radius"`
	Flying       bool            `yaml:"flying"`
	Attributes   []string        `yaml:"attributes"`
	Weapons      []WeaponRefYAML `yaml:"weapons"`
	AbilityValue float64         `yaml:"ability_value"`
}

// Load reads definitions from a file or, when the path is a directory,
// from every YAML file inside it. References are not checked here; run
// ValidateReferences on the final (possibly merged) data set.
func Load(path string) (*models.DataSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadFile reads one YAML definition file
func LoadFile(path string) (*models.DataSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc DocumentYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ds, err := convertDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadDir reads every .yaml/.yml file in the directory as one corpus.
// Duplicate IDs across the directory's files are an error.
func LoadDir(dir string) (*models.DataSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var merged DocumentYAML
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		var doc DocumentYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		merged.Commanders = append(merged.Commanders, doc.Commanders...)
		merged.Weapons = append(merged.Weapons, doc.Weapons...)
		merged.Units = append(merged.Units, doc.Units...)
	}

	ds, err := convertDocument(&merged)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return ds, nil
}

// Merge overlays extra definitions on a base set. Entries sharing an ID
// replace the base entry, so a candidate file can both add new units and
// tweak builtin ones. Neither input is modified.
func Merge(base, extra *models.DataSet) *models.DataSet {
	units := mergeUnits(base.Units, extra.Units)
	weapons := mergeWeapons(base.Weapons, extra.Weapons)
	commanders := mergeCommanders(base.Commanders, extra.Commanders)
	return models.NewDataSet(units, weapons, commanders)
}

func mergeUnits(base, extra []*models.UnitStats) []*models.UnitStats {
	out := make([]*models.UnitStats, 0, len(base)+len(extra))
	for _, b := range base {
		replaced := false
		for _, e := range extra {
			if e.ID == b.ID {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, b)
		}
	}
	return append(out, extra...)
}

func mergeWeapons(base, extra []*models.WeaponProfile) []*models.WeaponProfile {
	out := make([]*models.WeaponProfile, 0, len(base)+len(extra))
	for _, b := range base {
		replaced := false
		for _, e := range extra {
			if e.ID == b.ID {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, b)
		}
	}
	return append(out, extra...)
}

func mergeCommanders(base, extra []*models.CommanderProfile) []*models.CommanderProfile {
	out := make([]*models.CommanderProfile, 0, len(base)+len(extra))
	for _, b := range base {
		replaced := false
		for _, e := range extra {
			if e.ID == b.ID {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, b)
		}
	}
	return append(out, extra...)
}
