// Package experiment organizes batch evaluation runs on disk: each run
// gets its own timestamped directory carrying the exact configuration it
// ran with, so results stay reproducible and comparable.
package experiment

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

// RunKind classifies what a run computes
type RunKind string

const (
	RunUnitEvaluation RunKind = "unit_eval"
	RunRanking        RunKind = "ranking"
	RunBalance        RunKind = "balance"
	RunParameterSweep RunKind = "param_sweep"
)

// AllRunKinds returns the run kinds in deterministic order
func AllRunKinds() []RunKind {
	return []RunKind{RunUnitEvaluation, RunRanking, RunBalance, RunParameterSweep}
}

// RunConfig describes one batch run. It is stored verbatim inside the
// run directory so the run can be reproduced later.
type RunConfig struct {
	Name        string  `yaml:"name"`
	Kind        RunKind `yaml:"kind"`
	Description string  `yaml:"description"`

	// Preset selects the formula parameter set, empty means default
	Preset string `yaml:"preset"`

	// Scenarios lists the scoring scenarios to run, empty means standard
	Scenarios []string `yaml:"scenarios"`

	// Commanders and Units filter the roster; empty means everything
	Commanders []string `yaml:"commanders"`
	Units      []string `yaml:"units"`

	// DataPath optionally merges extra YAML definitions (candidate
	// units) onto the builtin catalog before scoring
	DataPath string `yaml:"data"`

	PerPopulation bool `yaml:"per_population"`
	Neighbors     int  `yaml:"neighbors"`
	SaveRaw       bool `yaml:"save_raw"`
}

// LoadConfig reads a run configuration from a YAML file and fills in
// defaults
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *RunConfig) applyDefaults() {
	if c.Kind == "" {
		c.Kind = RunRanking
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = []string{models.StandardScenario().Name}
	}
	if c.Neighbors <= 0 {
		c.Neighbors = 5
	}
}

// Validate checks the configuration against the known kinds, presets
// and scenarios
func (c *RunConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("run config needs a name")
	}
	known := false
	for _, k := range AllRunKinds() {
		if c.Kind == k {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown run kind %q", string(c.Kind))
	}
	if _, err := scoring.PresetByName(c.Preset); err != nil {
		return err
	}
	for _, name := range c.Scenarios {
		if _, err := models.ScenarioByName(name); err != nil {
			return err
		}
	}
	return nil
}

// ID returns a short stable identifier derived from the parameters that
// define the run. Two runs with the same key parameters share an ID even
// when started at different times.
func (c *RunConfig) ID() string {
	key := struct {
		Kind       RunKind  `json:"kind"`
		Preset     string   `json:"preset"`
		Scenarios  []string `json:"scenarios"`
		Commanders []string `json:"commanders"`
		Units      []string `json:"units"`
	}{
		Kind:       c.Kind,
		Preset:     c.Preset,
		Scenarios:  sortedCopy(c.Scenarios),
		Commanders: sortedCopy(c.Commanders),
		Units:      sortedCopy(c.Units),
	}
	data, _ := json.Marshal(key)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:4])
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
