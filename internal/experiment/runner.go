package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sc2coop/cevcalc/internal/benchmark"
	"github.com/sc2coop/cevcalc/internal/loader"
	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

// Runner executes run configurations and records their results through
// the manager
type Runner struct {
	Manager *Manager

	// Now is a clock seam for tests; nil means time.Now
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// ScenarioReport holds the ranking outcome of one scenario
type ScenarioReport struct {
	Scenario string
	Ranked   []benchmark.RankedEntry
	Skipped  []benchmark.Skip
}

// RunReport is the in-memory result of one executed run
type RunReport struct {
	Run       RunDir
	Scenarios []ScenarioReport
}

// ScenarioSummary is the persisted digest of one scenario's ranking
type ScenarioSummary struct {
	Scenario string  `json:"scenario"`
	Units    int     `json:"units"`
	Skipped  int     `json:"skipped"`
	TopUnit  string  `json:"top_unit,omitempty"`
	TopCEV   float64 `json:"top_cev,omitempty"`
	MeanCEV  float64 `json:"mean_cev,omitempty"`
}

type rankingRow struct {
	Rank             int     `json:"rank"`
	UnitID           string  `json:"unit_id"`
	UnitName         string  `json:"unit_name"`
	CommanderID      string  `json:"commander_id"`
	CEV              float64 `json:"cev"`
	CEVPerPopulation float64 `json:"cev_per_population"`
	EffectiveDPS     float64 `json:"effective_dps"`
	EffectiveHP      float64 `json:"effective_hp"`
	EffectiveCost    float64 `json:"effective_cost"`
}

// Run executes one configuration: it assembles the data set, scores every
// requested scenario and records rankings and a summary in a fresh run
// directory.
func (r *Runner) Run(cfg *RunConfig) (*RunReport, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ds, err := assembleData(cfg)
	if err != nil {
		return nil, err
	}
	scoringCfg, err := scoring.PresetByName(cfg.Preset)
	if err != nil {
		return nil, err
	}
	calc, err := scoring.NewCalculator(ds, scoringCfg)
	if err != nil {
		return nil, err
	}

	run, err := r.Manager.CreateRunDir(cfg, r.now())
	if err != nil {
		return nil, err
	}
	if err := r.Manager.UpdateStatus(&run, StatusRunning); err != nil {
		return nil, err
	}

	report := &RunReport{Run: run}
	var summaries []ScenarioSummary
	for _, name := range cfg.Scenarios {
		scenario, err := models.ScenarioByName(name)
		if err != nil {
			r.Manager.UpdateStatus(&run, StatusFailed)
			return nil, err
		}
		ranked, skipped, err := benchmark.RankRoster(calc, scenario, cfg.PerPopulation)
		if err != nil {
			r.Manager.UpdateStatus(&run, StatusFailed)
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		report.Scenarios = append(report.Scenarios, ScenarioReport{
			Scenario: name,
			Ranked:   ranked,
			Skipped:  skipped,
		})
		summaries = append(summaries, summarize(name, ranked, skipped))

		if cfg.SaveRaw {
			if err := writeRanking(run.DataDir(), name, ranked); err != nil {
				r.Manager.UpdateStatus(&run, StatusFailed)
				return nil, err
			}
		}
	}

	if err := r.Manager.SaveSummary(&run, summaries); err != nil {
		return nil, err
	}
	report.Run = run
	return report, nil
}

func assembleData(cfg *RunConfig) (*models.DataSet, error) {
	ds := models.BuiltinDataSet()
	if cfg.DataPath != "" {
		extra, err := loader.Load(cfg.DataPath)
		if err != nil {
			return nil, err
		}
		ds = loader.Merge(ds, extra)
	}
	if err := loader.ValidateReferences(ds); err != nil {
		return nil, err
	}
	return filterRoster(ds, cfg)
}

// filterRoster narrows the unit roster to the configured commanders and
// unit IDs. Asking for an unknown unit is an error rather than an empty
// result.
func filterRoster(ds *models.DataSet, cfg *RunConfig) (*models.DataSet, error) {
	units := ds.Units
	if len(cfg.Commanders) > 0 {
		var kept []*models.UnitStats
		for _, u := range units {
			for _, c := range cfg.Commanders {
				if u.Commander == c {
					kept = append(kept, u)
					break
				}
			}
		}
		units = kept
	}
	if len(cfg.Units) > 0 {
		var kept []*models.UnitStats
		for _, id := range cfg.Units {
			found := false
			for _, u := range units {
				if u.ID == id {
					kept = append(kept, u)
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("run config names unknown unit %q", id)
			}
		}
		units = kept
	}
	return models.NewDataSet(units, ds.Weapons, ds.Commanders), nil
}

func summarize(scenario string, ranked []benchmark.RankedEntry, skipped []benchmark.Skip) ScenarioSummary {
	s := ScenarioSummary{
		Scenario: scenario,
		Units:    len(ranked),
		Skipped:  len(skipped),
	}
	if len(ranked) == 0 {
		return s
	}
	s.TopUnit = ranked[0].UnitID
	s.TopCEV = ranked[0].CEV
	var sum float64
	for _, e := range ranked {
		sum += e.CEV
	}
	s.MeanCEV = sum / float64(len(ranked))
	return s
}

func writeRanking(dataDir, scenario string, ranked []benchmark.RankedEntry) error {
	rows := make([]rankingRow, 0, len(ranked))
	for _, e := range ranked {
		rows = append(rows, rankingRow{
			Rank:             e.Rank,
			UnitID:           e.UnitID,
			UnitName:         e.UnitName,
			CommanderID:      e.CommanderID,
			CEV:              e.CEV,
			CEVPerPopulation: e.CEVPerPopulation,
			EffectiveDPS:     e.EffectiveDPS,
			EffectiveHP:      e.EffectiveHP,
			EffectiveCost:    e.EffectiveCost,
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranking: %w", err)
	}
	path := filepath.Join(dataDir, fmt.Sprintf("ranking_%s.json", scenario))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ranking: %w", err)
	}
	return nil
}
