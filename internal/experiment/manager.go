package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Run status values stored in metadata.json
const (
	StatusCreated   = "created"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Metadata identifies one run instance. The config ID is stable across
// runs of the same parameters; the run ID is unique per invocation.
type Metadata struct {
	ConfigID    string `json:"config_id"`
	RunID       string `json:"run_id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated,omitempty"`
	Dir         string `json:"dir"`
}

// Manager creates and inspects run directories under one base directory.
//
// Layout:
//
//	<base>/results/<kind>/<date>/<time>_<name>_<configID>/
//	    .experiment/config.yaml
//	    .experiment/metadata.json
//	    .experiment/summary.json
//	    data/
type Manager struct {
	BaseDir string
}

// NewManager prepares the base directory structure
func NewManager(baseDir string) (*Manager, error) {
	m := &Manager{BaseDir: baseDir}
	for _, dir := range []string{m.resultsDir(), filepath.Join(baseDir, "configs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return m, nil
}

func (m *Manager) resultsDir() string {
	return filepath.Join(m.BaseDir, "results")
}

// RunDir is one materialized run directory
type RunDir struct {
	Path string
	Meta Metadata
}

// MetaDir returns the hidden bookkeeping directory of the run
func (r RunDir) MetaDir() string {
	return filepath.Join(r.Path, ".experiment")
}

// DataDir returns the directory run output data goes into
func (r RunDir) DataDir() string {
	return filepath.Join(r.Path, "data")
}

// CreateRunDir materializes a directory for one run and records its
// configuration and metadata inside it
func (m *Manager) CreateRunDir(cfg *RunConfig, now time.Time) (RunDir, error) {
	dirName := fmt.Sprintf("%s_%s_%s", now.Format("15-04-05"), safeName(cfg.Name), cfg.ID())
	path := filepath.Join(m.resultsDir(), string(cfg.Kind), now.Format("2006-01-02"), dirName)

	run := RunDir{
		Path: path,
		Meta: Metadata{
			ConfigID:  cfg.ID(),
			RunID:     uuid.NewString(),
			Name:      cfg.Name,
			Kind:      string(cfg.Kind),
			Timestamp: now.Format(time.RFC3339),
			Status:    StatusCreated,
			Dir:       path,
		},
	}

	for _, dir := range []string{run.MetaDir(), run.DataDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return RunDir{}, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	cfgData, err := yaml.Marshal(cfg)
	if err != nil {
		return RunDir{}, fmt.Errorf("failed to marshal run config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(run.MetaDir(), "config.yaml"), cfgData, 0o644); err != nil {
		return RunDir{}, fmt.Errorf("failed to write run config: %w", err)
	}

	if err := writeMetadata(run.MetaDir(), run.Meta); err != nil {
		return RunDir{}, err
	}
	return run, nil
}

func safeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}

func writeMetadata(metaDir string, meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(metaDir, "metadata.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}

// UpdateStatus rewrites the run's status in metadata.json
func (m *Manager) UpdateStatus(run *RunDir, status string) error {
	run.Meta.Status = status
	run.Meta.LastUpdated = time.Now().Format(time.RFC3339)
	return writeMetadata(run.MetaDir(), run.Meta)
}

// SaveSummary stores the result summary of a completed run and marks it
// completed
func (m *Manager) SaveSummary(run *RunDir, summary any) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(run.MetaDir(), "summary.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return m.UpdateStatus(run, StatusCompleted)
}

// LoadRunConfig reads the configuration a run was created with
func (m *Manager) LoadRunConfig(runPath string) (*RunConfig, error) {
	return LoadConfig(filepath.Join(runPath, ".experiment", "config.yaml"))
}

// ListRuns returns the metadata of recorded runs, newest first. An empty
// kind lists every run.
func (m *Manager) ListRuns(kind RunKind) ([]Metadata, error) {
	var runs []Metadata

	kindDirs, err := os.ReadDir(m.resultsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	for _, kd := range kindDirs {
		if !kd.IsDir() {
			continue
		}
		if kind != "" && kd.Name() != string(kind) {
			continue
		}
		dateDirs, err := os.ReadDir(filepath.Join(m.resultsDir(), kd.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", kd.Name(), err)
		}
		for _, dd := range dateDirs {
			if !dd.IsDir() {
				continue
			}
			runDirs, err := os.ReadDir(filepath.Join(m.resultsDir(), kd.Name(), dd.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", dd.Name(), err)
			}
			for _, rd := range runDirs {
				if !rd.IsDir() {
					continue
				}
				metaPath := filepath.Join(m.resultsDir(), kd.Name(), dd.Name(), rd.Name(),
					".experiment", "metadata.json")
				data, err := os.ReadFile(metaPath)
				if err != nil {
					// Not a run directory, skip it
					continue
				}
				var meta Metadata
				if err := json.Unmarshal(data, &meta); err != nil {
					return nil, fmt.Errorf("failed to parse %s: %w", metaPath, err)
				}
				runs = append(runs, meta)
			}
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp != runs[j].Timestamp {
			return runs[i].Timestamp > runs[j].Timestamp
		}
		return runs[i].RunID < runs[j].RunID
	})
	return runs, nil
}

// LatestRun returns the newest recorded run of the given kind
func (m *Manager) LatestRun(kind RunKind) (Metadata, bool, error) {
	runs, err := m.ListRuns(kind)
	if err != nil {
		return Metadata{}, false, err
	}
	if len(runs) == 0 {
		return Metadata{}, false, nil
	}
	return runs[0], true, nil
}
