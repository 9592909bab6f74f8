package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sc2coop/cevcalc/internal/benchmark"
	"github.com/sc2coop/cevcalc/internal/loader"
	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

var (
	unitID       string
	dataPath     string
	scenarioName string
	presetName   string
	weaponMode   string
	neighbors    int
	quiet        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "SC2 co-op candidate unit benchmark",
		Long: `Scores one unit under a combat scenario and benchmarks it against the
rest of the roster: percentile ranks, the closest comparable units and a
balance verdict. Candidate definitions come from a YAML file merged onto
the builtin catalog.`,
		Run: runEvaluate,
	}

	rootCmd.Flags().StringVarP(&unitID, "unit", "u", "", "Unit ID to evaluate (required)")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Extra YAML definitions merged onto the builtin catalog")
	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "standard", "Scoring scenario name")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "default", "Formula preset name")
	rootCmd.Flags().StringVarP(&weaponMode, "mode", "m", "", "Weapon mode override")
	rootCmd.Flags().IntVarP(&neighbors, "neighbors", "k", benchmark.DefaultNeighbors, "Nearest neighbors to show")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.MarkFlagRequired("unit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEvaluate(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭────────────────────────────╮")
		titleColor.Println("│  SC2 Co-op Unit Evaluator  │")
		titleColor.Println("│  Candidate Benchmark       │")
		titleColor.Println("╰────────────────────────────╯")
		fmt.Println()
	}

	scenario, err := models.ScenarioByName(scenarioName)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	scenario.WeaponMode = weaponMode

	cfg, err := scoring.PresetByName(presetName)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	ds := models.BuiltinDataSet()
	if dataPath != "" {
		extra, err := loader.Load(dataPath)
		if err != nil {
			color.Red("Error loading data: %v", err)
			os.Exit(1)
		}
		ds = loader.Merge(ds, extra)
	}
	if err := loader.ValidateReferences(ds); err != nil {
		color.Red("Invalid data: %v", err)
		os.Exit(1)
	}

	calc, err := scoring.NewCalculator(ds, cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	res, err := calc.Evaluate(unitID, scenario)
	if err != nil {
		color.Red("Error evaluating %s: %v", unitID, err)
		os.Exit(1)
	}

	unit, _ := ds.Unit(unitID)
	printUnitCard(unit, res)
	printComponents(res)

	if res.Unbounded {
		infoColor.Println("⚠ Unit costs nothing under this scenario; its score is unbounded and cannot be benchmarked.")
		return
	}

	pop, err := referencePopulation(calc, scenario, unitID)
	if err != nil {
		color.Red("Error building reference population: %v", err)
		os.Exit(1)
	}
	eval, err := pop.Evaluate(res, neighbors)
	if err != nil {
		color.Red("Error benchmarking %s: %v", unitID, err)
		os.Exit(1)
	}

	printBenchmark(eval, pop)
}

// referencePopulation scores the rest of the roster; the candidate itself
// stays out of its own reference set
func referencePopulation(calc *scoring.Calculator, scenario models.ScoringScenario, exclude string) (*benchmark.Population, error) {
	results, _, err := benchmark.ScoreRoster(calc, scenario)
	if err != nil {
		return nil, err
	}
	entries := make([]benchmark.Entry, 0, len(results))
	for _, r := range results {
		if r.UnitID == exclude {
			continue
		}
		entries = append(entries, benchmark.EntryFromResult(r))
	}
	return benchmark.NewPopulation(entries)
}

func printUnitCard(unit *models.UnitStats, res *scoring.Result) {
	infoColor := color.New(color.FgYellow)

	infoColor.Printf("📋 %s (%s)\n", res.UnitName, res.UnitID)
	fmt.Printf("   Commander: %s\n", res.CommanderID)
	if unit != nil {
		fmt.Printf("   Cost: %d minerals + %d gas, %.0f supply\n", unit.Minerals, unit.Gas, unit.Population)
		fmt.Printf("   Stats: %.0f HP", unit.HP)
		if unit.Shields > 0 {
			fmt.Printf(" + %.0f shields", unit.Shields)
		}
		fmt.Printf(", %.0f armor\n", unit.Armor)
		if attrs := unit.Attributes.List(); len(attrs) > 0 {
			fmt.Print("   Attributes: ")
			for i, a := range attrs {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(string(a))
			}
			fmt.Println()
		}
	}
	weapon := res.WeaponID
	if res.WeaponMode != "" {
		weapon = fmt.Sprintf("%s (%s)", weapon, res.WeaponMode)
	}
	fmt.Printf("   Weapon: %s\n", weapon)
	fmt.Printf("   Scenario: %s\n\n", res.Scenario)
}

func printComponents(res *scoring.Result) {
	successColor := color.New(color.FgGreen, color.Bold)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Component", "Value"}),
	)
	c := res.Components
	rows := [][]string{
		{"Effective DPS", fmt.Sprintf("%.2f", c.EffectiveDPS)},
		{"Effective HP", fmt.Sprintf("%.2f", c.EffectiveHP)},
		{"Effective cost", fmt.Sprintf("%.2f", c.EffectiveCost)},
		{"Operation factor", fmt.Sprintf("%.2f", c.Omega)},
		{"Range factor", fmt.Sprintf("%.3f", c.RangeFactor)},
		{"Synergy", fmt.Sprintf("%.2f", c.Synergy)},
		{"Overkill penalty", fmt.Sprintf("%.2f", c.OverkillPenalty)},
		{"Splash factor", fmt.Sprintf("%.2f", c.SplashFactor)},
		{"Population pressure", fmt.Sprintf("%.3f", c.Lambda)},
		{"Population tax", fmt.Sprintf("%.1f", res.Cost.PopulationTax)},
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	fmt.Println()
	if res.Unbounded {
		successColor.Println("✓ CEV: unbounded (zero effective cost)")
		return
	}
	successColor.Printf("✓ CEV: %.2f\n", res.CEV)
	successColor.Printf("✓ CEV per population: %.2f\n\n", res.CEVPerPopulation)
}

func printBenchmark(eval *benchmark.Evaluation, pop *benchmark.Population) {
	infoColor := color.New(color.FgYellow)

	infoColor.Printf("📊 Against %d reference units:\n", pop.Size())
	fmt.Printf("   CEV percentile: %.1f\n", eval.Percentiles.CEV)
	fmt.Printf("   DPS percentile: %.1f\n", eval.Percentiles.DPS)
	fmt.Printf("   EHP percentile: %.1f\n\n", eval.Percentiles.EHP)

	if len(eval.Neighbors) > 0 {
		infoColor.Println("🔍 Closest comparable units:")
		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithHeader([]string{"Unit", "Commander", "CEV", "DPS", "EHP", "Cost", "Distance"}),
		)
		for _, n := range eval.Neighbors {
			table.Append([]string{
				n.UnitName,
				n.CommanderID,
				fmt.Sprintf("%.2f", n.CEV),
				fmt.Sprintf("%.1f", n.EffectiveDPS),
				fmt.Sprintf("%.1f", n.EffectiveHP),
				fmt.Sprintf("%.1f", n.EffectiveCost),
				fmt.Sprintf("%.2f", n.Distance),
			})
		}
		table.Render()
		fmt.Println()
	}

	verdict := eval.Assessment
	classColor := color.New(color.FgGreen, color.Bold)
	switch verdict.Class {
	case benchmark.ClassSlightlyStrong, benchmark.ClassSlightlyWeak:
		classColor = color.New(color.FgYellow, color.Bold)
	case benchmark.ClassOverpowered, benchmark.ClassUnderpowered:
		classColor = color.New(color.FgRed, color.Bold)
	}

	classColor.Printf("⚖  Verdict: %s (%.2f std from mean %.2f)\n", verdict.Class, verdict.Deviation, verdict.MeanCEV)
	fmt.Printf("   %s\n", verdict.Recommendation)
}
