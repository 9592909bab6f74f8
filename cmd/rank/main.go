package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sc2coop/cevcalc/internal/benchmark"
	"github.com/sc2coop/cevcalc/internal/experiment"
	"github.com/sc2coop/cevcalc/internal/loader"
	"github.com/sc2coop/cevcalc/internal/models"
	"github.com/sc2coop/cevcalc/internal/scoring"
)

var (
	scenarioName string
	presetName   string
	dataPath     string
	perPop       bool
	topN         int
	quiet        bool
	configFile   string
	runsDir      string
	listRuns     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rank",
		Short: "SC2 co-op roster CEV leaderboard",
		Long: `Scores every unit of the roster under one combat scenario and prints
the resulting Combat Effectiveness Value leaderboard. With a run config
file the ranking is executed as a recorded experiment instead.`,
		Run: runRank,
	}

	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "standard", "Scoring scenario name")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "default", "Formula preset name")
	rootCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Extra YAML definitions merged onto the builtin catalog")
	rootCmd.Flags().BoolVar(&perPop, "per-pop", false, "Order by CEV per effective population")
	rootCmd.Flags().IntVarP(&topN, "top", "t", 0, "Show only the top N units (0 = all)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Run config file; executes a recorded experiment")
	rootCmd.Flags().StringVar(&runsDir, "runs-dir", "experiments", "Base directory for recorded runs")
	rootCmd.Flags().BoolVar(&listRuns, "list", false, "List recorded runs and exit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRank(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭────────────────────────────╮")
		titleColor.Println("│  SC2 Co-op Unit Evaluator  │")
		titleColor.Println("│  Roster CEV Ranking        │")
		titleColor.Println("╰────────────────────────────╯")
		fmt.Println()
	}

	if listRuns {
		printRecordedRuns()
		return
	}
	if configFile != "" {
		runRecorded()
		return
	}

	scenario, err := models.ScenarioByName(scenarioName)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	cfg, err := scoring.PresetByName(presetName)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	ds, err := assembleData()
	if err != nil {
		color.Red("Error loading data: %v", err)
		os.Exit(1)
	}
	if !quiet {
		infoColor.Printf("📦 Loaded %d units, %d weapons, %d commanders\n\n",
			len(ds.Units), len(ds.Weapons), len(ds.Commanders))
	}

	calc, err := scoring.NewCalculator(ds, cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("🔄 Scoring roster under %q with preset %q...\n\n", scenarioName, presetName)
	}
	ranked, skipped, err := benchmark.RankRoster(calc, scenario, perPop)
	if err != nil {
		color.Red("Error scoring roster: %v", err)
		os.Exit(1)
	}

	printRanking(ranked)

	for _, sk := range skipped {
		infoColor.Printf("   ⚠ skipped %s: %s\n", sk.UnitID, sk.Reason)
	}

	if len(ranked) > 0 {
		entries := make([]benchmark.Entry, 0, len(ranked))
		for _, e := range ranked {
			entries = append(entries, e.Entry)
		}
		pop, err := benchmark.NewPopulation(entries)
		if err == nil {
			fmt.Println()
			successColor.Printf("✓ Ranked %d units\n", len(ranked))
			fmt.Printf("   Population mean CEV: %.2f (std %.2f)\n", pop.MeanCEV(), pop.StdCEV())
		}
	}
}

func assembleData() (*models.DataSet, error) {
	ds := models.BuiltinDataSet()
	if dataPath != "" {
		extra, err := loader.Load(dataPath)
		if err != nil {
			return nil, err
		}
		ds = loader.Merge(ds, extra)
	}
	if err := loader.ValidateReferences(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func printRanking(ranked []benchmark.RankedEntry) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Unit", "Commander", "Weapon", "CEV", "CEV/Pop", "DPS", "EHP", "Cost"}),
	)

	for _, e := range ranked {
		if topN > 0 && e.Rank > topN {
			break
		}
		weapon := e.Result.WeaponID
		if e.Result.WeaponMode != "" {
			weapon = fmt.Sprintf("%s (%s)", weapon, e.Result.WeaponMode)
		}
		row := []string{
			fmt.Sprintf("%d", e.Rank),
			e.UnitName,
			e.CommanderID,
			weapon,
			fmt.Sprintf("%.2f", e.CEV),
			fmt.Sprintf("%.2f", e.CEVPerPopulation),
			fmt.Sprintf("%.1f", e.EffectiveDPS),
			fmt.Sprintf("%.1f", e.EffectiveHP),
			fmt.Sprintf("%.1f", e.EffectiveCost),
		}
		table.Append(row)
	}
	table.Render()
}

func runRecorded() {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	cfg, err := experiment.LoadConfig(configFile)
	if err != nil {
		color.Red("Error loading run config: %v", err)
		os.Exit(1)
	}
	mgr, err := experiment.NewManager(runsDir)
	if err != nil {
		color.Red("Error preparing runs directory: %v", err)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("🔄 Running %q (%s)...\n\n", cfg.Name, cfg.Kind)
	}
	runner := &experiment.Runner{Manager: mgr}
	report, err := runner.Run(cfg)
	if err != nil {
		color.Red("Error running experiment: %v", err)
		os.Exit(1)
	}

	for _, sr := range report.Scenarios {
		fmt.Printf("📊 Scenario %s:\n", sr.Scenario)
		printRanking(sr.Ranked)
		for _, sk := range sr.Skipped {
			infoColor.Printf("   ⚠ skipped %s: %s\n", sk.UnitID, sk.Reason)
		}
		fmt.Println()
	}

	successColor.Printf("✓ Run recorded in %s\n", report.Run.Path)
}

func printRecordedRuns() {
	mgr, err := experiment.NewManager(runsDir)
	if err != nil {
		color.Red("Error preparing runs directory: %v", err)
		os.Exit(1)
	}
	runs, err := mgr.ListRuns("")
	if err != nil {
		color.Red("Error listing runs: %v", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Time", "Kind", "Name", "Status", "Config ID"}),
	)
	for _, r := range runs {
		table.Append([]string{r.Timestamp, r.Kind, r.Name, r.Status, r.ConfigID})
	}
	table.Render()
}
