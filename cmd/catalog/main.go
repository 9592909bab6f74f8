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
	"github.com/sc2coop/cevcalc/internal/store"
)

var (
	dbPath        string
	dataPath      string
	commanderID   string
	attributeName string
	minBonus      float64
	scenarioName  string
	presetName    string
	limit         int
	quiet         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "SC2 co-op unit catalog database",
		Long: `Maintains the unit catalog in SQLite: import definitions, query units
and counters, and persist computed CEV scores for later comparison.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				return
			}
			titleColor := color.New(color.FgCyan, color.Bold)
			titleColor.Println("\n╭────────────────────────────╮")
			titleColor.Println("│  SC2 Co-op Unit Evaluator  │")
			titleColor.Println("│  Catalog Database          │")
			titleColor.Println("╰────────────────────────────╯")
			fmt.Println()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "catalog.db", "Path to the SQLite catalog database")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import the builtin catalog (plus optional YAML) into the database",
		Run:   runImport,
	}
	importCmd.Flags().StringVarP(&dataPath, "data", "d", "", "Extra YAML definitions merged onto the builtin catalog")

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List catalog units",
		Run:   runUnits,
	}
	unitsCmd.Flags().StringVarP(&commanderID, "commander", "c", "", "Filter by commander ID")
	unitsCmd.Flags().StringVarP(&attributeName, "attribute", "a", "", "Filter by attribute tag")

	countersCmd := &cobra.Command{
		Use:   "counters",
		Short: "Find units whose weapons counter an attribute",
		Run:   runCounters,
	}
	countersCmd.Flags().StringVarP(&attributeName, "attribute", "a", "", "Target attribute (required)")
	countersCmd.Flags().Float64Var(&minBonus, "min-bonus", 5, "Minimum bonus damage")
	countersCmd.MarkFlagRequired("attribute")

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Score the stored catalog and persist the results",
		Run:   runScore,
	}
	scoreCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "standard", "Scoring scenario name")
	scoreCmd.Flags().StringVarP(&presetName, "preset", "p", "default", "Formula preset name")

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best persisted scores for a scenario",
		Run:   runTop,
	}
	topCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "standard", "Scoring scenario name")
	topCmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of scores to show")

	rootCmd.AddCommand(importCmd, unitsCmd, countersCmd, scoreCmd, topCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore() *store.Store {
	s, err := store.Open(dbPath)
	if err != nil {
		color.Red("Error opening catalog database: %v", err)
		os.Exit(1)
	}
	return s
}

func parseAttribute(name string) models.UnitAttribute {
	for _, a := range models.AllUnitAttributes() {
		if string(a) == name {
			return a
		}
	}
	color.Red("Error: unknown attribute %q", name)
	os.Exit(1)
	return ""
}

func runImport(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)

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

	s := openStore()
	defer s.Close()

	if err := s.ImportDataSet(ds); err != nil {
		color.Red("Error importing catalog: %v", err)
		os.Exit(1)
	}
	successColor.Printf("✓ Imported %d units, %d weapons, %d commanders into %s\n",
		len(ds.Units), len(ds.Weapons), len(ds.Commanders), dbPath)
}

func runUnits(cmd *cobra.Command, args []string) {
	s := openStore()
	defer s.Close()

	var units []*models.UnitStats
	var err error
	switch {
	case attributeName != "":
		units, err = s.UnitsWithAttribute(parseAttribute(attributeName))
	case commanderID != "":
		units, err = s.UnitsByCommander(commanderID)
	default:
		var ds *models.DataSet
		ds, err = s.LoadDataSet()
		if ds != nil {
			units = ds.Units
		}
	}
	if err != nil {
		color.Red("Error querying units: %v", err)
		os.Exit(1)
	}

	// Attribute and commander filters can combine
	if attributeName != "" && commanderID != "" {
		var kept []*models.UnitStats
		for _, u := range units {
			if u.Commander == commanderID {
				kept = append(kept, u)
			}
		}
		units = kept
	}

	if len(units) == 0 {
		fmt.Println("No matching units.")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Unit", "Commander", "Minerals", "Gas", "Supply", "HP", "Shields", "Armor", "Attributes"}),
	)
	for _, u := range units {
		attrs := ""
		for i, a := range u.Attributes.List() {
			if i > 0 {
				attrs += ", "
			}
			attrs += string(a)
		}
		table.Append([]string{
			u.Name,
			u.Commander,
			fmt.Sprintf("%d", u.Minerals),
			fmt.Sprintf("%d", u.Gas),
			fmt.Sprintf("%.0f", u.Population),
			fmt.Sprintf("%.0f", u.HP),
			fmt.Sprintf("%.0f", u.Shields),
			fmt.Sprintf("%.0f", u.Armor),
			attrs,
		})
	}
	table.Render()
}

func runCounters(cmd *cobra.Command, args []string) {
	s := openStore()
	defer s.Close()

	counters, err := s.CounterUnits(parseAttribute(attributeName), minBonus)
	if err != nil {
		color.Red("Error querying counters: %v", err)
		os.Exit(1)
	}
	if len(counters) == 0 {
		fmt.Printf("No units counter %q with at least %.0f bonus damage.\n", attributeName, minBonus)
		return
	}

	fmt.Printf("🎯 Units countering %q:\n", attributeName)
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Unit", "Commander", "Weapon", "Bonus", "Base DPS", "Bonus DPS"}),
	)
	for _, c := range counters {
		table.Append([]string{
			c.UnitName,
			c.CommanderID,
			c.WeaponName,
			fmt.Sprintf("%.0f", c.BonusDamage),
			fmt.Sprintf("%.1f", c.BaseDPS),
			fmt.Sprintf("%.1f", c.BonusDPS),
		})
	}
	table.Render()
}

func runScore(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

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

	s := openStore()
	defer s.Close()

	ds, err := s.LoadDataSet()
	if err != nil {
		color.Red("Error loading catalog: %v", err)
		os.Exit(1)
	}
	if len(ds.Units) == 0 {
		color.Red("Catalog is empty; run import first")
		os.Exit(1)
	}

	calc, err := scoring.NewCalculator(ds, cfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	ranked, skipped, err := benchmark.RankRoster(calc, scenario, false)
	if err != nil {
		color.Red("Error scoring catalog: %v", err)
		os.Exit(1)
	}

	for _, e := range ranked {
		if err := s.SaveScore(e.Result); err != nil {
			color.Red("Error saving score: %v", err)
			os.Exit(1)
		}
	}
	for _, sk := range skipped {
		infoColor.Printf("   ⚠ skipped %s: %s\n", sk.UnitID, sk.Reason)
	}
	successColor.Printf("✓ Scored and persisted %d units under %q\n", len(ranked), scenarioName)
}

func runTop(cmd *cobra.Command, args []string) {
	s := openStore()
	defer s.Close()

	scores, err := s.TopScores(scenarioName, limit)
	if err != nil {
		color.Red("Error querying scores: %v", err)
		os.Exit(1)
	}
	if len(scores) == 0 {
		fmt.Printf("No persisted scores for %q; run score first.\n", scenarioName)
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Unit", "Weapon", "CEV", "CEV/Pop", "DPS", "EHP", "Cost"}),
	)
	for _, sc := range scores {
		weapon := sc.WeaponID
		if sc.WeaponMode != "" {
			weapon = fmt.Sprintf("%s (%s)", weapon, sc.WeaponMode)
		}
		table.Append([]string{
			sc.UnitID,
			weapon,
			fmt.Sprintf("%.2f", sc.CEV),
			fmt.Sprintf("%.2f", sc.CEVPerPopulation),
			fmt.Sprintf("%.1f", sc.EffectiveDPS),
			fmt.Sprintf("%.1f", sc.EffectiveHP),
			fmt.Sprintf("%.1f", sc.EffectiveCost),
		})
	}
	table.Render()
}
