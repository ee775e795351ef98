package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/StinkyLord/pcb-part-matcher/internal/design"
	"github.com/StinkyLord/pcb-part-matcher/internal/inventory"
	"github.com/StinkyLord/pcb-part-matcher/internal/match"
	"github.com/StinkyLord/pcb-part-matcher/internal/output"
)

const toolVersion = "1.0.0"

var (
	flagInventory  string
	flagComponents string
	flagOutput     string
	flagFormat     string
	flagVerbose    bool
	flagDebug      bool
	flagAlternates bool
)

var rootCmd = &cobra.Command{
	Use:   "pcb-part-matcher",
	Short: "PCB component to inventory matching engine",
	Long: `pcb-part-matcher pairs the components of a board design with the parts
of a stocked inventory and produces an order-ready BOM.

Matching works in three stages:
  • Hard filters   — component type, package and electrical value must agree
  • Scoring        — tolerance, ratings and part-specific attributes rank the
                     surviving candidates
  • Diagnostics    — every component that matched nothing gets an explanation
                     of which filter excluded the whole inventory

Values are compared numerically, so "4.7k", "4K7" and "4700" all name the
same resistance regardless of how design and inventory spell it.`,
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a component list against an inventory",
	Long: `Match a design's component list against a part inventory and write the
resulting BOM.

The inventory may be CSV, JSON or YAML (chosen by extension); the component
list is the CSV exported from the schematic editor.

Examples:
  pcb-part-matcher match --inventory parts.csv --components board.csv --output bom.csv
  pcb-part-matcher match -i parts.yaml -c board.csv -o - --format table
  pcb-part-matcher match -i parts.json -c board.csv --verbose`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&flagInventory, "inventory", "i", "", "Inventory catalog file (csv, json or yaml)")
	matchCmd.Flags().StringVarP(&flagComponents, "components", "c", "", "Component list CSV exported from the design")
	matchCmd.Flags().StringVarP(&flagOutput, "output", "o", "bom.csv", "Output file path (use '-' for stdout)")
	matchCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv, table")
	matchCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Surface tied alternates and full diagnostics")
	matchCmd.Flags().BoolVar(&flagDebug, "debug", false, "Dump per-candidate score traces to stderr")
	matchCmd.Flags().BoolVar(&flagAlternates, "alternates", false, "Surface tied alternate parts without full verbose output")
	_ = matchCmd.MarkFlagRequired("inventory")
	_ = matchCmd.MarkFlagRequired("components")

	rootCmd.AddCommand(matchCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	items, err := inventory.Load(flagInventory)
	if err != nil {
		return fmt.Errorf("loading inventory: %w", err)
	}
	components, err := design.Load(flagComponents)
	if err != nil {
		return fmt.Errorf("loading component list: %w", err)
	}

	fmt.Fprintf(os.Stderr, "pcb-part-matcher v%s\n", toolVersion)
	fmt.Fprintf(os.Stderr, "Inventory:  %d item(s) from %s\n", len(items), flagInventory)
	fmt.Fprintf(os.Stderr, "Components: %d from %s\n", len(components), flagComponents)

	engine := match.New(items)
	engine.Verbose = flagVerbose || flagDebug || flagAlternates
	grouped := engine.GroupAndMatch(components)

	matched := 0
	for _, g := range grouped.Groups {
		if len(g.Results) > 0 {
			matched++
		}
	}
	fmt.Fprintf(os.Stderr, "Matched %d of %d group(s)\n", matched, len(grouped.Groups))

	if flagDebug {
		for _, g := range grouped.Groups {
			for _, r := range g.Results {
				fmt.Fprintf(os.Stderr, "trace %s -> %s:\n%s", g.References, r.Item.IPN, spew.Sdump(r.Trace))
			}
		}
	}

	switch flagFormat {
	case "csv":
		if err := output.WriteBOMCSV(grouped, flagOutput); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
		if flagOutput != "-" {
			fmt.Fprintf(os.Stderr, "BOM written to: %s\n", flagOutput)
		}
	case "table":
		dest := os.Stdout
		if flagOutput != "-" && flagOutput != "" {
			f, err := os.Create(flagOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			dest = f
		}
		if err := output.WriteTable(dest, grouped, flagVerbose || flagAlternates); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (supported: csv, table)", flagFormat)
	}
	return nil
}
