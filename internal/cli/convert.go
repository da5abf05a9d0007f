package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/procview/procview/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	input      string // workbook or CSV path (positional)
	sheet      string // worksheet name, empty means first
	hierarchy  string // hierarchy artifact path
	search     string // search index artifact path
	configPath string // explicit procview.toml path
	pickSheet  bool   // interactive worksheet picker
	force      bool   // ignore the skip-unchanged stamp
	noCache    bool   // disable stamping entirely
}

// convertCommand creates the convert command, the tool's main
// operation. The bare root command runs the same conversion with all
// defaults.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert a taxonomy workbook into the JSON artifacts",
		Long: `Convert a taxonomy workbook into the JSON artifacts.

Reads the L1/L2/L3 process taxonomy from an .xlsx workbook or a .csv file
and writes hierarchy-data.json (nested tree) and search-index.json (flat,
deduplicated index). With no argument, process-hierarchy.xlsx in the
working directory is used.

Unchanged inputs are skipped: a content hash of the input is stamped after
each successful run and honored until the input or the output paths
change. Use --force to convert anyway.

Examples:
  procview convert                          # defaults, current directory
  procview convert exports/taxonomy.xlsx    # explicit input
  procview convert --sheet "FY26 Draft"     # named worksheet
  procview convert --pick-sheet             # choose a worksheet interactively`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return c.runConvert(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "worksheet to read (default: first sheet)")
	cmd.Flags().BoolVar(&opts.pickSheet, "pick-sheet", false, "pick the worksheet interactively")
	cmd.Flags().StringVar(&opts.hierarchy, "hierarchy", "", "hierarchy output path (default: hierarchy-data.json)")
	cmd.Flags().StringVar(&opts.search, "search", "", "search index output path (default: search-index.json)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: procview.toml if present)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "convert even when the input is unchanged")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable skip-unchanged stamping")

	return cmd
}

// runConvert assembles pipeline options from flags and config, then
// executes the conversion.
func (c *CLI) runConvert(ctx context.Context, cliOpts convertOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(cliOpts.configPath)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		InputPath:     cliOpts.input,
		Sheet:         cliOpts.sheet,
		HierarchyPath: cliOpts.hierarchy,
		SearchPath:    cliOpts.search,
		Force:         cliOpts.force,
		Logger:        logger,
	}
	cfg.apply(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	if cliOpts.pickSheet {
		if !isWorkbook(opts.InputPath) {
			printWarning("--pick-sheet only applies to workbooks, reading %s directly", opts.InputPath)
		} else {
			sheet, err := pickSheet(opts.InputPath)
			if err != nil {
				return err
			}
			if sheet == "" {
				printInfo("No worksheet selected")
				return nil
			}
			opts.Sheet = sheet
		}
	}

	runner, err := c.newRunner(cliOpts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %s...", opts.InputPath))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Conversion failed")
		return err
	}
	spinner.Stop()

	if result.Skipped {
		printSuccess("Up to date, nothing to do")
		for _, out := range result.Outputs {
			printFile(out)
		}
		printDetail("input unchanged since the last run (use --force to convert anyway)")
		return nil
	}

	prog.done(fmt.Sprintf("Converted %d rows into %d index entries", result.Stats.Rows, result.Stats.IndexEntries))

	printSuccess("Converted %s", opts.InputPath)
	for _, out := range result.Outputs {
		printFile(out)
	}
	printTaxonomyStats(result.Stats)
	printNextStep("Preview the artifacts", "procview serve")
	return nil
}

// isWorkbook reports whether path has a multi-sheet workbook
// extension.
func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}
