package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/export"
	"github.com/procview/procview/pkg/pipeline"
	"github.com/procview/procview/pkg/table"
	"github.com/procview/procview/pkg/taxonomy"
)

// visualizeOpts holds the command-line flags for the visualize command.
type visualizeOpts struct {
	input      string // workbook or CSV path (positional)
	sheet      string // worksheet name, empty means first
	format     string // svg, png, or dot
	output     string // output path, derived from input if empty
	configPath string // explicit procview.toml path
	maxDepth   int    // deepest level to draw (1-3)
}

// visualizeCommand creates the visualize command for rendering the
// hierarchy as a diagram.
func (c *CLI) visualizeCommand() *cobra.Command {
	opts := visualizeOpts{maxDepth: 3}

	cmd := &cobra.Command{
		Use:   "visualize [input.xlsx]",
		Short: "Render the process hierarchy as a diagram",
		Long: `Render the process hierarchy as a diagram.

Builds the same tree as convert and renders it with Graphviz instead of
writing the JSON artifacts. Large taxonomies are easier to read with
--max-depth 2, which stops at the process-group level.

Examples:
  procview visualize                        # hierarchy.svg from the default input
  procview visualize -f png -o tree.png
  procview visualize --max-depth 2          # L1 and L2 only`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return c.runVisualize(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "worksheet to read (default: first sheet)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: hierarchy.<format>)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: procview.toml if present)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", opts.maxDepth, "deepest level to draw (1-3)")

	return cmd
}

// runVisualize builds the hierarchy and renders it in the requested
// format.
func (c *CLI) runVisualize(ctx context.Context, cliOpts visualizeOpts) error {
	if cliOpts.maxDepth < 1 || cliOpts.maxDepth > 3 {
		return errors.New(errors.ErrCodeInvalidInput, "max-depth must be between 1 and 3, got %d", cliOpts.maxDepth)
	}

	cfg, err := loadConfig(cliOpts.configPath)
	if err != nil {
		return err
	}

	input := cliOpts.input
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		input = pipeline.DefaultInputPath
	}
	sheet := cliOpts.sheet
	if sheet == "" {
		sheet = cfg.Sheet
	}

	tbl, err := table.Read(input, sheet)
	if err != nil {
		return err
	}
	rows, err := taxonomy.Rows(tbl, cfg.columns())
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))
	root := taxonomy.BuildHierarchy(rows)
	prune(root, cliOpts.maxDepth)
	dot := export.ToDOT(root)

	var data []byte
	switch cliOpts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = export.RenderSVG(dot)
	case "png":
		data, err = export.RenderPNG(dot)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q, expected svg, png, or dot", cliOpts.format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", cliOpts.format, err)
	}

	output := cliOpts.output
	if output == "" {
		output = "hierarchy." + cliOpts.format
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	prog.done(fmt.Sprintf("Rendered %d rows as %s", len(rows), strings.ToUpper(cliOpts.format)))

	printSuccess("Rendered %s hierarchy", strings.ToUpper(cliOpts.format))
	printFile(output)
	return nil
}

// prune drops children below the given depth. The root counts as depth
// zero, so maxDepth 2 keeps L1 and L2 nodes.
func prune(n *taxonomy.Node, depth int) {
	if depth == 0 {
		n.Children = nil
		return
	}
	for _, c := range n.Children {
		prune(c, depth-1)
	}
}
