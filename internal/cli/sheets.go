package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/procview/procview/pkg/pipeline"
	"github.com/procview/procview/pkg/table"
)

// sheetsCommand creates the sheets command for listing the worksheets
// of a workbook.
func (c *CLI) sheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the worksheets of a workbook",
		Long: `List the worksheets of a workbook.

Useful to find the right --sheet value for convert when a workbook holds
drafts or notes next to the taxonomy sheet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := pipeline.DefaultInputPath
			if len(args) == 1 {
				input = args[0]
			}

			sheets, err := table.Sheets(input)
			if err != nil {
				return err
			}

			printInfo("%s has %d worksheet(s)", input, len(sheets))
			for i, sheet := range sheets {
				fmt.Println("  " + StyleDim.Render(fmt.Sprintf("%d.", i+1)) + " " + StyleValue.Render(sheet))
			}
			return nil
		},
	}
}
