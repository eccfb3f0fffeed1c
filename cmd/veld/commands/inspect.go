package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.veld.sh/veld/internal/app"
	"go.veld.sh/veld/internal/ui/output"
	"go.veld.sh/veld/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [strings...]",
		Short: "Show layout, length and hash details for each string",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			intern, _ := cmd.Flags().GetBool("intern")

			reports, err := c.app.Report(cmd.Context(), args, app.ReportOptions{Intern: intern})
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, r := range reports {
				writeReport(out, r)
			}
			return nil
		},
	}
	cmd.Flags().Bool("intern", false, "Route inputs through the name intern table")
	return cmd
}

func writeReport(out *termenv.Output, r app.StringReport) {
	layout := "big"
	color := termenv.RGBColor(string(style.Blue))
	if r.Small {
		layout = "small"
		color = termenv.RGBColor(string(style.Green))
	}

	head := out.String(style.Dot + " " + fmt.Sprintf("%q", r.Text)).Foreground(color)
	_, _ = out.WriteString(head.String() + "\n")
	_, _ = out.WriteString(fmt.Sprintf("    length: %d units\n", r.Length))
	_, _ = out.WriteString(fmt.Sprintf("    layout: %s\n", layout))
	_, _ = out.WriteString(fmt.Sprintf("    hash:   0x%08x\n", r.Hash))
	if r.NumberPath {
		_, _ = out.WriteString(fmt.Sprintf("    number: decimal path, index %d\n", r.Index))
	}
}
