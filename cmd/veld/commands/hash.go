package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.veld.sh/veld/internal/app"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [strings...]",
		Short: "Print the runtime hash of each string",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			intern, _ := cmd.Flags().GetBool("intern")
			jobs, _ := cmd.Flags().GetInt("jobs")
			asJSON, _ := cmd.Flags().GetBool("json")

			reports, err := c.app.Report(cmd.Context(), args, app.ReportOptions{
				Intern: intern,
				Jobs:   jobs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			for _, r := range reports {
				_, _ = fmt.Fprintf(out, "%08x  %s\n", r.Hash, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().Bool("intern", false, "Route inputs through the name intern table")
	cmd.Flags().IntP("jobs", "j", 0, "Number of inputs to process concurrently (0 = one per CPU)")
	cmd.Flags().Bool("json", false, "Emit reports as JSON")
	return cmd
}
