package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/dashboard"
)

func newReportCmd(st *cliState) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Print a plain-text report for a saved product",
		Example: `  # Print to stdout
  sustaintrack report "Water Bottle"

  # Write to a file
  sustaintrack report "Water Bottle" --out bottle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := st.findProduct(cmd, args[0])
			if err != nil {
				return err
			}

			text := dashboard.Report(p, st.now())
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}
			if err = os.WriteFile(out, []byte(text), 0o600); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the report to a file instead of stdout")
	return cmd
}
