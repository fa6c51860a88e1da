package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/export"
	"github.com/rshade/sustaintrack/internal/logging"
)

// defaultExportFile is the workbook written when --out is not given.
const defaultExportFile = "sustaintrack.xlsx"

func newExportCmd(st *cliState) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved products and dashboard data to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			session, err := st.openSession(ctx)
			if err != nil {
				return err
			}

			products := session.Products()
			if err = export.WriteFile(out, products); err != nil {
				return err
			}

			logging.FromContext(ctx).Info().
				Str("path", out).
				Int("count", len(products)).
				Msg("workbook exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products to %s\n", len(products), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", defaultExportFile, "destination workbook")
	return cmd
}
