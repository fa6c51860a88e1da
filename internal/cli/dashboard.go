package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/tui"
)

func newDashboardCmd(st *cliState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show category totals, product comparison and monthly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := st.resolveOutput(output)
			if err != nil {
				return err
			}
			session, err := st.openSession(cmd.Context())
			if err != nil {
				return err
			}

			summary := dashboard.Summarize(session.Products())
			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDashboard(summary, terminalWidth()))
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
