package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/tui"
)

func newRecommendationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"recs"},
		Short:   "Show general footprint reduction recommendations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRecommendations(dashboard.Recommendations()))
			return nil
		},
	}
}
