package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
	"github.com/rshade/sustaintrack/internal/footprint"
)

func newFactorsCmd(st *cliState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factors in effect",
		Long: `Show the material, transport and energy emission factors in effect,
including any overrides from --factors, SUSTAINTRACK_FACTORS or factors.file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := st.resolveOutput(output)
			if err != nil {
				return err
			}
			factors, err := st.factors(cmd.Context())
			if err != nil {
				return err
			}
			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), factors)
			}
			return renderFactors(cmd.OutOrStdout(), factors)
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func renderFactors(w io.Writer, f footprint.Factors) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Category\tKey\tFactor\tUnit")
	fmt.Fprintln(tw, "--------\t---\t------\t----")
	for _, m := range footprint.MaterialTypes() {
		fmt.Fprintf(tw, "material\t%s\t%g\tkg CO2e/kg\n", m, f.Material[m])
	}
	for _, t := range footprint.TransportMethods() {
		fmt.Fprintf(tw, "transport\t%s\t%g\tkg CO2e/tonne-km\n", t, f.Transport[t])
	}
	for _, e := range footprint.EnergySources() {
		fmt.Fprintf(tw, "energy\t%s\t%g\tkg CO2e/kWh\n", e, f.Energy[e])
	}
	return tw.Flush()
}
