package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
	"github.com/rshade/sustaintrack/internal/footprint"
	"github.com/rshade/sustaintrack/internal/greenops"
	"github.com/rshade/sustaintrack/internal/input"
	"github.com/rshade/sustaintrack/internal/logging"
	"github.com/rshade/sustaintrack/internal/tui"
)

// calculateParams holds the flags of the calculate command.
type calculateParams struct {
	file          string
	name          string
	materials     []string
	energy        float64
	energySource  string
	transport     string
	distance      float64
	lifespan      float64
	recyclability float64
	save          bool
	output        string
}

// productFlags are the flags that describe a product inline.
//
//nolint:gochecknoglobals // Read-only flag name list.
var productFlags = []string{
	"name", "material", "energy", "energy-source", "transport",
	"distance", "lifespan", "recyclability",
}

// calculationOutput is the JSON shape of a calculation.
type calculationOutput struct {
	Product       footprint.Product `json:"product"`
	Rating        footprint.Rating  `json:"rating"`
	Equivalencies *greenops.Output  `json:"equivalencies,omitempty"`
	Saved         bool              `json:"saved"`
}

func newCalculateCmd(st *cliState) *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the carbon footprint of a product",
		Long: `Calculate the carbon footprint of a product in kg CO2e.

The product is described either by a YAML or JSON file (--file) or inline
with flags. Materials are given as type:weight_kg[:sourcing_distance_km] and
may be repeated. Use --save to add the result to the saved products; a
product with the same name is replaced.`,
		Example: `  # Inline description
  sustaintrack calculate --name Kettle --material steel:1.2:300 \
    --material plastic:0.3 --energy 12 --energy-source mixed \
    --transport ship --distance 9000 --lifespan 8 --recyclability 70

  # From a file, saved to the dashboard, as JSON
  sustaintrack calculate --file kettle.yaml --save --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, st, params)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&params.file, "file", "f", "", "product description file (YAML or JSON)")
	f.StringVar(&params.name, "name", "", "product name")
	f.StringArrayVarP(&params.materials, "material", "m", nil, "material as type:weight_kg[:sourcing_km] (repeatable)")
	f.Float64Var(&params.energy, "energy", 0, "manufacturing energy in kWh")
	f.StringVar(&params.energySource, "energy-source", string(footprint.EnergyGrid), "energy source: grid, renewable or mixed")
	f.StringVar(&params.transport, "transport", string(footprint.TransportTruck), "distribution method: truck, rail, ship or air")
	f.Float64Var(&params.distance, "distance", 0, "distribution distance in km")
	f.Float64Var(&params.lifespan, "lifespan", 0, "product lifespan in years")
	f.Float64Var(&params.recyclability, "recyclability", 0, "recyclability percentage (0-100)")
	f.BoolVar(&params.save, "save", false, "save the result to the product store")
	addOutputFlag(cmd, &params.output)

	return cmd
}

func executeCalculate(cmd *cobra.Command, st *cliState, params calculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := st.resolveOutput(params.output)
	if err != nil {
		return err
	}

	in, err := productInput(cmd, params)
	if err != nil {
		return err
	}

	factors, err := st.factors(ctx)
	if err != nil {
		return err
	}

	result := footprint.Compute(in, factors)
	product := footprint.NewProduct(in, result, st.now())

	log.Debug().
		Str("product", product.Name).
		Float64("total_kg", product.Footprint.Total).
		Str("rating", product.Rating().Grade).
		Msg("footprint calculated")

	var replaced bool
	if params.save {
		session, openErr := st.openSession(ctx)
		if openErr != nil {
			return openErr
		}
		session.SetCurrent(product)
		replaced, _, err = session.SaveCurrent(ctx)
		if err != nil {
			return fmt.Errorf("saving product: %w", err)
		}
		log.Info().
			Str("product", product.Name).
			Bool("replaced", replaced).
			Msg("product saved")
	}

	if format == config.OutputJSON {
		out := calculationOutput{Product: product, Rating: product.Rating(), Saved: params.save}
		if eq, eqErr := greenops.ForFootprint(product.Footprint.Total); eqErr == nil && !eq.IsEmpty {
			out.Equivalencies = &eq
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(product, terminalWidth()))
	if params.save {
		verb := "saved to"
		if replaced {
			verb = "updated in"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nProduct %q has been %s your dashboard.\n", product.Name, verb)
	}
	return nil
}

// productInput builds the product description from --file or the inline
// flags. Mixing both is rejected.
func productInput(cmd *cobra.Command, params calculateParams) (footprint.ProductInput, error) {
	var inline []string
	for _, name := range productFlags {
		if cmd.Flags().Changed(name) {
			inline = append(inline, "--"+name)
		}
	}

	if params.file != "" {
		if len(inline) > 0 {
			return footprint.ProductInput{}, fmt.Errorf("--file cannot be combined with %s", strings.Join(inline, ", "))
		}
		return input.LoadFile(params.file)
	}

	if len(inline) == 0 {
		return footprint.ProductInput{}, errors.New("describe the product with --file or with --name and --material flags")
	}

	materials, err := input.ParseMaterials(params.materials)
	if err != nil {
		return footprint.ProductInput{}, err
	}

	in := footprint.ProductInput{
		Name:                 strings.TrimSpace(params.name),
		EnergyConsumptionKWh: params.energy,
		EnergySource:         footprint.EnergySource(strings.ToLower(params.energySource)),
		TransportMethod:      footprint.TransportMethod(strings.ToLower(params.transport)),
		TransportDistanceKm:  params.distance,
		LifespanYears:        params.lifespan,
		RecyclabilityPercent: params.recyclability,
		Materials:            materials,
	}
	if err = input.Validate(in); err != nil {
		return footprint.ProductInput{}, fmt.Errorf("invalid product: %w", err)
	}
	return in, nil
}
