package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
	"github.com/rshade/sustaintrack/internal/dashboard"
	"github.com/rshade/sustaintrack/internal/footprint"
	"github.com/rshade/sustaintrack/internal/logging"
	"github.com/rshade/sustaintrack/internal/tui"
)

// ErrProductNotFound is returned when no saved product has the given name.
var ErrProductNotFound = errors.New("product not found")

// ErrNotInteractive is returned by commands that need a terminal.
var ErrNotInteractive = errors.New("an interactive terminal is required")

// productDateLayout is the date column layout of product listings.
const productDateLayout = "2006-01-02 15:04"

// productListItem is the JSON shape of one listed product.
type productListItem struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Timestamp string  `json:"timestamp"`
	TotalKg   float64 `json:"total_kg"`
	Rating    string  `json:"rating"`
}

func newProductsCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage saved products",
	}
	cmd.AddCommand(
		newProductsListCmd(st),
		newProductsShowCmd(st),
		newProductsDeleteCmd(st),
		newProductsBrowseCmd(st),
	)
	return cmd
}

func newProductsListCmd(st *cliState) *cobra.Command {
	var filter, output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved products",
		Example: `  # Newest first (default)
  sustaintrack products list

  # Lowest footprint first, as JSON
  sustaintrack products list --filter lowest --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := st.resolveFilter(filter)
			if err != nil {
				return err
			}
			format, err := st.resolveOutput(output)
			if err != nil {
				return err
			}

			session, err := st.openSession(cmd.Context())
			if err != nil {
				return err
			}
			products := dashboard.SortProducts(session.Products(), f)

			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), listItems(products))
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved products.")
				return nil
			}
			if st.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProductTable(products, f))
				return nil
			}
			return renderProductList(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "sort order: recent, highest or lowest (default from config)")
	addOutputFlag(cmd, &output)
	return cmd
}

func newProductsShowCmd(st *cliState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full result of a saved product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := st.resolveOutput(output)
			if err != nil {
				return err
			}
			p, err := st.findProduct(cmd, args[0])
			if err != nil {
				return err
			}
			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), calculationOutput{Product: p, Rating: p.Rating(), Saved: true})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(p, terminalWidth()))
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newProductsDeleteCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved product",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := st.openSession(ctx)
			if err != nil {
				return err
			}
			if !session.Delete(args[0]) {
				return fmt.Errorf("%w: %q", ErrProductNotFound, args[0])
			}
			if err = session.Persist(ctx); err != nil {
				return fmt.Errorf("saving products: %w", err)
			}
			logging.FromContext(ctx).Info().Str("product", args[0]).Msg("product deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Product %q deleted.\n", args[0])
			return nil
		},
	}
}

func newProductsBrowseCmd(st *cliState) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse saved products interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !st.interactive() {
				return fmt.Errorf("products browse: %w", ErrNotInteractive)
			}
			f, err := st.resolveFilter(filter)
			if err != nil {
				return err
			}
			session, err := st.openSession(cmd.Context())
			if err != nil {
				return err
			}

			model := tui.NewBrowser(session.Products(), f)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "initial sort order: recent, highest or lowest")
	return cmd
}

// resolveFilter returns the flag's filter or the configured default.
func (st *cliState) resolveFilter(flagValue string) (dashboard.Filter, error) {
	if flagValue == "" {
		flagValue = st.cfg.Output.DefaultFilter
	}
	return dashboard.ParseFilter(flagValue)
}

// findProduct loads the saved product called name.
func (st *cliState) findProduct(cmd *cobra.Command, name string) (footprint.Product, error) {
	session, err := st.openSession(cmd.Context())
	if err != nil {
		return footprint.Product{}, err
	}
	p, ok := session.Find(name)
	if !ok {
		return footprint.Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, name)
	}
	return p, nil
}

func listItems(products []footprint.Product) []productListItem {
	items := make([]productListItem, 0, len(products))
	for _, p := range products {
		items = append(items, productListItem{
			ID:        p.ID,
			Name:      p.Name,
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
			TotalKg:   p.Footprint.Total,
			Rating:    p.Rating().Label,
		})
	}
	return items
}

func renderProductList(w io.Writer, products []footprint.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Name\tTotal (kg CO2e)\tRating\tDate")
	fmt.Fprintln(tw, "----\t---------------\t------\t----")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.Name,
			dashboard.Fixed2(p.Footprint.Total),
			p.Rating().Label,
			p.Timestamp.UTC().Format(productDateLayout),
		)
	}
	return tw.Flush()
}
