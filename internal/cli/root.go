package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/sustaintrack/internal/config"
	"github.com/rshade/sustaintrack/internal/footprint"
	"github.com/rshade/sustaintrack/internal/logging"
	"github.com/rshade/sustaintrack/internal/store"
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 80

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of stdout, or defaultTermWidth.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	storePath   string
	factorsPath string
	debug       bool
}

// cliState is shared by the command tree of one root command.
type cliState struct {
	flags     globalFlags
	lookupEnv func(string) (string, bool)
	now       func() time.Time
	// interactive reports whether stdin and stdout are terminals.
	interactive func() bool

	cfg       *config.Config
	logResult *logging.Result
	logger    zerolog.Logger
}

// NewRootCmd creates the root Cobra command for the sustaintrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	return newRootCmd(ver, newCLIState(lookupEnv))
}

// Execute runs the command tree with args. The log file is closed on every
// exit path, including commands that fail.
func Execute(ver string, args []string) error {
	st := newCLIState(os.LookupEnv)
	cmd := newRootCmd(ver, st)
	cmd.SetArgs(args)
	return execute(cmd, st)
}

func newCLIState(lookupEnv func(string) (string, bool)) *cliState {
	return &cliState{
		lookupEnv: lookupEnv,
		now:       time.Now,
		interactive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
		logger: zerolog.Nop(),
	}
}

// execute runs cmd and then releases the logging resources held by st.
// PersistentPostRunE does not run when RunE fails.
func execute(cmd *cobra.Command, st *cliState) error {
	err := cmd.Execute()
	if closeErr := cleanupLogging(st); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

func newRootCmd(ver string, st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sustaintrack",
		Short:   "Product carbon footprint calculator",
		Long:    "SustainTrack estimates the carbon footprint of a product from its materials, energy, transport and lifecycle.",
		Version: ver,
		Example: rootCmdExample,
		// Errors are printed once by main.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.loadConfig(); err != nil {
				return err
			}
			setupLogging(cmd, st)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(st)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.flags.configPath, "config", "", "config file (default ~/.sustaintrack/config.yaml)")
	pf.StringVar(&st.flags.storePath, "store", "", "products file (overrides config and SUSTAINTRACK_STORE)")
	pf.StringVar(&st.flags.factorsPath, "factors", "", "emission factor override file (YAML)")
	pf.BoolVar(&st.flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newCalculateCmd(st),
		newProductsCmd(st),
		newDashboardCmd(st),
		newReportCmd(st),
		newExportCmd(st),
		newFactorsCmd(st),
		newRecommendationsCmd(),
		newConfigCmd(st),
	)
	return cmd
}

const rootCmdExample = `  # Calculate a footprint from flags
  sustaintrack calculate --name "Water Bottle" --material aluminum:2:100 \
    --energy 50 --energy-source grid --transport truck --distance 200 \
    --lifespan 5 --recyclability 50

  # Calculate from a file and save it
  sustaintrack calculate --file bottle.yaml --save

  # List saved products, highest footprint first
  sustaintrack products list --filter highest

  # Show dashboard charts
  sustaintrack dashboard

  # Export saved products to a workbook
  sustaintrack export --out products.xlsx`

// loadConfig resolves the configuration: defaults, file, environment, then
// flags.
func (st *cliState) loadConfig() error {
	cfg, err := config.Load(st.flags.configPath, st.lookupEnv)
	if err != nil {
		return err
	}
	if st.flags.storePath != "" {
		cfg.Store.Path = st.flags.storePath
	}
	if st.flags.factorsPath != "" {
		cfg.Factors.File = st.flags.factorsPath
	}
	st.cfg = cfg
	return nil
}

// factors returns the emission factors, applying the override file if set.
func (st *cliState) factors(ctx context.Context) (footprint.Factors, error) {
	path := st.cfg.Factors.File
	f, err := footprint.LoadFactors(path)
	if err != nil {
		return footprint.Factors{}, err
	}
	if path != "" {
		logging.FromContext(ctx).Debug().
			Str("path", path).
			Msg("emission factor overrides applied")
	}
	return f, nil
}

// openSession loads the saved products.
func (st *cliState) openSession(ctx context.Context) (*store.Session, error) {
	ps, err := store.NewProductStore(st.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening product store: %w", err)
	}
	return store.OpenSession(ctx, ps), nil
}

// newConfigCmd creates the config command group.
func newConfigCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(st))
	return cmd
}
