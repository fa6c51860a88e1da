package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/logging"
)

// setupLogging builds the logger from config and the --debug flag, and
// stores it with a fresh trace ID in the command context.
func setupLogging(cmd *cobra.Command, st *cliState) {
	loggingCfg := st.cfg.Logging.ToLoggingConfig()
	if st.flags.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}
	loggingCfg.Writer = cmd.ErrOrStderr()

	result, err := logging.New(loggingCfg)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging to stderr: %v\n", err)
	}
	st.logResult = result
	st.logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := logging.Attach(cmd.Context(), st.logger)
	cmd.SetContext(ctx)

	logging.FromContext(ctx).Debug().
		Str("command", cmd.Name()).
		Str("store", st.cfg.Store.Path).
		Msg("command started")
}

// cleanupLogging closes the log file, if one was opened.
func cleanupLogging(st *cliState) error {
	if st.logResult == nil {
		return nil
	}
	return st.logResult.Close()
}
