package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/sustaintrack/internal/config"
)

// ErrInvalidOutput is returned for an unsupported --output value.
var ErrInvalidOutput = errors.New("invalid output format")

// tabPadding is the column gap of tabwriter tables.
const tabPadding = 2

// addOutputFlag registers --output on cmd.
func addOutputFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "output", "o", "", "output format: table or json (default from config)")
}

// resolveOutput returns the effective output format: the flag when set,
// otherwise the configured default.
func (st *cliState) resolveOutput(flagValue string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(flagValue))
	if v == "" {
		v = st.cfg.Output.Format
	}
	switch v {
	case config.OutputTable, config.OutputJSON:
		return v, nil
	default:
		return "", fmt.Errorf("%w %q (valid: table, json)", ErrInvalidOutput, flagValue)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
