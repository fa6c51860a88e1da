package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// fixedNow is the clock used by command tests.
var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

// testEnv runs commands against a private store and config file.
type testEnv struct {
	t          *testing.T
	dir        string
	storePath  string
	configPath string
	env        map[string]string
	now        time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		t:          t,
		dir:        dir,
		storePath:  filepath.Join(dir, "products.json"),
		configPath: filepath.Join(dir, "config.yaml"),
		env:        map[string]string{},
		now:        fixedNow,
	}
}

func (e *testEnv) root() *cobra.Command {
	cmd, _ := e.rootWithState()
	return cmd
}

func (e *testEnv) rootWithState() (*cobra.Command, *cliState) {
	st := &cliState{
		lookupEnv: func(k string) (string, bool) {
			v, ok := e.env[k]
			return v, ok
		},
		now:         func() time.Time { return e.now },
		interactive: func() bool { return false },
		logger:      zerolog.Nop(),
	}
	return newRootCmd("test", st), st
}

// run executes args with the private store and config prepended.
func (e *testEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	out, errOut, _, err := e.runWithState(args...)
	return out, errOut, err
}

// runWithState is run that also returns the command state after execution.
func (e *testEnv) runWithState(args ...string) (string, string, *cliState, error) {
	e.t.Helper()
	cmd, st := e.rootWithState()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--store", e.storePath}, args...))
	err := execute(cmd, st)
	return out.String(), errOut.String(), st, err
}

// referenceArgs describes the aluminium bottle used throughout the tests.
func referenceArgs(name string) []string {
	return []string{
		"calculate",
		"--name", name,
		"--material", "aluminum:2:100",
		"--energy", "50",
		"--energy-source", "grid",
		"--transport", "truck",
		"--distance", "200",
		"--lifespan", "5",
		"--recyclability", "50",
	}
}

// findSubcommand finds a subcommand by name.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}
