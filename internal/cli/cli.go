package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/R167/pysmoke/checkers"
	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/checkers/osinfo"
	"github.com/R167/pysmoke/checkers/randprobe"
	"github.com/R167/pysmoke/checkers/scratch"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/mcp"
	"github.com/R167/pysmoke/internal/output"
	"github.com/R167/pysmoke/internal/runner"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type runOptions struct {
	envVar     string
	scratchDir string
	seed       int64
	only       []string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:          "pysmoke",
		Short:        "pysmoke — host smoke-test suite producing the Python simulator transcript",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSuite(opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "include debug lines in the transcript")
	flags := cmd.Flags()
	flags.StringVar(&opts.envVar, "env-var", common.DefaultEnvVar, "environment variable read by the os check")
	flags.StringVar(&opts.scratchDir, "scratch-dir", common.DefaultScratchDir, "directory created and removed by the scratch check")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time-derived)")
	flags.StringSliceVar(&opts.only, "only", nil, "run only the named checks, in suite order")

	cmd.AddCommand(newListCmd(), newMCPCmd())
	return cmd
}

func runSuite(opts *runOptions) error {
	common.SetDebugMode(opts.debug)

	checks, err := selectChecks(opts.only)
	if err != nil {
		return err
	}

	rc := runner.NewRunContext(context.Background()).
		WithOutput(output.NewStreamingOutput(os.Stdout))
	rc.SetCheckerConfig("os", osinfo.OSConfig{EnvVar: opts.envVar})
	rc.SetCheckerConfig("scratch", scratch.ScratchConfig{DirName: opts.scratchDir})
	if opts.seed != 0 {
		cfg := randprobe.NewRandomChecker().DefaultConfig().(randprobe.RandomConfig)
		cfg.Seed = opts.seed
		rc.SetCheckerConfig("random", cfg)
	}

	return rc.Run(checks)
}

// selectChecks filters the registry while preserving suite order.
func selectChecks(only []string) ([]checker.Checker, error) {
	all := checkers.AllCheckers()
	if len(only) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		if checkers.GetChecker(name) == nil {
			return nil, fmt.Errorf("unknown check %q", name)
		}
		wanted[name] = true
	}

	selected := make([]checker.Checker, 0, len(wanted))
	for _, c := range all {
		if wanted[c.Name()] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available checks in suite order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range checkers.AllCheckers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s  %s\n", c.Icon(), c.Name(), c.Description())
			}
			return nil
		},
	}
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the checks as MCP tools over stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := mcp.NewRegistry()
			for _, c := range checkers.AllCheckers() {
				tool := c.MCPToolDefinition()
				name := c.Name()
				registry.Register(tool.Name, tool.Description, func(input *mcp.ProbeToolInput) (*mcp.ProbeToolOutput, error) {
					return checkers.RunForMCP(name, input)
				})
			}
			registry.Register("probe_all", "Run the full smoke-test suite and return the transcript", checkers.RunAllForMCP)
			return mcp.RunServer(registry)
		},
	}
}
