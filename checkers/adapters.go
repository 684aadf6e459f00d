package checkers

import (
	"context"
	"fmt"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/checkers/osinfo"
	"github.com/R167/pysmoke/checkers/randprobe"
	"github.com/R167/pysmoke/checkers/scratch"
	"github.com/R167/pysmoke/checkers/strutil"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/mcp"
	"github.com/R167/pysmoke/internal/output"
	"github.com/R167/pysmoke/internal/runner"
)

// RunForMCP executes a single check against a buffered transcript and adapts
// the result into MCP tool output.
func RunForMCP(name string, input *mcp.ProbeToolInput) (*mcp.ProbeToolOutput, error) {
	c := GetChecker(name)
	if c == nil {
		return nil, fmt.Errorf("unknown check %q", name)
	}

	report := common.NewHostReport()
	out := output.NewBufferedOutput()
	config := configFromInput(c.Name(), c.DefaultConfig(), input)

	if err := c.Run(config, report, out); err != nil {
		return nil, err
	}

	return &mcp.ProbeToolOutput{
		Summary: fmt.Sprintf("check %s passed", name),
		Report:  out.String(),
	}, nil
}

// RunAllForMCP executes the full suite, fail-fast, and returns the complete
// transcript.
func RunAllForMCP(input *mcp.ProbeToolInput) (*mcp.ProbeToolOutput, error) {
	report := common.NewHostReport()
	out := output.NewBufferedOutput()

	rc := runner.NewRunContext(context.Background()).
		WithReport(report).
		WithOutput(out)
	for _, c := range AllCheckers() {
		rc.SetCheckerConfig(c.Name(), configFromInput(c.Name(), c.DefaultConfig(), input))
	}

	if err := rc.Run(AllCheckers()); err != nil {
		return nil, err
	}

	return &mcp.ProbeToolOutput{
		Summary: fmt.Sprintf("%d checks passed", len(report.ChecksRun)),
		Report:  out.String(),
	}, nil
}

func configFromInput(name string, def checker.CheckerConfig, input *mcp.ProbeToolInput) checker.CheckerConfig {
	if input == nil {
		return def
	}

	switch name {
	case "os":
		cfg := def.(osinfo.OSConfig)
		if input.EnvVar != "" {
			cfg.EnvVar = input.EnvVar
		}
		return cfg
	case "scratch":
		cfg := def.(scratch.ScratchConfig)
		if input.ScratchDir != "" {
			cfg.DirName = input.ScratchDir
		}
		return cfg
	case "random":
		cfg := def.(randprobe.RandomConfig)
		if input.Seed != 0 {
			cfg.Seed = input.Seed
		}
		return cfg
	case "strings":
		cfg := def.(strutil.StringsConfig)
		if input.Sample != "" {
			cfg.Sample = input.Sample
		}
		return cfg
	}
	return def
}
