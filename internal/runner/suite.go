package runner

import (
	"os"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

const (
	// OpeningBanner and ClosingBanner frame the transcript. Both literals
	// are part of the output contract.
	OpeningBanner = "PYTHON SIMULATOR - TEST SUITE"
	ClosingBanner = "ALL TESTS PASSED!"
)

// Run executes the checks in order, fail-fast: the first error aborts the
// remaining checks and the closing banner is not printed.
func (rc *RunContext) Run(checks []checker.Checker) error {
	out := rc.Out
	if out == nil {
		out = output.NewStreamingOutput(os.Stdout)
	}
	if rc.Report == nil {
		rc.Report = common.NewHostReport()
	}

	if rc.WorkDir != "" {
		if err := os.Chdir(rc.WorkDir); err != nil {
			return &common.EnvError{Op: "chdir", Path: rc.WorkDir, Err: err}
		}
	}

	out.Banner(OpeningBanner)

	for _, c := range checks {
		select {
		case <-rc.Ctx.Done():
			return rc.Ctx.Err()
		default:
		}

		config, ok := rc.GetCheckerConfig(c.Name())
		if !ok {
			config = c.DefaultConfig()
		}
		if err := c.Run(config, rc.Report, out); err != nil {
			return err
		}
	}

	out.Println("")
	out.Banner(ClosingBanner)
	return nil
}
