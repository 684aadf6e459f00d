package checkers

import (
	"github.com/R167/pysmoke/checkers/basics"
	"github.com/R167/pysmoke/checkers/builtins"
	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/checkers/dictfn"
	"github.com/R167/pysmoke/checkers/mathprobe"
	"github.com/R167/pysmoke/checkers/osinfo"
	"github.com/R167/pysmoke/checkers/randprobe"
	"github.com/R167/pysmoke/checkers/scratch"
	"github.com/R167/pysmoke/checkers/strutil"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

// AllCheckers returns the suite in its fixed transcript order. Ordering is
// part of the output contract.
func AllCheckers() []checker.Checker {
	return []checker.Checker{
		basics.NewBasicsChecker(),
		osinfo.NewOSChecker(),
		scratch.NewScratchChecker(),
		mathprobe.NewMathChecker(),
		randprobe.NewRandomChecker(),
		strutil.NewStringsChecker(),
		dictfn.NewDictChecker(),
		builtins.NewBuiltinsChecker(),
	}
}

func GetChecker(name string) checker.Checker {
	for _, c := range AllCheckers() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func RunChecker(name string, config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	c := GetChecker(name)
	if c == nil {
		return nil
	}
	if config == nil {
		config = c.DefaultConfig()
	}
	return c.Run(config, report, out)
}
