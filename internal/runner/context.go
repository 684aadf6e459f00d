package runner

import (
	"context"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/output"
)

// RunContext carries shared resources and configuration for a suite run:
// the report the checks write into, the output sink, an optional working
// directory, and per-checker config overrides.
//
// The context uses a builder pattern for easy construction:
//
//	rc := NewRunContext(context.Background()).
//	    WithWorkDir(dir).
//	    WithOutput(output.NewStreamingOutput(os.Stdout))
type RunContext struct {
	Ctx            context.Context
	WorkDir        string
	Report         *common.HostReport
	Out            output.Output
	CheckerConfigs map[string]interface{}
}

func NewRunContext(ctx context.Context) *RunContext {
	return &RunContext{
		Ctx:            ctx,
		Report:         common.NewHostReport(),
		CheckerConfigs: make(map[string]interface{}),
	}
}

func (rc *RunContext) WithWorkDir(dir string) *RunContext {
	rc.WorkDir = dir
	return rc
}

func (rc *RunContext) WithReport(report *common.HostReport) *RunContext {
	rc.Report = report
	return rc
}

func (rc *RunContext) WithOutput(out output.Output) *RunContext {
	rc.Out = out
	return rc
}

func (rc *RunContext) SetCheckerConfig(checkerName string, config interface{}) {
	rc.CheckerConfigs[checkerName] = config
}

func (rc *RunContext) GetCheckerConfig(checkerName string) (interface{}, bool) {
	config, ok := rc.CheckerConfigs[checkerName]
	return config, ok
}
