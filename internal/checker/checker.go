package checker

import (
	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/output"
)

type CheckerConfig interface{}

// Checker is one probe in the smoke-test suite. Run writes its transcript
// lines to out and records results on the report. A non-nil error aborts the
// rest of the suite.
type Checker interface {
	Name() string
	Description() string
	Icon() string
	DefaultConfig() CheckerConfig
	DefaultEnabled() bool
	Run(config CheckerConfig, report *common.HostReport, out output.Output) error
	MCPToolDefinition() *MCPTool
}

type MCPTool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}
