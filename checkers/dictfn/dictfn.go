package dictfn

import (
	"maps"
	"slices"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type DictChecker struct{}

type DictConfig struct{}

func NewDictChecker() checker.Checker {
	return &DictChecker{}
}

func (c *DictChecker) Name() string {
	return "dict"
}

func (c *DictChecker) Description() string {
	return "Key-unique mapping and a trivial function call"
}

func (c *DictChecker) Icon() string {
	return "🗂️"
}

func (c *DictChecker) DefaultConfig() checker.CheckerConfig {
	return DictConfig{}
}

func (c *DictChecker) DefaultEnabled() bool {
	return true
}

func (c *DictChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	out.Section(c.Icon(), "[7] DICT & FUNCTIONS")

	d := map[string]int{"a": 1, "b": 2}
	out.Info("dict: %v", d)
	out.Info("keys: %v", slices.Sorted(maps.Keys(d)))
	out.Info("func: %s", Greet("Python"))

	report.Record(c.Name())
	return nil
}

func (c *DictChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_dict",
		Description: "Build a small key-unique mapping and invoke a single-argument function",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	}
}

// Greet returns the fixed greeting for name.
func Greet(name string) string {
	return "Hi " + name
}
