package strutil

import (
	"strings"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type StringsChecker struct{}

type StringsConfig struct {
	Sample string
}

func NewStringsChecker() checker.Checker {
	return &StringsChecker{}
}

func (c *StringsChecker) Name() string {
	return "strings"
}

func (c *StringsChecker) Description() string {
	return "Case transforms and whitespace tokenization"
}

func (c *StringsChecker) Icon() string {
	return "🔤"
}

func (c *StringsChecker) DefaultConfig() checker.CheckerConfig {
	return StringsConfig{
		Sample: "Hello World",
	}
}

func (c *StringsChecker) DefaultEnabled() bool {
	return true
}

func (c *StringsChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(StringsConfig)
	out.Section(c.Icon(), "[6] STRINGS")

	out.Info("upper: %s", strings.ToUpper(cfg.Sample))
	out.Info("lower: %s", strings.ToLower(cfg.Sample))
	out.Info("split: %v", strings.Fields(cfg.Sample))

	report.Record(c.Name())
	return nil
}

func (c *StringsChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_strings",
		Description: "Apply case transforms and whitespace tokenization to a sample string",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sample": map[string]interface{}{
					"type":        "string",
					"description": "Text to transform",
					"default":     "Hello World",
				},
			},
			"required": []string{},
		},
	}
}
