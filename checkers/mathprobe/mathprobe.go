package mathprobe

import (
	"math"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type MathChecker struct{}

type MathConfig struct {
	SqrtOf  float64
	FloorOf float64
}

func NewMathChecker() checker.Checker {
	return &MathChecker{}
}

func (c *MathChecker) Name() string {
	return "math"
}

func (c *MathChecker) Description() string {
	return "Mathematical constants and functions"
}

func (c *MathChecker) Icon() string {
	return "🧮"
}

func (c *MathChecker) DefaultConfig() checker.CheckerConfig {
	return MathConfig{
		SqrtOf:  16,
		FloorOf: 3.7,
	}
}

func (c *MathChecker) DefaultEnabled() bool {
	return true
}

func (c *MathChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(MathConfig)
	out.Section(c.Icon(), "[4] MATH MODULE")

	out.Info("pi: %v", math.Pi)
	out.Info("sqrt(%v): %v", cfg.SqrtOf, math.Sqrt(cfg.SqrtOf))
	out.Info("floor(%v): %v", cfg.FloorOf, math.Floor(cfg.FloorOf))

	report.Record(c.Name())
	return nil
}

func (c *MathChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_math",
		Description: "Print pi, a square root, and a floor result",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	}
}
