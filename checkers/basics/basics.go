package basics

import (
	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type BasicsChecker struct{}

type BasicsConfig struct {
	LoopCount   int
	SquareCount int
}

func NewBasicsChecker() checker.Checker {
	return &BasicsChecker{}
}

func (c *BasicsChecker) Name() string {
	return "basics"
}

func (c *BasicsChecker) Description() string {
	return "Sequence construction, iteration, and elementwise transforms"
}

func (c *BasicsChecker) Icon() string {
	return "📋"
}

func (c *BasicsChecker) DefaultConfig() checker.CheckerConfig {
	return BasicsConfig{
		LoopCount:   3,
		SquareCount: 5,
	}
}

func (c *BasicsChecker) DefaultEnabled() bool {
	return true
}

func (c *BasicsChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(BasicsConfig)
	out.Section(c.Icon(), "[1] BASIC PYTHON")

	jours := Weekdays()
	out.Info("list: %v", jours)
	out.Info("len: %d", len(jours))
	out.Info("first: %s", jours[0])

	for i := 0; i < cfg.LoopCount; i++ {
		out.Info("loop: %d", i)
	}

	out.Info("squares: %v", Squares(cfg.SquareCount))

	report.Record(c.Name())
	return nil
}

func (c *BasicsChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_basics",
		Description: "Exercise sequence construction, range iteration, and elementwise squares",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	}
}

// Weekdays returns the fixed sample sequence the transcript prints first.
func Weekdays() []string {
	return []string{"lundi", "mardi", "mercredi", "jeudi"}
}

// Squares returns the squares of [0, n).
func Squares(n int) []int {
	squares := make([]int, 0, n)
	for x := 0; x < n; x++ {
		squares = append(squares, x*x)
	}
	return squares
}
