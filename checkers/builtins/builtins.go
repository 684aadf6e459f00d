package builtins

import (
	"slices"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type BuiltinsChecker struct{}

type BuiltinsConfig struct{}

func NewBuiltinsChecker() checker.Checker {
	return &BuiltinsChecker{}
}

func (c *BuiltinsChecker) Name() string {
	return "builtins"
}

func (c *BuiltinsChecker) Description() string {
	return "Aggregates, sorting, lengths, type labels, and ranges"
}

func (c *BuiltinsChecker) Icon() string {
	return "🧰"
}

func (c *BuiltinsChecker) DefaultConfig() checker.CheckerConfig {
	return BuiltinsConfig{}
}

func (c *BuiltinsChecker) DefaultEnabled() bool {
	return true
}

func (c *BuiltinsChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	out.Section(c.Icon(), "[8] BUILT-INS")

	out.Info("sum: %d", Sum([]int{1, 2, 3, 4, 5}))
	out.Info("min: %d", slices.Min([]int{5, 2, 8}))
	out.Info("max: %d", slices.Max([]int{5, 2, 8}))
	out.Info("sorted: %v", SortedCopy([]int{3, 1, 4, 1, 5}))
	out.Info("len: %d", len("hello"))
	out.Info("type: %T", []int{})
	out.Info("range: %v", MakeRange(5))

	report.Record(c.Name())
	return nil
}

func (c *BuiltinsChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_builtins",
		Description: "Apply aggregates (sum, min, max, sorted) and length/type/range built-ins",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
			"required":   []string{},
		},
	}
}

// Sum totals an integer sequence.
func Sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// SortedCopy sorts ascending without mutating the input.
func SortedCopy(nums []int) []int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	return sorted
}

// MakeRange materializes [0, n).
func MakeRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}
