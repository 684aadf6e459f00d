package randprobe

import (
	"math/rand/v2"
	"time"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type RandomChecker struct{}

type RandomConfig struct {
	// Seed pins the random source for reproducible runs; 0 derives one from
	// the clock.
	Seed   int64
	IntMin int
	IntMax int
}

func NewRandomChecker() checker.Checker {
	return &RandomChecker{}
}

func (c *RandomChecker) Name() string {
	return "random"
}

func (c *RandomChecker) Description() string {
	return "Uniform fractional and closed-range integer sampling"
}

func (c *RandomChecker) Icon() string {
	return "🎲"
}

func (c *RandomChecker) DefaultConfig() checker.CheckerConfig {
	return RandomConfig{
		Seed:   0,
		IntMin: 1,
		IntMax: 100,
	}
}

func (c *RandomChecker) DefaultEnabled() bool {
	return true
}

func (c *RandomChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(RandomConfig)
	out.Section(c.Icon(), "[5] RANDOM MODULE")

	out.Debug("Random: seed=%d range=[%d,%d]", cfg.Seed, cfg.IntMin, cfg.IntMax)
	rng := NewRand(cfg.Seed)
	report.RandomFloat = rng.Float64()
	report.RandomInt = RandInt(rng, cfg.IntMin, cfg.IntMax)

	out.Info("random: %v", report.RandomFloat)
	out.Info("randint: %d", report.RandomInt)

	report.Record(c.Name())
	return nil
}

func (c *RandomChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_random",
		Description: "Sample a uniform float in [0,1) and a uniform integer in [1,100]",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Seed for the random source; 0 means time-derived",
					"default":     0,
				},
			},
			"required": []string{},
		},
	}
}

// NewRand builds the sampling source. Seed 0 means a fresh, time-derived
// source; any other value gives a reproducible stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// RandInt samples uniformly from the closed range [min, max].
func RandInt(rng *rand.Rand, min, max int) int {
	return min + rng.IntN(max-min+1)
}
