package scratch

import (
	"os"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type ScratchChecker struct{}

type ScratchConfig struct {
	DirName string
}

func NewScratchChecker() checker.Checker {
	return &ScratchChecker{}
}

func (c *ScratchChecker) Name() string {
	return "scratch"
}

func (c *ScratchChecker) Description() string {
	return "Scoped create/verify/remove of a scratch directory"
}

func (c *ScratchChecker) Icon() string {
	return "📁"
}

func (c *ScratchChecker) DefaultConfig() checker.CheckerConfig {
	return ScratchConfig{
		DirName: common.DefaultScratchDir,
	}
}

func (c *ScratchChecker) DefaultEnabled() bool {
	return true
}

func (c *ScratchChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(ScratchConfig)
	out.Section(c.Icon(), "[3] MKDIR/RMDIR")

	report.ScratchDir = cfg.DirName
	if err := withScratchDir(cfg.DirName, report, out); err != nil {
		return err
	}

	report.Record(c.Name())
	return nil
}

func (c *ScratchChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_scratch_dir",
		Description: "Create a scratch directory, verify it exists, and remove it",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"scratch_dir": map[string]interface{}{
					"type":        "string",
					"description": "Relative path of the directory to create and remove",
					"default":     common.DefaultScratchDir,
				},
			},
			"required": []string{},
		},
	}
}

// withScratchDir acquires the directory, verifies it, and releases it on
// every exit path. Create must be observed before the existence check and
// removal must follow it; a failed removal is fatal.
func withScratchDir(dir string, report *common.HostReport, out output.Output) (err error) {
	out.Debug("Scratch: mkdir %s", dir)
	if mkErr := os.Mkdir(dir, 0o755); mkErr != nil {
		return &common.EnvError{Op: "mkdir", Path: dir, Err: mkErr}
	}
	report.ScratchCreated = true
	out.Info("Created %s", dir)

	defer func() {
		out.Debug("Scratch: rmdir %s", dir)
		if rmErr := os.Remove(dir); rmErr != nil {
			if err == nil {
				err = &common.EnvError{Op: "rmdir", Path: dir, Err: rmErr}
			}
			return
		}
		report.ScratchRemoved = true
		out.Info("Removed %s", dir)
	}()

	info, statErr := os.Stat(dir)
	if statErr != nil {
		return &common.EnvError{Op: "stat", Path: dir, Err: statErr}
	}
	out.Info("Exists: %t", info.IsDir())
	return nil
}
