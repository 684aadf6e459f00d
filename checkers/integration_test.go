package checkers_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/R167/pysmoke/checkers"
	"github.com/R167/pysmoke/checkers/scratch"
	"github.com/R167/pysmoke/internal/mcp"
	"github.com/R167/pysmoke/internal/output"
	"github.com/R167/pysmoke/internal/runner"
)

func TestRegistry_Order(t *testing.T) {
	want := []string{"basics", "os", "scratch", "math", "random", "strings", "dict", "builtins"}

	all := checkers.AllCheckers()
	if len(all) != len(want) {
		t.Fatalf("AllCheckers() returned %d checks, want %d", len(all), len(want))
	}
	for i, c := range all {
		if c.Name() != want[i] {
			t.Errorf("check %d = %q, want %q", i, c.Name(), want[i])
		}
	}
}

func TestRegistry_GetChecker(t *testing.T) {
	if c := checkers.GetChecker("os"); c == nil {
		t.Error("GetChecker(\"os\") should find the os check")
	}
	if c := checkers.GetChecker("bogus"); c != nil {
		t.Error("GetChecker(\"bogus\") should return nil")
	}
}

func TestRegistry_UniqueToolNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range checkers.AllCheckers() {
		tool := c.MCPToolDefinition()
		if tool == nil {
			t.Fatalf("check %s has no MCP tool definition", c.Name())
		}
		if seen[tool.Name] {
			t.Errorf("duplicate MCP tool name %q", tool.Name)
		}
		seen[tool.Name] = true
	}
}

func TestSuite_EndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())

	out := output.NewBufferedOutput()
	rc := runner.NewRunContext(context.Background()).WithOutput(out)

	if err := rc.Run(checkers.AllCheckers()); err != nil {
		t.Fatalf("suite run failed: %v", err)
	}

	transcript := out.String()
	for _, want := range []string{
		"PYTHON SIMULATOR - TEST SUITE",
		"[1] BASIC PYTHON",
		"[2] OS MODULE",
		"[3] MKDIR/RMDIR",
		"[4] MATH MODULE",
		"[5] RANDOM MODULE",
		"[6] STRINGS",
		"[7] DICT & FUNCTIONS",
		"[8] BUILT-INS",
		"ALL TESTS PASSED!",
	} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q", want)
		}
	}

	// Idempotent cleanup: the scratch directory must be gone.
	if _, err := os.Stat("test_dir"); !os.IsNotExist(err) {
		t.Errorf("test_dir should not exist after the run, stat err = %v", err)
	}

	if len(rc.Report.ChecksRun) != 8 {
		t.Errorf("ChecksRun = %v, want 8 entries", rc.Report.ChecksRun)
	}
}

func TestSuite_FailFastAbortsTranscript(t *testing.T) {
	t.Chdir(t.TempDir())

	// A scratch path with a missing parent makes the third check fail.
	out := output.NewBufferedOutput()
	rc := runner.NewRunContext(context.Background()).WithOutput(out)
	rc.SetCheckerConfig("scratch", scratch.ScratchConfig{DirName: "missing/parent/test_dir"})

	err := rc.Run(checkers.AllCheckers())
	if err == nil {
		t.Fatal("suite should fail when the scratch check cannot create its directory")
	}

	transcript := out.String()
	if !strings.Contains(transcript, "[2] OS MODULE") {
		t.Error("checks before the failure should have printed")
	}
	if strings.Contains(transcript, "[4] MATH MODULE") {
		t.Error("checks after the failure should not have printed")
	}
	if strings.Contains(transcript, "ALL TESTS PASSED!") {
		t.Error("closing banner should not print on failure")
	}
}

func TestRunForMCP(t *testing.T) {
	result, err := checkers.RunForMCP("strings", &mcp.ProbeToolInput{})
	if err != nil {
		t.Fatalf("RunForMCP() error = %v", err)
	}

	if !strings.Contains(result.Report, "upper: HELLO WORLD") {
		t.Errorf("report missing transform line:\n%s", result.Report)
	}
	if result.Summary == "" {
		t.Error("summary should be set")
	}
}

func TestRunForMCP_InputOverrides(t *testing.T) {
	result, err := checkers.RunForMCP("strings", &mcp.ProbeToolInput{Sample: "go probe"})
	if err != nil {
		t.Fatalf("RunForMCP() error = %v", err)
	}
	if !strings.Contains(result.Report, "upper: GO PROBE") {
		t.Errorf("input override not applied:\n%s", result.Report)
	}
}

func TestRunForMCP_UnknownCheck(t *testing.T) {
	if _, err := checkers.RunForMCP("bogus", nil); err == nil {
		t.Error("RunForMCP should fail for an unknown check")
	}
}

func TestRunAllForMCP(t *testing.T) {
	t.Chdir(t.TempDir())

	result, err := checkers.RunAllForMCP(&mcp.ProbeToolInput{Seed: 7})
	if err != nil {
		t.Fatalf("RunAllForMCP() error = %v", err)
	}

	if result.Summary != "8 checks passed" {
		t.Errorf("Summary = %q, want %q", result.Summary, "8 checks passed")
	}
	if !strings.Contains(result.Report, "ALL TESTS PASSED!") {
		t.Error("report should contain the closing banner")
	}
}
