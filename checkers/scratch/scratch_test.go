package scratch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/output"
)

func TestScratchChecker_CreateVerifyRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test_dir")

	c := NewScratchChecker()
	report := common.NewHostReport()
	out := output.NewBufferedOutput()

	if err := c.Run(ScratchConfig{DirName: dir}, report, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.ScratchCreated {
		t.Error("ScratchCreated should be true")
	}
	if !report.ScratchRemoved {
		t.Error("ScratchRemoved should be true")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory should not exist after the run, stat err = %v", err)
	}

	transcript := out.String()
	created := strings.Index(transcript, "Created")
	exists := strings.Index(transcript, "Exists: true")
	removed := strings.Index(transcript, "Removed")
	if created == -1 || exists == -1 || removed == -1 {
		t.Fatalf("transcript missing create/verify/remove lines:\n%s", transcript)
	}
	if !(created < exists && exists < removed) {
		t.Errorf("transcript lines out of order (create=%d exists=%d remove=%d)", created, exists, removed)
	}
}

func TestScratchChecker_AlreadyExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test_dir")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	c := NewScratchChecker()
	err := c.Run(ScratchConfig{DirName: dir}, common.NewHostReport(), output.NewNoOpOutput())
	if err == nil {
		t.Fatal("Run() should fail when the directory pre-exists")
	}

	var envErr *common.EnvError
	if !errors.As(err, &envErr) {
		t.Fatalf("error should be *common.EnvError, got %T: %v", err, err)
	}
	if envErr.Op != "mkdir" {
		t.Errorf("EnvError.Op = %q, want mkdir", envErr.Op)
	}

	// Pre-existing directory is not ours to release.
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("pre-existing directory should survive the failed run: %v", statErr)
	}
}

func TestScratchChecker_DebugLines(t *testing.T) {
	common.SetDebugMode(true)
	t.Cleanup(func() { common.SetDebugMode(false) })

	dir := filepath.Join(t.TempDir(), "test_dir")
	out := output.NewBufferedOutput()

	c := NewScratchChecker()
	if err := c.Run(ScratchConfig{DirName: dir}, common.NewHostReport(), out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	transcript := out.String()
	if !strings.Contains(transcript, "Scratch: mkdir "+dir) {
		t.Errorf("transcript missing mkdir debug line:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Scratch: rmdir "+dir) {
		t.Errorf("transcript missing rmdir debug line:\n%s", transcript)
	}
}

func TestScratchChecker_MissingParent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "test_dir")

	c := NewScratchChecker()
	err := c.Run(ScratchConfig{DirName: dir}, common.NewHostReport(), output.NewNoOpOutput())

	var envErr *common.EnvError
	if !errors.As(err, &envErr) {
		t.Fatalf("error should be *common.EnvError, got %T: %v", err, err)
	}
}
