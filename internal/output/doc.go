// Package output provides output interfaces for probes, enabling both
// streaming and buffered transcript modes.
//
// The Output interface abstracts probe output so the same probe code works
// for the sequential CLI run and for MCP tool invocations:
//
//   - StreamingOutput: writes directly to an io.Writer as the suite runs
//   - BufferedOutput: collects lines in memory, rendered into tool results
//
// Usage example (sequential):
//
//	out := output.NewStreamingOutput(os.Stdout)
//	out.Banner("PYTHON SIMULATOR - TEST SUITE")
//	out.Section("🖥️", "[2] OS MODULE")
//	out.Info("cwd: %s", wd)
//
// All implementations are thread-safe with mutex protection.
package output
