// Package runner provides the execution context and orchestration for the
// smoke-test suite.
//
// Key components:
//
//   - RunContext: carries shared resources (report, output sink, workdir,
//     per-checker configs)
//   - Run: the sequential, fail-fast suite loop that frames the transcript
//     with its opening and closing banners
//
// Usage example:
//
//	rc := runner.NewRunContext(context.Background()).
//	    WithOutput(output.NewStreamingOutput(os.Stdout))
//	rc.SetCheckerConfig("os", osinfo.OSConfig{EnvVar: "HOME"})
//	err := rc.Run(checkers.AllCheckers())
package runner
