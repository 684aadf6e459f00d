package osinfo

import (
	"errors"
	"os"
	"os/user"

	"github.com/R167/pysmoke/checkers/common"
	"github.com/R167/pysmoke/internal/checker"
	"github.com/R167/pysmoke/internal/output"
)

type OSChecker struct{}

type OSConfig struct {
	EnvVar string
}

func NewOSChecker() checker.Checker {
	return &OSChecker{}
}

func (c *OSChecker) Name() string {
	return "os"
}

func (c *OSChecker) Description() string {
	return "Working directory, user identity, environment, and path queries"
}

func (c *OSChecker) Icon() string {
	return "🖥️"
}

func (c *OSChecker) DefaultConfig() checker.CheckerConfig {
	return OSConfig{
		EnvVar: common.DefaultEnvVar,
	}
}

func (c *OSChecker) DefaultEnabled() bool {
	return true
}

func (c *OSChecker) Run(config checker.CheckerConfig, report *common.HostReport, out output.Output) error {
	cfg := config.(OSConfig)
	out.Section(c.Icon(), "[2] OS MODULE")

	wd, err := os.Getwd()
	if err != nil {
		return &common.EnvError{Op: "getwd", Err: err}
	}
	report.WorkDir = wd
	out.Info("cwd: %s", wd)

	username, source, err := currentUser()
	if err != nil {
		return &common.EnvError{Op: "current user", Err: err}
	}
	out.Debug("OS: user resolved via %s", source)
	report.User = username
	out.Info("user: %s", username)

	// Absence of the variable is expected and non-fatal; only real I/O
	// failures abort the suite.
	value, ok := os.LookupEnv(cfg.EnvVar)
	report.EnvVar = cfg.EnvVar
	report.EnvValue = value
	report.EnvSet = ok
	if ok {
		out.Info("%s: %s", cfg.EnvVar, value)
	} else {
		out.Info("%s: %s", cfg.EnvVar, common.EnvVarSentinel)
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return &common.EnvError{Op: "listdir", Path: ".", Err: err}
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	report.DirEntries = names
	out.Debug("OS: listdir found %d entries", len(names))
	out.Info("listdir: %v", names)

	info, err := os.Stat(".")
	if err != nil {
		return &common.EnvError{Op: "stat", Path: ".", Err: err}
	}
	out.Info("exists .: %t", true)
	out.Info("isdir .: %t", info.IsDir())

	report.Record(c.Name())
	return nil
}

func (c *OSChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "probe_os",
		Description: "Query working directory, user identity, an environment variable, and the directory listing",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"env_var": map[string]interface{}{
					"type":        "string",
					"description": "Name of the environment variable to read",
					"default":     common.DefaultEnvVar,
				},
			},
			"required": []string{},
		},
	}
}

// currentUser resolves the logged-in user, falling back to USER/LOGNAME when
// the account database is unavailable (static binaries, minimal containers).
// The second return names the source the name came from.
func currentUser() (string, string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, "user.Current", nil
	}
	for _, key := range []string{"USER", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, "$" + key, nil
		}
	}
	if err == nil {
		err = errors.New("empty username")
	}
	return "", "", err
}
