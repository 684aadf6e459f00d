package common

const (
	// EnvVarSentinel is printed when the probed environment variable is unset.
	EnvVarSentinel = "(not set)"

	// DefaultEnvVar is the variable the os probe reads unless configured.
	DefaultEnvVar = "HOME"

	// DefaultScratchDir is the directory the scratch probe creates and removes.
	DefaultScratchDir = "test_dir"
)

// HostReport collects the results of a suite run. Every field is transient;
// nothing is persisted across runs.
type HostReport struct {
	WorkDir        string
	User           string
	EnvVar         string
	EnvValue       string
	EnvSet         bool
	DirEntries     []string
	ScratchDir     string
	ScratchCreated bool
	ScratchRemoved bool
	RandomFloat    float64
	RandomInt      int
	ChecksRun      []string
}

func NewHostReport() *HostReport {
	return &HostReport{
		DirEntries: []string{},
		ChecksRun:  []string{},
	}
}

// Record marks a check as completed.
func (r *HostReport) Record(name string) {
	r.ChecksRun = append(r.ChecksRun, name)
}
