package mcp

type ProbeToolInput struct {
	EnvVar     string `json:"env_var,omitempty"`
	ScratchDir string `json:"scratch_dir,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	Sample     string `json:"sample,omitempty"`
}

type ProbeToolOutput struct {
	RunID   string `json:"run_id"`
	Summary string `json:"summary"`
	Report  string `json:"report"`
}
