package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Provider     ProviderConfig     `json:"provider"`
	Orchestrator OrchestratorConfig `json:"orchestrator"`
	Tools        ToolsConfig        `json:"tools"`
}

type ProviderConfig struct {
	Model           string `json:"model"`             // Default: "gemini-2.5-flash"
	MaxOutputTokens int32  `json:"max_output_tokens"` // Default: 4096
}

type OrchestratorConfig struct {
	// MaxIterations caps the number of model round-trips within one user
	// turn, so a tool-call loop can never run unbounded.
	MaxIterations int `json:"max_iterations"` // Default: 20
}

type ToolsConfig struct {
	// Backups
	BackupDir string `json:"backup_dir"` // Default: ".scribe_backups"

	// File Operations
	MaxFileSize int64 `json:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)

	// Command Execution
	DefaultCommandTimeout int `json:"default_command_timeout"` // Default: 30 (seconds)
	MaxCommandOutputSize  int `json:"max_command_output_size"` // Default: 1024 * 1024 (1MB)
	GracefulShutdownMs    int `json:"graceful_shutdown_ms"`    // Default: 2000

	// Search & Batch Edit
	MatchDisplayLimit         int `json:"match_display_limit"`          // Default: 5 (lines shown per file)
	BinaryDetectionSampleSize int `json:"binary_detection_sample_size"` // Default: 8192
	MaxScanTokenSize          int `json:"max_scan_token_size"`          // Default: 10 * 1024 * 1024 (10MB)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:           "gemini-2.5-flash",
			MaxOutputTokens: 4096,
		},
		Orchestrator: OrchestratorConfig{
			MaxIterations: 20,
		},
		Tools: ToolsConfig{
			BackupDir:                 ".scribe_backups",
			MaxFileSize:               20 * 1024 * 1024,
			DefaultCommandTimeout:     30,
			MaxCommandOutputSize:      1024 * 1024,
			GracefulShutdownMs:        2000,
			MatchDisplayLimit:         5,
			BinaryDetectionSampleSize: 8192,
			MaxScanTokenSize:          10 * 1024 * 1024,
		},
	}
}
