package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Provider validation
	if c.Provider.Model == "" {
		errs = append(errs, "provider.model must be set")
	}
	if c.Provider.MaxOutputTokens < 1 {
		errs = append(errs, "provider.max_output_tokens must be >= 1")
	}

	// Orchestrator validation
	if c.Orchestrator.MaxIterations < 1 {
		errs = append(errs, "orchestrator.max_iterations must be >= 1")
	}

	// Tools validation
	if c.Tools.BackupDir == "" {
		errs = append(errs, "tools.backup_dir must be set")
	}
	if strings.ContainsRune(c.Tools.BackupDir, '/') {
		errs = append(errs, "tools.backup_dir must be a bare directory name")
	}
	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.DefaultCommandTimeout < 1 {
		errs = append(errs, "tools.default_command_timeout must be >= 1")
	}
	if c.Tools.MaxCommandOutputSize < 1 {
		errs = append(errs, "tools.max_command_output_size must be >= 1")
	}
	if c.Tools.GracefulShutdownMs < 1 {
		errs = append(errs, "tools.graceful_shutdown_ms must be >= 1")
	}
	if c.Tools.MatchDisplayLimit < 1 {
		errs = append(errs, "tools.match_display_limit must be >= 1")
	}
	if c.Tools.BinaryDetectionSampleSize < 1 {
		errs = append(errs, "tools.binary_detection_sample_size must be >= 1")
	}
	if c.Tools.MaxScanTokenSize < 1 {
		errs = append(errs, "tools.max_scan_token_size must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
