package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty model", func(c *Config) { c.Provider.Model = "" }, "provider.model"},
		{"zero iterations", func(c *Config) { c.Orchestrator.MaxIterations = 0 }, "max_iterations"},
		{"empty backup dir", func(c *Config) { c.Tools.BackupDir = "" }, "backup_dir"},
		{"nested backup dir", func(c *Config) { c.Tools.BackupDir = "a/b" }, "backup_dir"},
		{"zero timeout", func(c *Config) { c.Tools.DefaultCommandTimeout = 0 }, "default_command_timeout"},
		{"negative display limit", func(c *Config) { c.Tools.MatchDisplayLimit = -1 }, "match_display_limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
