package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	issues := Validate(Default())
	assert.False(t, HasError(issues), "default config must not carry error-severity issues: %v", issues)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotify.yaml")
	body := `
db:
  driver: postgres
  host: db.internal
  port: 5432
  user: loader
  database: spotify
load:
  data_dir: /srv/spotify
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal:5432", cfg.DB.Addr())
	assert.Equal(t, "/srv/spotify", cfg.Load.DataDir)
	// Unset file keys keep their defaults.
	assert.Equal(t, Default().Load.BatchSize, cfg.Load.BatchSize)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: ["), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SPOTIFY_DB_HOST", "10.0.0.9")
	t.Setenv("SPOTIFY_DB_PORT", "3307")
	t.Setenv("SPOTIFY_DB_PASSWORD", "hunter2")
	t.Setenv("SPOTIFY_BATCH_SIZE", "100")

	cfg, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.9", cfg.DB.Host)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.Equal(t, "hunter2", cfg.DB.Password)
	assert.Equal(t, 100, cfg.Load.BatchSize)
	// Untouched fields keep defaults.
	assert.Equal(t, "mysql", cfg.DB.Driver)
}

func TestFromEnvRejectsMalformedPort(t *testing.T) {
	t.Setenv("SPOTIFY_DB_PORT", "not-a-port")
	_, err := FromEnv(Default())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs bool
		wantPath string
	}{
		{
			name:     "empty driver",
			mutate:   func(c *Config) { c.DB.Driver = "" },
			wantErrs: true,
			wantPath: "db.driver",
		},
		{
			name:     "unknown driver is a warning only",
			mutate:   func(c *Config) { c.DB.Driver = "oracle" },
			wantErrs: false,
		},
		{
			name:     "port out of range",
			mutate:   func(c *Config) { c.DB.Port = 70000 },
			wantErrs: true,
			wantPath: "db.port",
		},
		{
			name:     "empty database",
			mutate:   func(c *Config) { c.DB.Database = "" },
			wantErrs: true,
			wantPath: "db.database",
		},
		{
			name:     "zero batch size",
			mutate:   func(c *Config) { c.Load.BatchSize = 0 },
			wantErrs: true,
			wantPath: "load.batch_size",
		},
		{
			name: "sqlite skips network checks",
			mutate: func(c *Config) {
				c.DB.Driver = "sqlite"
				c.DB.Host = ""
				c.DB.Port = 0
				c.DB.User = ""
				c.DB.Database = "spotify.db"
			},
			wantErrs: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			issues := Validate(cfg)
			assert.Equal(t, tt.wantErrs, HasError(issues), "issues: %v", issues)
			if tt.wantPath != "" {
				found := false
				for _, iss := range issues {
					if iss.Path == tt.wantPath {
						found = true
					}
				}
				assert.True(t, found, "no issue at path %s in %v", tt.wantPath, issues)
			}
		})
	}
}

func TestIssueError(t *testing.T) {
	iss := Issue{SeverityError, "db.host", "host must not be empty"}
	assert.Equal(t, "error at db.host: host must not be empty", iss.Error())
}
