package config

import (
	"fmt"
	"strings"
)

// IssueSeverity classifies a validation finding.
type IssueSeverity string

const (
	// SeverityError blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is surfaced but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue is a single validation finding. Path is a dotted path into the
// config (e.g. "db.port").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements error so a single Issue can be returned directly.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// knownDrivers mirrors the backends wired in by storage/all. Validation
// keeps its own list so it stays usable without importing the drivers.
var knownDrivers = map[string]struct{}{
	"mysql":    {},
	"postgres": {},
	"sqlite":   {},
	"mssql":    {},
}

// Validate statically checks cfg and returns all findings. It does not
// touch the network; callers decide whether warnings are fatal.
func Validate(cfg Config) []Issue {
	var issues []Issue

	if strings.TrimSpace(cfg.DB.Driver) == "" {
		issues = append(issues, Issue{SeverityError, "db.driver", "driver must not be empty"})
	} else if _, ok := knownDrivers[cfg.DB.Driver]; !ok {
		issues = append(issues, Issue{SeverityWarning, "db.driver",
			fmt.Sprintf("unknown driver %q; ensure a matching backend is registered", cfg.DB.Driver)})
	}

	if strings.TrimSpace(cfg.DB.Database) == "" {
		issues = append(issues, Issue{SeverityError, "db.database", "database name must not be empty"})
	}

	// sqlite is file-backed; host/port/user only matter for network drivers.
	if cfg.DB.Driver != "sqlite" {
		if strings.TrimSpace(cfg.DB.Host) == "" {
			issues = append(issues, Issue{SeverityError, "db.host", "host must not be empty"})
		}
		if cfg.DB.Port <= 0 || cfg.DB.Port > 65535 {
			issues = append(issues, Issue{SeverityError, "db.port",
				fmt.Sprintf("port %d out of range", cfg.DB.Port)})
		}
		if strings.TrimSpace(cfg.DB.User) == "" {
			issues = append(issues, Issue{SeverityError, "db.user", "user must not be empty"})
		}
		if cfg.DB.Password == "" {
			issues = append(issues, Issue{SeverityWarning, "db.password",
				"password is empty; set SPOTIFY_DB_PASSWORD unless the server allows passwordless login"})
		}
	}

	if strings.TrimSpace(cfg.Load.DataDir) == "" {
		issues = append(issues, Issue{SeverityError, "load.data_dir", "data_dir must not be empty"})
	}
	if cfg.Load.BatchSize <= 0 {
		issues = append(issues, Issue{SeverityError, "load.batch_size",
			fmt.Sprintf("batch_size must be > 0, got %d", cfg.Load.BatchSize)})
	}

	return issues
}

// HasError reports whether any issue is severity error.
func HasError(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
