package config

import (
	"path/filepath"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/usage"
)

// Overlay carries the command-line switch values that land in the
// configuration. Nil fields were not given and leave the loaded value alone;
// switches always win over the project file.
type Overlay struct {
	All           *bool
	AllPriorities *bool
	Checks        *string
	CrashOnError  *bool
	Format        *string
	Help          *bool
	IgnoreChecks  *string
	MinPriority   *int
	ReadFromStdin *bool
	Strict        *bool
	Verbose       *bool
	Version       *bool
}

// Resolve builds the merged configuration for a working directory:
//
//  1. best-effort read of the well-known JSON side-config,
//  2. project configuration (file or structural default, optional profile),
//     with the default overrides layered underneath,
//  3. conservative include rewrite from the side-config,
//  4. command-line switch overlay on top.
//
// Project-configuration failures are fatal and surface as a usage error;
// side-config failures never are.
func Resolve(dir, profile string, overlay Overlay) (*Config, error) {
	side := ReadSideConfig(filepath.Join(dir, SideFileName))

	cfg, err := ReadOrDefault(dir, profile)
	if err != nil {
		return nil, usage.Configuration(err)
	}

	cfg.Included = rewriteIncluded(cfg.Included, side)
	overlay.apply(&cfg)

	// Strict analysis means every priority and every issue.
	if cfg.Strict {
		cfg.All = true
		cfg.MinPriority = DefaultMinPriority
	}

	return &cfg, nil
}

func (o Overlay) apply(cfg *Config) {
	if o.All != nil {
		cfg.All = *o.All
	}
	if o.AllPriorities != nil && *o.AllPriorities {
		cfg.MinPriority = DefaultMinPriority
	}
	if o.Checks != nil {
		cfg.Checks = check.SplitNameList(*o.Checks)
	}
	if o.CrashOnError != nil {
		cfg.CrashOnError = *o.CrashOnError
	}
	if o.Format != nil {
		cfg.Format = *o.Format
	}
	if o.Help != nil {
		cfg.Help = *o.Help
	}
	if o.IgnoreChecks != nil {
		cfg.IgnoreChecks = check.SplitNameList(*o.IgnoreChecks)
	}
	if o.MinPriority != nil {
		cfg.MinPriority = *o.MinPriority
	}
	if o.ReadFromStdin != nil {
		cfg.ReadFromStdin = *o.ReadFromStdin
	}
	if o.Strict != nil {
		cfg.Strict = *o.Strict
	}
	if o.Verbose != nil {
		cfg.Verbose = *o.Verbose
	}
	if o.Version != nil {
		cfg.Version = *o.Version
	}
}
