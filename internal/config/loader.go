package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/log"
)

// fileConfig is the YAML shape of .glint.yml. Scalar fields are pointers so
// the loader can tell "explicitly set" apart from "absent" when it layers
// the default overrides underneath.
type fileConfig struct {
	Included      []string              `yaml:"included"`
	Excluded      []string              `yaml:"excluded"`
	Checks        string                `yaml:"checks"`
	IgnoreChecks  string                `yaml:"ignore_checks"`
	Requires      []string              `yaml:"requires"`
	Format        string                `yaml:"format"`
	CrashOnError  *bool                 `yaml:"crash_on_error"`
	All           *bool                 `yaml:"all"`
	Strict        *bool                 `yaml:"strict"`
	MinPriority   *int                  `yaml:"min_priority"`
	ReadFromStdin *bool                 `yaml:"read_from_stdin"`
	Verbose       *bool                 `yaml:"verbose"`
	Profiles      map[string]fileConfig `yaml:"profiles"`
}

// ReadOrDefault loads the project configuration for dir, optionally merging
// the named profile over the file's top level. A missing file yields the
// structural default; a file that exists but cannot be read or parsed is an
// error, as is an unknown profile name.
func ReadOrDefault(dir, profile string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug("config: no %s in %s, using defaults", FileName, dir)
		if profile != "" {
			return Config{}, fmt.Errorf("profile %q requested but %s does not exist", profile, path)
		}
		return applyDefaults(fileConfig{}), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if profile != "" {
		pc, ok := fc.Profiles[profile]
		if !ok {
			return Config{}, fmt.Errorf("unknown profile %q in %s", profile, path)
		}
		fc = mergeProfile(fc, pc)
	}

	return applyDefaults(fc), nil
}

// mergeProfile lays the profile's explicitly set values over the base.
func mergeProfile(base, profile fileConfig) fileConfig {
	if profile.Included != nil {
		base.Included = profile.Included
	}
	if profile.Excluded != nil {
		base.Excluded = profile.Excluded
	}
	if profile.Checks != "" {
		base.Checks = profile.Checks
	}
	if profile.IgnoreChecks != "" {
		base.IgnoreChecks = profile.IgnoreChecks
	}
	if profile.Requires != nil {
		base.Requires = profile.Requires
	}
	if profile.Format != "" {
		base.Format = profile.Format
	}
	if profile.CrashOnError != nil {
		base.CrashOnError = profile.CrashOnError
	}
	if profile.All != nil {
		base.All = profile.All
	}
	if profile.Strict != nil {
		base.Strict = profile.Strict
	}
	if profile.MinPriority != nil {
		base.MinPriority = profile.MinPriority
	}
	if profile.ReadFromStdin != nil {
		base.ReadFromStdin = profile.ReadFromStdin
	}
	if profile.Verbose != nil {
		base.Verbose = profile.Verbose
	}
	return base
}

// applyDefaults turns the decoded file into a Config, filling every field
// the file left unset with the default override layer.
func applyDefaults(fc fileConfig) Config {
	cfg := Config{
		Included:     fc.Included,
		Excluded:     fc.Excluded,
		Checks:       check.SplitNameList(fc.Checks),
		IgnoreChecks: check.SplitNameList(fc.IgnoreChecks),
		Requires:     fc.Requires,
		Format:       fc.Format,
		CrashOnError: DefaultCrashOnError,
		All:          DefaultAll,
		MinPriority:  DefaultMinPriority,
	}
	if len(cfg.Included) == 0 {
		cfg.Included = DefaultIncluded()
	}
	if fc.CrashOnError != nil {
		cfg.CrashOnError = *fc.CrashOnError
	}
	if fc.All != nil {
		cfg.All = *fc.All
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.MinPriority != nil {
		cfg.MinPriority = *fc.MinPriority
	}
	if fc.ReadFromStdin != nil {
		cfg.ReadFromStdin = *fc.ReadFromStdin
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return cfg
}
