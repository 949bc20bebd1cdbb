package config

import (
	"encoding/json"
	"os"

	"github.com/glint-tools/cli/internal/log"
)

// SideFileName is the well-known side-config path, relative to the working
// directory. External tooling (editors, CI wrappers) writes it to narrow the
// analysis scope without touching the project configuration.
const SideFileName = ".glint/settings.json"

// SideConfig is the recognized shape of the side-config file.
type SideConfig struct {
	IncludePaths []string `json:"include_paths"`
}

// ReadSideConfig reads the side-config at path. The read is best-effort: a
// missing file yields the empty object silently, and a file that exists but
// is not valid JSON yields the empty object with a logged warning. Neither
// case is an error.
func ReadSideConfig(path string) SideConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		return SideConfig{}
	}
	var sc SideConfig
	if err := json.Unmarshal(data, &sc); err != nil {
		log.Warn("config: ignoring malformed side-config %s: %v", path, err)
		return SideConfig{}
	}
	return sc
}
