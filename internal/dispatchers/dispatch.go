package dispatchers

import (
	"github.com/glint-tools/cli/internal/check"
	"github.com/glint-tools/cli/internal/config"
	"github.com/glint-tools/cli/internal/log"
	"github.com/glint-tools/cli/internal/source"
	"github.com/glint-tools/cli/internal/usage"
)

// Dispatch loads any required check manifests, invokes the resolved command,
// and translates its result into a process exit status. A nonzero status is
// a bitmask over the categories of the reported issues; errors are returned
// untranslated for main to surface.
func Dispatch(res Resolution, cfg *config.Config) (int, error) {
	if err := loadRequires(res.DirPath(), cfg); err != nil {
		return 0, err
	}

	log.Debug("dispatch: command=%s dir=%s args=%d", res.Name, res.DirPath(), len(res.Args))
	issues, err := res.Command.Run(res.DirPath(), res.Args, cfg)
	if err != nil {
		return 0, err
	}
	return ExitStatus(issues), nil
}

// loadRequires resolves every requires spec through the source finder and
// registers each resulting manifest before the command runs. Any failure
// here is fatal.
func loadRequires(dir string, cfg *config.Config) error {
	for _, spec := range cfg.Requires {
		paths, err := source.Find(dir, spec)
		if err != nil {
			return usage.Requires(spec, err)
		}
		for _, path := range paths {
			c, err := check.LoadManifest(path)
			if err != nil {
				return usage.Requires(path, err)
			}
			check.Register(c)
			log.Debug("dispatch: loaded check %s from %s", c.Name(), path)
		}
	}
	return nil
}

// ExitStatus OR-combines the exit-status bit of every issue, starting from
// zero. Each category owns a distinct bit, so callers can test for a
// severity class by masking the final code.
func ExitStatus(issues []check.Issue) int {
	status := 0
	for _, issue := range issues {
		status |= issue.ExitStatus
	}
	return status
}
