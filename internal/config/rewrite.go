package config

import "strings"

// Directory entries dropped from include_paths before derivation.
const (
	buildArtifactDir = "bin/"
	dependencyDir    = "vendor/"
)

// recursiveSourceGlob is appended to directory entries.
const recursiveSourceGlob = "**/*.go"

// sourceExtension keeps bare-file entries only when they are source files.
const sourceExtension = ".go"

// rewriteIncluded derives a new Included value from the side-config's
// include_paths. It fires only when included is exactly one of the two
// unconfigured sentinel shapes; a user who customized included is never
// overridden. Entries naming the build-artifact or dependency directories
// are dropped, directories are expanded to a recursive source glob, and
// anything else survives only if it already names a source file.
func rewriteIncluded(included []string, side SideConfig) []string {
	if side.IncludePaths == nil || !isUnconfiguredIncluded(included) {
		return included
	}

	var derived []string
	for _, entry := range side.IncludePaths {
		switch {
		case entry == buildArtifactDir || entry == dependencyDir:
			// dropped
		case strings.HasSuffix(entry, "/"):
			derived = append(derived, entry+recursiveSourceGlob)
		case strings.HasSuffix(entry, sourceExtension):
			derived = append(derived, entry)
		}
	}
	return derived
}
