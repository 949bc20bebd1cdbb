// Package filename classifies path-like command-line tokens.
//
// Tokens such as "internal/config/loader.go:42:7" carry a line (and
// optionally a column) suffix. The resolver uses this to infer the explain
// command, and the working-directory argument is stripped back to a bare
// path before it is used on the filesystem.
package filename

import "strings"

// ContainsLineNumber reports whether token ends in ":<line>" or
// ":<line>:<column>" with decimal integers.
func ContainsLineNumber(token string) bool {
	_, ok := splitLineAndColumn(token)
	return ok
}

// StripLineAndColumn removes a trailing ":<line>[:<column>]" suffix.
// Tokens without such a suffix are returned unchanged.
func StripLineAndColumn(token string) string {
	if path, ok := splitLineAndColumn(token); ok {
		return path
	}
	return token
}

// Position extracts the line and column encoded in token. Column is 0 when
// the token only carries a line. ok is false when there is no suffix at all.
func Position(token string) (line, column int, ok bool) {
	if _, valid := splitLineAndColumn(token); !valid {
		return 0, 0, false
	}
	parts := strings.Split(token, ":")
	if len(parts) >= 3 && isDecimal(parts[len(parts)-2]) && isDecimal(parts[len(parts)-1]) {
		line, _ = parseDecimal(parts[len(parts)-2])
		column, _ = parseDecimal(parts[len(parts)-1])
		return line, column, true
	}
	if len(parts) >= 2 && isDecimal(parts[len(parts)-1]) {
		line, _ = parseDecimal(parts[len(parts)-1])
		return line, 0, true
	}
	return 0, 0, false
}

func splitLineAndColumn(token string) (string, bool) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 {
		return "", false
	}

	// Try ":line:column" first, then ":line". A token with nothing before
	// the suffix is not a location.
	if len(parts) >= 3 {
		line := parts[len(parts)-2]
		column := parts[len(parts)-1]
		if isDecimal(line) && isDecimal(column) {
			path := strings.Join(parts[:len(parts)-2], ":")
			return path, path != ""
		}
	}
	line := parts[len(parts)-1]
	if isDecimal(line) {
		path := strings.Join(parts[:len(parts)-1], ":")
		return path, path != ""
	}
	return "", false
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseDecimal(s string) (int, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
