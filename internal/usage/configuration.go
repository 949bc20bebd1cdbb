package usage

import "fmt"

// Configuration wraps a project-configuration load failure.
func Configuration(err error) *Error {
	return &Error{
		Kind:    ErrConfiguration,
		Message: fmt.Sprintf("glint: configuration error: %v", err),
	}
}

// Requires wraps a failure to load a file listed under requires.
func Requires(path string, err error) *Error {
	return &Error{
		Kind:    ErrRequires,
		Message: fmt.Sprintf("glint: could not load required check file '%s': %v", path, err),
	}
}
