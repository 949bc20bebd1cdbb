package usage

// ErrorKind represents the type of user-facing error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrParse
	ErrConfiguration
	ErrRequires
)

// Exit codes:
//
//	Exit 1: Environment/configuration errors
//	  - Unknown errors
//	  - Project configuration failed to load
//	  - A required check manifest failed to load
//
//	Exit 2: User input errors
//	  - Unrecognized switch
//	  - Bad typed switch value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:       1,
	ErrParse:         2,
	ErrConfiguration: 1,
	ErrRequires:      1,
}

// Error represents a user-facing error with semantic type information.
// It carries its own process exit code so main never has to guess.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
