package usage

import "fmt"

// UnknownSwitch is returned when a flag-looking token is not in the
// recognized switch table. suggestion may be empty.
func UnknownSwitch(flag, suggestion string) *Error {
	msg := fmt.Sprintf("glint: unrecognized switch '%s'", flag)
	if suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean '--%s'?)", msg, suggestion)
	}
	return &Error{Kind: ErrParse, Message: msg}
}

// BadSwitchValue is returned when a typed switch value fails to parse.
func BadSwitchValue(flag, value string) *Error {
	return &Error{
		Kind:    ErrParse,
		Message: fmt.Sprintf("glint: invalid value '%s' for switch '%s'", value, flag),
	}
}
