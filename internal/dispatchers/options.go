package dispatchers

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"

	"github.com/glint-tools/cli/internal/usage"
)

// SwitchType is the value type of a recognized switch.
type SwitchType int

const (
	SwitchBool SwitchType = iota
	SwitchString
	SwitchInt
)

// Switch describes one recognized long-form switch, with an optional
// single-character alias.
type Switch struct {
	Name  string
	Alias string
	Type  SwitchType
	Usage string
}

// ParsedOptions is the result of option parsing: typed access to the
// recognized switches plus the ordered positional arguments.
type ParsedOptions struct {
	fs          *pflag.FlagSet
	positionals []string
}

// ParseOptions splits args into recognized switches and positionals using
// the given switch table. Any flag-looking token outside the table, or a
// value that fails its switch's type, is a hard parse failure; there is no
// partial success.
func ParseOptions(args []string, table []Switch) (*ParsedOptions, error) {
	fs := pflag.NewFlagSet("glint", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(discard{})
	fs.Usage = func() {}

	for _, sw := range table {
		switch sw.Type {
		case SwitchBool:
			fs.BoolP(sw.Name, sw.Alias, false, sw.Usage)
		case SwitchString:
			fs.StringP(sw.Name, sw.Alias, "", sw.Usage)
		case SwitchInt:
			fs.IntP(sw.Name, sw.Alias, 0, sw.Usage)
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, classifyParseError(err, table)
	}
	return &ParsedOptions{fs: fs, positionals: fs.Args()}, nil
}

// Positional returns the positional arguments in order.
func (o *ParsedOptions) Positional() []string {
	return o.positionals
}

// Bool returns a boolean switch value and whether it was given explicitly.
func (o *ParsedOptions) Bool(name string) (value, set bool) {
	value, _ = o.fs.GetBool(name)
	return value, o.fs.Changed(name)
}

// String returns a string switch value and whether it was given explicitly.
func (o *ParsedOptions) String(name string) (value string, set bool) {
	value, _ = o.fs.GetString(name)
	return value, o.fs.Changed(name)
}

// Int returns an integer switch value and whether it was given explicitly.
func (o *ParsedOptions) Int(name string) (value int, set bool) {
	value, _ = o.fs.GetInt(name)
	return value, o.fs.Changed(name)
}

var invalidArgumentRe = regexp.MustCompile(`^invalid argument "(.*)" for "([^"]+)" flag`)

func classifyParseError(err error, table []Switch) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		flag := strings.TrimPrefix(msg, "unknown flag: ")
		return usage.UnknownSwitch(flag, SuggestSwitch(strings.TrimLeft(flag, "-"), table))
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		flag := msg[len("unknown shorthand flag: "):]
		if i := strings.Index(flag, " in "); i >= 0 {
			flag = strings.Trim(flag[:i], "'")
		}
		return usage.UnknownSwitch("-"+flag, SuggestSwitch(flag, table))
	default:
		if m := invalidArgumentRe.FindStringSubmatch(msg); m != nil {
			// pflag names flags with a shorthand as "-x, --name"; keep the
			// long form.
			name := m[2]
			if i := strings.LastIndex(name, "--"); i >= 0 {
				name = name[i+2:]
			}
			return usage.BadSwitchValue(name, m[1])
		}
		return &usage.Error{Kind: usage.ErrParse, Message: "glint: " + msg}
	}
}

// discard suppresses pflag's own error printing; errors surface through the
// usage package instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
