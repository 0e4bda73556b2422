package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Level is the importance or severity of a log event. The higher
// the level, the more severe the event. Levels share their numbering
// with [log/slog].
type Level slog.Level

// Names for common levels.
const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level, i.e. "WARN".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}

	return slog.Level(l).String()
}

// Level returns l as a [slog.Level]. It implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// AppendText implements [encoding.TextAppender] by calling
// [Level.String].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler] by calling
// [Level.AppendText].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts any
// string produced by [Level.MarshalText], ignoring case, as well as
// "disable", "disabled", and "false" for [LevelDisabled].
func (l *Level) UnmarshalText(data []byte) (err error) {
	switch string(bytes.ToLower(data)) {
	case "disable", "disabled", "false":
		*l = LevelDisabled
	default:
		err = (*slog.Level)(l).UnmarshalText(data)
	}

	return
}

// MarshalYAML implements [yaml.Marshaler].
func (l Level) MarshalYAML() (any, error) {
	return strings.ToLower(l.String()), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler], accepting the same
// forms as [Level.UnmarshalText].
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}

// MarshalJSON implements [encoding/json.Marshaler] by quoting the
// output of [Level.String].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler], accepting the
// same forms as [Level.UnmarshalText].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}

// LevelFlag implements the interfaces needed for a Level to be used
// as a command-line flag.
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return (Level)(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Get() any {
	return (Level)(*lf)
}

func (lf *LevelFlag) Type() string {
	return "level"
}
