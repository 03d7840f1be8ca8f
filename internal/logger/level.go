package logger

import "fmt"

// Level represents the severity of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

// Reset clears any active ANSI color on the terminal.
const Reset = "\033[0m"

var levelColors = map[Level]string{
	LevelDebug:    "\033[37m", // gray
	LevelInfo:     "\033[36m", // cyan
	LevelWarning:  "\033[33m", // yellow
	LevelError:    "\033[31m", // red
	LevelCritical: "\033[41m", // red background
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// colorFor returns the ANSI code for a level, falling back to Reset for
// levels outside the known set.
func colorFor(level Level) string {
	if color, ok := levelColors[level]; ok {
		return color
	}
	return Reset
}
