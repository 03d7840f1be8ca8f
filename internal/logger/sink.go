package logger

import (
	"fmt"
	"io"
)

// sink pairs a destination with a formatter and its own minimum level.
type sink struct {
	out       io.Writer
	formatter Formatter
	minLevel  Level
}

func (s *sink) emit(rec Record) {
	if rec.Level < s.minLevel {
		return
	}
	fmt.Fprintln(s.out, s.formatter.Format(rec))
}
