package logger

import (
	"fmt"
	"time"
)

// Record is a single log event. It is built per call, handed to each
// attached sink and then discarded.
type Record struct {
	Time    time.Time
	Name    string
	Level   Level
	Message string
}

// Formatter renders a record into one line of text.
type Formatter interface {
	Format(rec Record) string
}

// TextFormatter produces the plain line written to the daily log file.
type TextFormatter struct{}

func (TextFormatter) Format(rec Record) string {
	return fmt.Sprintf("%s - %s - %s - %s", rec.Time.Format("2006-01-02 15:04:05"), rec.Name, rec.Level, rec.Message)
}

// ColorFormatter wraps the plain line in the ANSI color of the record's
// level for console output.
type ColorFormatter struct {
	text TextFormatter
}

func (f ColorFormatter) Format(rec Record) string {
	return colorFor(rec.Level) + f.text.Format(rec) + Reset
}
