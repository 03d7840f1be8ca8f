package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTextFormatterLayout(t *testing.T) {
	rec := Record{
		Time:    time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Name:    "app",
		Level:   LevelError,
		Message: "boom",
	}

	assert.Equal(t, "2026-03-14 15:09:26 - app - ERROR - boom", TextFormatter{}.Format(rec))
}

func TestColorFormatterWrapsEveryLevel(t *testing.T) {
	wantColors := map[Level]string{
		LevelDebug:    "\033[37m",
		LevelInfo:     "\033[36m",
		LevelWarning:  "\033[33m",
		LevelError:    "\033[31m",
		LevelCritical: "\033[41m",
	}

	rec := Record{
		Time:    time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Name:    "etl",
		Message: "stage done",
	}

	for level, color := range wantColors {
		rec.Level = level
		line := ColorFormatter{}.Format(rec)

		assert.True(t, strings.HasPrefix(line, color), "level %s should start with its color code", level)
		assert.True(t, strings.HasSuffix(line, Reset), "level %s should end with the reset code", level)
		assert.Equal(t, TextFormatter{}.Format(rec), strings.TrimSuffix(strings.TrimPrefix(line, color), Reset))
	}
}

func TestColorFormatterUnknownLevelFallsBackToReset(t *testing.T) {
	rec := Record{
		Time:    time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Name:    "etl",
		Level:   Level(42),
		Message: "odd level",
	}

	line := ColorFormatter{}.Format(rec)

	assert.True(t, strings.HasPrefix(line, Reset))
	assert.True(t, strings.HasSuffix(line, Reset))
}
