package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Registry owns the named loggers of the process. Construct one at startup
// and pass it wherever loggers are needed; there is no package-level
// instance.
type Registry struct {
	mu      sync.Mutex
	dir     string
	console io.Writer
	now     func() time.Time
	loggers map[string]*Logger
}

// NewRegistry returns a registry writing daily files under dir and colored
// output to stdout.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:     dir,
		console: os.Stdout,
		now:     time.Now,
		loggers: make(map[string]*Logger),
	}
}

// GetLogger returns the logger registered under name, creating it and
// attaching its file and console sinks on first use. minLevel applies to
// both sinks and defaults to LevelDebug. Repeated calls return the existing
// entry unchanged, whatever level they pass.
func (r *Registry) GetLogger(name string, minLevel ...Level) (*Logger, error) {
	level := LevelDebug
	if len(minLevel) > 0 {
		level = minLevel[0]
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", r.dir, err)
	}

	lg, ok := r.loggers[name]
	if !ok {
		// The logger's own gate stays at LevelDebug; the per-sink levels
		// do the filtering.
		lg = &Logger{name: name, minLevel: LevelDebug, now: r.now}
		r.loggers[name] = lg
	}

	if len(lg.sinks) == 0 {
		path := r.logFilePath()
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		lg.sinks = append(lg.sinks,
			&sink{out: file, formatter: TextFormatter{}, minLevel: level},
			&sink{out: r.console, formatter: ColorFormatter{}, minLevel: level},
		)
	}

	return lg, nil
}

// logFilePath names the file after the current date, one file per day.
func (r *Registry) logFilePath() string {
	return filepath.Join(r.dir, r.now().Format("01-02-2006")+".log")
}
