package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
)

var levelStrings = map[Level]string{
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
}

// Logger writes leveled, module-prefixed lines.
type Logger struct {
	out     io.Writer
	loggers map[Level]*log.Logger
	level   Level
	module  string
	tags    []string
}

// Options configures a rotating file logger.
type Options struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Level      Level
}

// NewRotating logs to stdout and to a lumberjack-rotated file.
func NewRotating(module string, opts Options) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   true,
	}

	return New(module, io.MultiWriter(rotator, os.Stdout), opts.Level), nil
}

// New logs to w only.
func New(module string, w io.Writer, minLevel Level) *Logger {
	return newLogger(module, nil, w, minLevel)
}

func newLogger(module string, tags []string, w io.Writer, minLevel Level) *Logger {
	l := &Logger{out: w, level: minLevel, module: module, tags: tags}
	prefix := "[" + module + "] "
	for _, tag := range tags {
		prefix += "[" + tag + "] "
	}
	l.loggers = make(map[Level]*log.Logger)
	for level, name := range levelStrings {
		l.loggers[level] = log.New(w, "["+name+"] "+prefix, log.LstdFlags)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("discard", io.Discard, ERROR+1)
}

// With returns a logger whose module prefix is extended with tag,
// e.g. a request id.
func (l *Logger) With(tag string) *Logger {
	if l == nil {
		return nil
	}
	tags := append(slices.Clone(l.tags), tag)
	return newLogger(l.module, tags, l.out, l.level)
}

func (l *Logger) Debug(format string, v ...interface{})   { l.logf(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})    { l.logf(INFO, format, v...) }
func (l *Logger) Warning(format string, v ...interface{}) { l.logf(WARNING, format, v...) }
func (l *Logger) Error(format string, v ...interface{})   { l.logf(ERROR, format, v...) }

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if l == nil || l.level > level {
		return
	}
	l.loggers[level].Printf(format, v...)
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}
