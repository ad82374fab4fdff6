package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

// levelColors maps log levels to ANSI color codes
var levelColors = map[LogLevel]string{
	TRACE: "\033[37m", // White
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
	FATAL: "\033[35m", // Magenta
}

// levelPrefixes maps log levels to text prefixes
var levelPrefixes = map[LogLevel]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// ParseLevel converts a level name to a LogLevel. Unknown names map to INFO.
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return TRACE
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// String returns the lower case name of the level
func (l LogLevel) String() string {
	return strings.ToLower(strings.TrimSpace(levelPrefixes[l]))
}

// sink is shared by a logger and every child created with Named
type sink struct {
	logger    *log.Logger
	file      *os.File
	useColors bool
	exit      func(code int)
}

// Logger handles logging functionalities
type Logger struct {
	level LogLevel
	name  string
	out   *sink
}

// NewLogger creates a new console logger with the specified log level
func NewLogger(levelStr string) *Logger {
	out := &sink{
		logger:    log.New(os.Stdout, "", 0), // prefix is formatted manually
		useColors: true,
		exit:      os.Exit,
	}

	// Disable colors if not in a terminal
	if fileInfo, err := os.Stdout.Stat(); err != nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		out.useColors = false
	}

	return &Logger{level: ParseLevel(levelStr), out: out}
}

// NewWriterLogger creates a logger writing uncoloured output to w
func NewWriterLogger(levelStr string, w io.Writer) *Logger {
	return &Logger{
		level: ParseLevel(levelStr),
		out: &sink{
			logger: log.New(w, "", 0),
			exit:   os.Exit,
		},
	}
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// NewFileLogger creates a new logger that writes to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(levelStr)
	logger.out.logger.SetOutput(file)
	logger.out.file = file
	logger.out.useColors = false

	return logger, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(levelStr)
	logger.out.logger.SetOutput(io.MultiWriter(os.Stdout, file))
	logger.out.file = file

	return logger, nil
}

// Named returns a child logger whose messages carry the given component name.
// The child shares output and level with its parent at creation time.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = l.name + "." + name
	} else {
		child.name = name
	}
	return &child
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.level
}

// output writes one line. It must be called directly from a public method so
// the caller lookup lands on user code.
func (l *Logger) output(level LogLevel, msg string) {
	if level < l.level {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}
	file = filepath.Base(file)

	now := time.Now().Format("2006/01/02 15:04:05")
	prefix := fmt.Sprintf("%s [%s] %s:%d:", now, levelPrefixes[level], file, line)

	if l.out.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	if l.name != "" {
		prefix += " " + l.name + ":"
	}

	l.out.logger.Println(prefix, msg)

	if level == FATAL {
		l.Close()
		l.out.exit(1)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(v ...interface{}) {
	l.output(TRACE, fmt.Sprint(v...))
}

// Tracef logs a formatted trace message
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.output(TRACE, fmt.Sprintf(format, v...))
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) {
	l.output(DEBUG, fmt.Sprint(v...))
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(DEBUG, fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	l.output(INFO, fmt.Sprint(v...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(INFO, fmt.Sprintf(format, v...))
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) {
	l.output(WARN, fmt.Sprint(v...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(WARN, fmt.Sprintf(format, v...))
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	l.output(ERROR, fmt.Sprint(v...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(ERROR, fmt.Sprintf(format, v...))
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) {
	l.output(FATAL, fmt.Sprint(v...))
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.output(FATAL, fmt.Sprintf(format, v...))
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.level = ParseLevel(levelStr)
}

// SetOutput sets the output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.out.logger.SetOutput(w)
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.out.useColors = enable
}

// SetExitFunc replaces the function FATAL messages call after logging
func (l *Logger) SetExitFunc(exit func(code int)) {
	l.out.exit = exit
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.out.file != nil {
		l.out.file.Close()
		l.out.file = nil
	}
}
