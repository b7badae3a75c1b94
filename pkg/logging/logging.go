package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config or flag value into a LogLevel. Unknown values map to INFO.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// Format renders the entry the way the activity log shows it.
func (e LogEntry) Format() string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		e.Timestamp.Format("15:04:05.000"),
		e.Level.String(),
		e.Subsystem,
		e.Message)
	if e.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, e.Err)
	}
	return line
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	isTuiMode     bool
	minLevel      = LevelInfo
)

const tuiChannelBufferSize = 1024

func initCommon(mode string, level LogLevel, output io.Writer, channelBufferSize int) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	minLevel = level

	if mode == "tui" {
		isTuiMode = true
		if channelBufferSize <= 0 {
			channelBufferSize = tuiChannelBufferSize
		}
		tuiLogChannel = make(chan LogEntry, channelBufferSize)
		// The alt screen owns stdout; anything that escapes the channel goes to stderr.
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(defaultLogger)
		return tuiLogChannel
	}

	isTuiMode = false
	tuiLogChannel = nil
	defaultLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(defaultLogger)
	return nil
}

// InitForTUI initializes the logging system for TUI mode.
// The returned channel must be drained by the TUI.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	return initCommon("tui", filterLevel, os.Stderr, tuiChannelBufferSize)
}

// InitForCLI initializes the logging system for CLI mode.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	initCommon("cli", filterLevel, output, 0)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}
	now := time.Now()

	mu.RLock()
	defer mu.RUnlock()

	if isTuiMode {
		if level < minLevel {
			return
		}
		if tuiLogChannel == nil {
			fmt.Fprintf(os.Stderr, "[LOGGING_CRITICAL] TUI mode active but log channel is nil. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
			return
		}
		entry := LogEntry{
			Timestamp: now,
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Never block the UI goroutine on a full buffer; drop instead.
		select {
		case tuiLogChannel <- entry:
		default:
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] Logger not initialized. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel. Call once on shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
	isTuiMode = false
}
