// Package ftglog writes ftg log entries to a rotated log file.
package ftglog

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Defaults of the log file rotation.
const (
	DefaultMaxSize    = 10
	DefaultMaxBackups = 5
	DefaultMaxAge     = 30
)

// LoggerOpts describes the logger options.
type LoggerOpts struct {
	// Filename is the name of log file.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int
}

// Logger writes log entries as JSON lines to a rotated file.
type Logger struct {
	// ljLogger is an io.WriteCloser that writes to the specified filename.
	ljLogger *lumberjack.Logger
	// handler encodes the entries.
	handler *json.Handler
	// opts describes the parameters that were used to create the logger.
	opts *LoggerOpts
}

// NewLogger creates a new object of Logger.
func NewLogger(opts *LoggerOpts) *Logger {
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	return &Logger{ljLogger: ljLogger, handler: json.New(ljLogger), opts: opts}
}

// HandleLog implements log.Handler.
func (logger *Logger) HandleLog(entry *log.Entry) error {
	if err := logger.handler.HandleLog(entry); err != nil {
		return fmt.Errorf("failed to write log file %s: %w", logger.opts.Filename, err)
	}
	return nil
}

// Rotate causes Logger to close the existing log file and immediately create a
// new one. After rotating, this initiates removal of old log files according to
// the configuration.
func (logger *Logger) Rotate() error {
	return logger.ljLogger.Rotate()
}

// GetOpts returns the parameters that were used to create the logger.
func (logger *Logger) GetOpts() *LoggerOpts {
	return logger.opts
}

// Close implements io.Closer, and closes the current logfile.
func (logger *Logger) Close() error {
	return logger.ljLogger.Close()
}

// Tee returns a handler passing every entry to console and to the log file.
func (logger *Logger) Tee(console log.Handler) log.Handler {
	return multi.New(console, logger)
}
