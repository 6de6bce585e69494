// Package cli provides the command-line interface for kitebuild.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kitecorp/kitebuild/internal/config"
	"github.com/kitecorp/kitebuild/internal/constants"
)

// logFileWriter holds the log file writer for cleanup purposes.
// This is package-level to enable cleanup during shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Output format is determined by the terminal:
//   - TTY with colors enabled: console writer with timestamps
//   - Non-TTY or NO_COLOR set: JSON output to stderr
//
// The logger also writes to ~/.kitebuild/logs/kitebuild.log with rotation
// enabled. If the log file cannot be created, the logger continues with
// console-only output.
func InitLogger(verbose, quiet bool) zerolog.Logger {
	console := selectConsoleWriter()

	writer := console
	if fileWriter, err := createLogFileWriter(); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	return zerolog.New(writer).
		Level(selectLevel(verbose, quiet)).
		With().Timestamp().Logger()
}

// CloseLogFile closes the log file writer if one was opened.
// Called during shutdown to flush pending writes.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// selectLevel maps verbosity flags to a zerolog level.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectConsoleWriter returns a human-readable console writer on a TTY and
// plain JSON to stderr otherwise (or when NO_COLOR is set).
func selectConsoleWriter() io.Writer {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !term.IsTerminal(int(os.Stderr.Fd())) {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
}

// createLogFileWriter opens the rotating CLI log file under the kitebuild
// home directory.
func createLogFileWriter() (io.WriteCloser, error) {
	home, err := config.GlobalConfigDir()
	if err != nil {
		return nil, err
	}

	logsDir := filepath.Join(home, constants.LogsDir)
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, constants.CLILogFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}, nil
}
