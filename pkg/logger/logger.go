// Package logger builds the zerolog logger shared by the cruddemo commands.
//
//	log, err := logger.New().Level("debug").Console(true).Make()
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//	log.Logger.Info().Str("backend", "sqlite").Msg("store ready")
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

type LogBuild struct {
	writer  io.Writer
	path    string
	level   string
	console bool
}

type LogData struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

// FromPath appends log lines to the file at path. It takes precedence over
// FromBuffer.
func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// Level sets the minimum level by name ("debug", "info", "warn", ...).
// An empty name means info.
func (build *LogBuild) Level(level string) *LogBuild {
	build.level = level
	return build
}

// Console switches from JSON lines to zerolog's human readable console output.
func (build *LogBuild) Console(enabled bool) *LogBuild {
	build.console = enabled
	return build
}

func (build *LogBuild) Make() (logData *LogData, err error) {
	level := zerolog.InfoLevel
	if build.level != "" {
		level, err = zerolog.ParseLevel(build.level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", build.level, err)
		}
	}

	logData = new(LogData)
	logData.writer = os.Stderr
	if build.writer != nil {
		logData.writer = build.writer
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.writer = zerolog.SyncWriter(logData.LogFile)
	}
	if build.console {
		logData.writer = zerolog.ConsoleWriter{Out: logData.writer, NoColor: build.path != ""}
	}
	logData.Logger = zerolog.New(logData.writer).Level(level).With().Timestamp().Logger()
	return logData, nil
}

// Close releases the log file, if one was opened.
func (logData *LogData) Close() error {
	if logData == nil || logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}
