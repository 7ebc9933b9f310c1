// Package logging provides the timestamped message sink used across a
// payroll run. One line per call, either to standard output or appended to a
// text file.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timestampFormat = "2006-01-02 15:04:05"

type Logger interface {
	Log(message string)
}

func newSink(out io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timestampFormat,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(console).With().Timestamp().Logger()
}

// ConsoleLogger writes timestamped lines to a single writer, standard output
// by default.
type ConsoleLogger struct {
	sink zerolog.Logger
}

func NewConsoleLogger() *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stdout)
}

func NewConsoleLoggerTo(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{sink: newSink(out)}
}

func (l *ConsoleLogger) Log(message string) {
	l.sink.Info().Msg(message)
}

// FileLogger appends timestamped lines to a text file. The file is opened,
// written, and closed per message; there is exactly one writer per run. An
// open failure degrades to a stderr notice rather than dropping the run.
type FileLogger struct {
	Path string
}

func NewFileLogger(path string) *FileLogger {
	return &FileLogger{Path: path}
}

func (l *FileLogger) Log(message string) {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		os.Stderr.WriteString("payroll log unavailable: " + err.Error() + "\n")
		return
	}
	defer f.Close()
	sink := newSink(f)
	sink.Info().Msg(message)
}
