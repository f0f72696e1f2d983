package utils

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	RawBodyLog  bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return newLogger(level, rawBodyLog, os.Stdout, os.Stderr)
}

// NewWriterLogger sends every level to w. Used by the CLI so that log lines
// never mix with results printed on stdout.
func NewWriterLogger(level string, w io.Writer) *Logger {
	return newLogger(level, false, w, w)
}

func newLogger(level string, rawBodyLog bool, out, errOut io.Writer) *Logger {
	logLevel := parseLogLevel(level)
	flags := log.Ldate | log.Ltime | log.Lmsgprefix

	return &Logger{
		level:       logLevel,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		RawBodyLog:  rawBodyLog,
	}
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func withReqID(reqID *string, format string) string {
	if reqID == nil || *reqID == "" {
		return format
	}
	return "[" + *reqID + "] " + format
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(withReqID(reqID, format), v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.errorLogger.Printf(withReqID(reqID, format), v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(withReqID(reqID, format), v...)
}
