// Package log provide leveled logging for symtab components, backed by
// logrus. Applications can integrate with their own logging by supplying
// an object implementing the Logger interface to SetLogger.
package log

import "io"
import "os"
import "strings"

import "github.com/sirupsen/logrus"

func init() {
	setts := map[string]interface{}{
		"log.level": "info",
		"log.file":  "",
	}
	SetLogger(nil, setts)
}

// Logger interface for symtab logging, applications can supply a
// logger object implementing this interface or symtab will fall back
// to the defaultLogger{}.
type Logger interface {
	SetLogLevel(string)
	Fatalf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Tracef(format string, v ...interface{})
	Printlf(loglevel LogLevel, format string, v ...interface{})
}

// LogLevel defines symtab log level.
type LogLevel int

const (
	logLevelIgnore LogLevel = iota + 1
	logLevelFatal
	logLevelError
	logLevelWarn
	logLevelInfo
	logLevelVerbose
	logLevelDebug
	logLevelTrace
)

var log Logger // object used by symtab components for logging.

// SetLogger to integrate symtab logging with application logging.
// importing this package will initialize the logger with info level
// logging to console.
func SetLogger(logger Logger, setts map[string]interface{}) Logger {
	if logger != nil {
		log = logger
		return log
	}

	var err error
	level := string2logLevel(setts["log.level"].(string))
	var logfd io.Writer = os.Stdout
	if logfile := setts["log.file"].(string); logfile != "" {
		flags := os.O_RDWR | os.O_APPEND | os.O_CREATE
		logfd, err = os.OpenFile(logfile, flags, 0660)
		if err != nil {
			panic(err)
		}
	}
	l := &defaultLogger{level: level, logger: logrus.New()}
	l.logger.SetOutput(logfd)
	l.logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.999Z-07:00",
	})
	l.SetLogLevel(level.String())
	log = l
	return log
}

// defaultLogger with default log-file as os.Stdout and,
// default log-level as logLevelInfo.
type defaultLogger struct {
	level  LogLevel
	logger *logrus.Logger
}

func (l *defaultLogger) SetLogLevel(level string) {
	l.level = string2logLevel(level)
	if l.level == logLevelIgnore {
		l.logger.SetLevel(logrus.PanicLevel)
		return
	}
	l.logger.SetLevel(l.level.logrus())
}

func (l *defaultLogger) Fatalf(format string, v ...interface{}) {
	l.Printlf(logLevelFatal, format, v...)
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(logLevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(logLevelWarn, format, v...)
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Printlf(logLevelInfo, format, v...)
}

func (l *defaultLogger) Verbosef(format string, v ...interface{}) {
	l.Printlf(logLevelVerbose, format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	l.Printlf(logLevelDebug, format, v...)
}

func (l *defaultLogger) Tracef(format string, v ...interface{}) {
	l.Printlf(logLevelTrace, format, v...)
}

// Printlf never exits or panics, even for fatal level, it is upto the
// caller to decide what to do after logging.
func (l *defaultLogger) Printlf(level LogLevel, format string, v ...interface{}) {
	if l.canlog(level) {
		format = strings.TrimRight(format, "\n")
		l.logger.WithField("lvl", level.String()).Logf(level.logrus(), format, v...)
	}
}

func (l *defaultLogger) canlog(level LogLevel) bool {
	if l.level == logLevelIgnore {
		return false
	}
	return level <= l.level
}

func (l LogLevel) String() string {
	switch l {
	case logLevelIgnore:
		return "Ignor"
	case logLevelFatal:
		return "Fatal"
	case logLevelError:
		return "Error"
	case logLevelWarn:
		return "Warng"
	case logLevelInfo:
		return "Infom"
	case logLevelVerbose:
		return "Verbs"
	case logLevelDebug:
		return "Debug"
	case logLevelTrace:
		return "Trace"
	}
	panic("unexpected log level") // should never reach here
}

// logrus has no verbose level, verbose and debug share logrus.DebugLevel.
func (l LogLevel) logrus() logrus.Level {
	switch l {
	case logLevelFatal:
		return logrus.FatalLevel
	case logLevelError:
		return logrus.ErrorLevel
	case logLevelWarn:
		return logrus.WarnLevel
	case logLevelInfo:
		return logrus.InfoLevel
	case logLevelVerbose, logLevelDebug:
		return logrus.DebugLevel
	case logLevelTrace:
		return logrus.TraceLevel
	}
	return logrus.PanicLevel
}

func string2logLevel(s string) LogLevel {
	s = strings.ToLower(s)
	switch s {
	case "ignore", "ignor":
		return logLevelIgnore
	case "fatal":
		return logLevelFatal
	case "error":
		return logLevelError
	case "warn", "warng":
		return logLevelWarn
	case "info", "infom":
		return logLevelInfo
	case "verbose", "verbs":
		return logLevelVerbose
	case "debug":
		return logLevelDebug
	case "trace":
		return logLevelTrace
	}
	panic("unexpected log level") // should never reach here
}

// Fatalf log at fatal level, does not exit.
func Fatalf(format string, v ...interface{}) {
	log.Printlf(logLevelFatal, format, v...)
}

// Errorf log at error level.
func Errorf(format string, v ...interface{}) {
	log.Printlf(logLevelError, format, v...)
}

// Warnf log at warning level.
func Warnf(format string, v ...interface{}) {
	log.Printlf(logLevelWarn, format, v...)
}

// Infof log at info level.
func Infof(format string, v ...interface{}) {
	log.Printlf(logLevelInfo, format, v...)
}

// Verbosef log at verbose level.
func Verbosef(format string, v ...interface{}) {
	log.Printlf(logLevelVerbose, format, v...)
}

// Debugf log at debug level.
func Debugf(format string, v ...interface{}) {
	log.Printlf(logLevelDebug, format, v...)
}

// Tracef log at trace level.
func Tracef(format string, v ...interface{}) {
	log.Printlf(logLevelTrace, format, v...)
}
