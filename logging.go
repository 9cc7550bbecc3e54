package rxcore

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	WithField(string, interface{}) Logger
	With(map[string]interface{}) Logger

	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})

	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) Logger {
	return &logrusEntryWrapper{
		logrus.StandardLogger().WithField("component", component),
	}
}

type logrusEntryWrapper struct {
	*logrus.Entry
}

func (e *logrusEntryWrapper) WithField(field string, value interface{}) Logger {
	return &logrusEntryWrapper{e.Entry.WithField(field, value)}
}

func (e *logrusEntryWrapper) With(fields map[string]interface{}) Logger {
	return &logrusEntryWrapper{e.Entry.WithFields(fields)}
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return logrus.TraceLevel
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLevel changes the level of every logger created by NewLogger.
func SetLevel(level string) {
	logrus.SetLevel(parseLevel(level))
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func init() {
	conf := Settings()

	SetLevel(conf.GetStringDefault(KeyLogLevel, "INFO"))

	switch conf.GetStringDefault(KeyLogFormatter, "text") {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FullTimestamp:   true,
		})
	}
}
