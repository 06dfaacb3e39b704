package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry pre-tagged with the service name, emitting JSON.
type Logger struct {
	*logrus.Entry
}

// New creates a logger for the given service name. The level comes from
// the supplied config value and falls back to info.
func New(serviceName, level string) *Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(os.Stdout)

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &Logger{log.WithField("service", serviceName)}
}

// WithOperation returns an entry tagged with the operation name, the field
// every service log line carries.
func (l *Logger) WithOperation(op string) *logrus.Entry {
	return l.WithField("operation", op)
}
