package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ServiceName is attached to every entry
const ServiceName = "project-dashboard-api"

// Log is the process-wide logger
var Log *logrus.Logger

func init() {
	Log = logrus.New()
	Log.Out = os.Stdout
	Log.Formatter = &logrus.JSONFormatter{}
	Log.AddHook(&DefaultFieldsHook{})
}

// Configure applies level and format settings
func Configure(level, format string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	} else {
		Log.WithField("level", level).Warn("unknown log level, keeping info")
		Log.SetLevel(logrus.InfoLevel)
	}

	if format == "text" {
		Log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	} else {
		Log.Formatter = &logrus.JSONFormatter{}
	}
}

type DefaultFieldsHook struct {
}

func (hook *DefaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *DefaultFieldsHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = ServiceName
	return nil
}
