package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the global logrus logger. Unknown levels fall
// back to info.
func SetupLogger(logLevel string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
}
