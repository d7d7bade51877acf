package config

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg     *logrus.Logger
	loggOnce sync.Once
)

// GetLogger returns the process-wide JSON logger.
func GetLogger() *logrus.Logger {
	loggOnce.Do(func() {
		logg = logrus.New()
		logg.SetFormatter(&logrus.JSONFormatter{})
		logg.SetOutput(os.Stdout)
		if os.Getenv("LOG_LEVEL") == "debug" {
			logg.SetLevel(logrus.DebugLevel)
		}
	})
	return logg
}
