package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Get returns the process-wide logger. Development output is enabled by
// setting STOREFRONT_ENV=development.
func Get() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		if os.Getenv("STOREFRONT_ENV") == "development" {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.OutputPaths = []string{"stdout"}

		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
