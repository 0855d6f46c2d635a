package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.SugaredLogger
)

// Initialize builds the process-wide sugared logger at the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	once.Do(func() {
		instance = logger.Sugar()
	})
	return nil
}

func Get() *zap.SugaredLogger {
	if instance == nil {
		// Tests and tools that never call Initialize still get a logger.
		instance = zap.NewNop().Sugar()
	}
	return instance
}

func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}
