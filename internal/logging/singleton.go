package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
	mu       sync.Mutex
)

// InitLogger initializes the global logger with the given configuration.
// Only the first call has any effect.
func InitLogger(config *Config) error {
	var err error
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		instance, err = NewLogger(config)
	})
	return err
}

// GetGlobalLogger returns the singleton logger instance. If InitLogger
// was never called, a stderr-only fallback is created so library code
// can always log.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = fallbackLogger()
	}
	return instance
}

func fallbackLogger() *Logger {
	l, err := NewLogger(&Config{
		Level:      "info",
		File:       "./logs/viggenweb.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	if err != nil {
		panic("failed to initialize fallback logger: " + err.Error())
	}
	return l
}
