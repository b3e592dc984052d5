package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/viggen-group/viggenweb/internal/config"
	"github.com/viggen-group/viggenweb/internal/logging"
	"github.com/viggen-group/viggenweb/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "./logs/api.log"
	}
	logConfig := &logging.Config{
		Level:      strings.ToLower(cfg.LogLevel),
		File:       logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)
	if cfg.SMTPURL == "" {
		logger.Warn("SMTP_URL is not set; contact submissions will fail until it is configured")
	}

	srv := server.NewServer(cfg)
	srv.Init()

	if err := srv.Start(); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
