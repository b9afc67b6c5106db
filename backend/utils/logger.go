package utils

import (
	"log"
	"os"
)

// LoggerConfig controls the logger's output stream.
type LoggerConfig struct {
	Output *os.File
}

func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return log.New(cfg.Output, "[LearnHub] ", log.LstdFlags|log.LUTC)
}
