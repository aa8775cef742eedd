package nibd

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// LoggingConfig configures nibd's logger. Service tags every emitted
// line so a log aggregator can tell nibd's lines apart from whatever
// else shares its host, the way the teacher's multi-binary deployment
// relies on each process naming itself.
type LoggingConfig struct {
	Level   zapcore.Level `yaml:"level"`
	Service string        `yaml:"service"`
}

// DefaultLoggingConfig returns nibd's default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: zapcore.InfoLevel, Service: "nibd"}
}

// InitLogging builds the process-wide logger for cfg, color-encoded
// when stderr is a terminal and plain otherwise, tagged with
// cfg.Service.
func InitLogging(cfg LoggingConfig) (*zap.SugaredLogger, zap.AtomicLevel, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()

	if term.IsTerminal(int(os.Stderr.Fd())) {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(cfg.Level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := config.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to initialize logger: %w", err)
	}

	service := cfg.Service
	if service == "" {
		service = "nibd"
	}
	return logger.Sugar().With("service", service), config.Level, nil
}
