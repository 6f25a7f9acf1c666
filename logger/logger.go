// Package logger provides the global structured logger for ontogen.
//
// Components take sub-loggers via Logger.Named("ontology.dump") so log
// output can be traced back to the component that produced it. Recoverable
// conditions (unknown namespace prefix, missing optional file, unmapped
// identifiers at dump time) are logged as warnings here rather than
// returned as errors; see the error taxonomy in the ontology package.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

// JSONOutput tracks whether Initialize selected machine-readable output.
var JSONOutput bool

func init() {
	// Safe no-op logger at package load time so library use before
	// Initialize never panics.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
//
// With jsonOutput true, log lines are JSON for machine consumption.
// Otherwise a human-readable console encoder writes to stdout. verbosity
// follows the CLI's repeated -v flag count, see VerbosityToLevel.
func Initialize(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput
	level := VerbosityToLevel(verbosity)

	var zapLogger *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		var err error
		zapLogger, err = cfg.Build()
		if err != nil {
			return err
		}
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encCfg),
				zapcore.AddSync(os.Stdout),
				level,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	_ = Logger.Sync()
}
