// Package log provides centralized logging functionality using zap logger.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// FileConfig describes an optional rotating log file alongside the
// console output.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init initializes the package-level logger writing to the console
func Init(debug bool) error {
	return InitWithFile(debug, FileConfig{})
}

// InitWithFile initializes the package-level logger. When cfg.Path is
// set, entries are duplicated to a size-rotated file.
func InitWithFile(debug bool, cfg FileConfig) error {
	level := zap.InfoLevel
	consoleEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if debug {
		level = zap.DebugLevel
		consoleEnc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), level),
	}
	if cfg.Path != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(rotator), level))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// GetZapLogger returns the base zap logger for cases where the sugared
// wrapper won't do (request logging middleware takes one)
func GetZapLogger() *zap.Logger {
	if baseLogger == nil {
		// Fallback logger if not initialized
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
	return baseLogger
}

// GetSugaredLogger returns the sugared logger instance
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		// Fallback logger if not initialized
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		log.Sync()
	}
}

// Package-level convenience functions
func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Infof(template string, args ...interface{}) {
	log.Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	log.Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Errorf(template string, args ...interface{}) {
	log.Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}

func Fatal(args ...interface{}) {
	log.Fatal(args...)
	os.Exit(1)
}

func Fatalf(template string, args ...interface{}) {
	log.Fatalf(template, args...)
	os.Exit(1)
}
