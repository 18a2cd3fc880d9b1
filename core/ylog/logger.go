// package ylog provides a slog.Logger instance for logging.
// ylog also provides a default slog.Logger, the default logger is build from environment.
//
// ylog allows to call log api directly, like:
//
//	ylog.Debug("test", "name", "lambda-stream")
//	ylog.Info("test", "name", "lambda-stream")
//	ylog.Warn("test", "name", "lambda-stream")
//	ylog.Error("test", "name", "lambda-stream")
package ylog

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultLogger = Default()

// SetDefault set global logger.
func SetDefault(logger *slog.Logger) { defaultLogger = logger }

// Logger returns the global logger.
func Logger() *slog.Logger { return defaultLogger }

// Debug logs a message at debug level.
func Debug(msg string, keyvals ...any) {
	defaultLogger.Debug(msg, keyvals...)
}

// Info logs a message at info level.
func Info(msg string, keyvals ...any) {
	defaultLogger.Info(msg, keyvals...)
}

// Warn logs a message at warn level.
func Warn(msg string, keyvals ...any) {
	defaultLogger.Warn(msg, keyvals...)
}

// Error logs a message at error level.
func Error(msg string, keyvals ...any) {
	defaultLogger.Error(msg, keyvals...)
}

// Config is the config of slog, the config is from environment.
type Config struct {
	// Verbose indicates if logger log code line, use false for production.
	Verbose bool `env:"LAMBDA_STREAM_LOG_VERBOSE" envDefault:"false"`

	// Level can be one of `debug`, `info`, `warn`, `error`
	Level string `env:"LAMBDA_STREAM_LOG_LEVEL" envDefault:"info"`

	// Output is the filename of log file,
	// The default is stdout.
	Output string `env:"LAMBDA_STREAM_LOG_OUTPUT"`

	// ErrorOutput is the filename of errlog file,
	// The default is stderr.
	ErrorOutput string `env:"LAMBDA_STREAM_LOG_ERROR_OUTPUT"`

	// Format supports text and json,
	// The default is text.
	Format string `env:"LAMBDA_STREAM_LOG_FORMAT" envDefault:"text"`

	// MaxSize is the maximum size in megabytes of a log file before it gets rotated.
	MaxSize int `env:"LAMBDA_STREAM_LOG_MAX_SIZE" envDefault:"100"`

	// MaxBackups is the maximum number of rotated log files to retain.
	MaxBackups int `env:"LAMBDA_STREAM_LOG_MAX_BACKUPS" envDefault:"3"`

	// DisableTime disable time key, It's a pravited field, Just for testing.
	DisableTime bool
}

// DefaultConfig returns the Config parsed from enviroment.
func DefaultConfig() Config {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		log.Fatalf("%+v\n", err)
	}
	return conf
}

// Default returns a slog.Logger according to enviroment.
func Default() *slog.Logger {
	return NewFromConfig(DefaultConfig())
}

// NewFromConfig returns a slog.Logger according to conf.
func NewFromConfig(conf Config) *slog.Logger {
	return slog.New(NewHandlerFromConfig(conf))
}

// parseToWriter maps "stdout", "stderr" and "" to the standard streams,
// any other value is a log file rotated by lumberjack.
func parseToWriter(conf Config, path string, defaultWriter io.Writer) io.Writer {
	switch strings.ToLower(path) {
	case "":
		return defaultWriter
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    conf.MaxSize,
		MaxBackups: conf.MaxBackups,
	}
}

func parseToSlogLevel(stringLevel string) slog.Level {
	var level = slog.LevelDebug
	switch strings.ToLower(stringLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return level
}
