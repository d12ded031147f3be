// Package logging builds the zap loggers used by the command line tool and
// the self-test. The arithmetic packages never log.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported values of Config.Format.
const (
	Console = "console"
	JSON    = "json"
	Logfmt  = "logfmt"
)

// Config selects the encoding, threshold and sink of a logger.
type Config struct {
	// Format is one of console, json or logfmt. Empty means console.
	Format string
	// Level is a zap level name such as debug or warn. Empty means info.
	Level string
	// Writer receives encoded records. Nil means os.Stderr.
	Writer io.Writer
}

// New creates a logger from c.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
		}
		level = l
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", Console:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case Logfmt:
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("unknown log format %q", c.Format)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Must is New for callers that cannot proceed without a logger.
func Must(c Config) *zap.Logger {
	l, err := New(c)
	if err != nil {
		panic(err)
	}
	return l
}
