// Package gologger backs the rghost logging contract with
// github.com/goliatone/go-logger.
package gologger

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/madamkiwi/rghost/logging"
)

// Config selects the level, output format and source annotation.
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

// levels maps configured level names to go-logger levels. An empty name
// keeps the go-logger default.
var levels = map[string]string{
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
}

// formats maps configured format names to go-logger logger types.
var formats = map[string]glog.Option{
	"":        glog.WithLoggerTypeConsole(),
	"console": glog.WithLoggerTypeConsole(),
	"json":    glog.WithLoggerTypeJSON(),
	"pretty":  glog.WithLoggerTypePretty(),
}

// Provider hands out component loggers that share one go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

var _ logging.Provider = (*Provider)(nil)

// NewProvider builds the go-logger root for cfg.
func NewProvider(cfg Config) (*Provider, error) {
	format, ok := formats[strings.ToLower(strings.TrimSpace(cfg.Format))]
	if !ok {
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}
	options := []glog.Option{format}

	if name := strings.ToLower(strings.TrimSpace(cfg.Level)); name != "" {
		level, ok := levels[name]
		if !ok {
			return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
		}
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the child logger for a component such as
// "rghost.ghostscript".
func (p *Provider) GetLogger(name string) logging.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) logging.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return logger{inner}
}

// logger keeps the glog methods rghost calls.
type logger struct {
	inner glog.Logger
}

func (l logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// WithFields needs a go-logger that supports fields; logging.WithFields
// has already copied the map.
func (l logger) WithFields(fields map[string]any) logging.Logger {
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		return wrap(with.WithFields(fields))
	}
	return l
}

func (l logger) WithContext(ctx context.Context) logging.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}
