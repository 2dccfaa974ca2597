// Package logging builds the zap loggers used across messdigest.
// Each subsystem logs through a named child of the root logger so entries
// can be filtered by category.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup, config loading
	CategorySheets     Category = "sheets"     // Spreadsheet fetches
	CategoryIngest     Category = "ingest"     // Timestamp parsing and filtering
	CategoryDigest     Category = "digest"     // Summary requests
	CategoryPerception Category = "perception" // Text-generation provider calls
	CategoryMail       Category = "mail"       // SMTP verification and delivery
	CategoryPipeline   Category = "pipeline"   // State transitions
)

// Options mirrors config.LoggingConfig to keep this package import-free.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	File   string // optional extra output path

	// Categories disables individual categories when mapped to false.
	Categories map[string]bool
}

// IsCategoryEnabled reports whether category should log. Unlisted
// categories are enabled.
func (o Options) IsCategoryEnabled(category Category) bool {
	if o.Categories == nil {
		return true
	}
	enabled, exists := o.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// New builds a root logger from opts. JSON output uses the production
// encoder; "text" and "console" use the development console encoder.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "text", "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	if opts.File != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, opts.File)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// For returns the category child of logger. A nil logger yields a no-op logger.
func For(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}

// Registry hands out category loggers from one root, honouring the
// per-category toggles of Options.
type Registry struct {
	root *zap.Logger
	opts Options
}

// NewRegistry wraps root. A nil root yields no-op loggers.
func NewRegistry(root *zap.Logger, opts Options) *Registry {
	if root == nil {
		root = zap.NewNop()
	}
	return &Registry{root: root, opts: opts}
}

// Get returns the logger for category, or a no-op logger when the
// category is disabled.
func (r *Registry) Get(category Category) *zap.Logger {
	if r == nil || !r.opts.IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	return For(r.root, category)
}
