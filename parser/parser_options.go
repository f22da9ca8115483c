package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oastype/internal/options"
	"github.com/erraggy/oastype/oaserrors"
	"github.com/erraggy/oastype/openapi"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger  Logger
	maxSize int64 // 0 means use default
	codecs  *openapi.Codecs

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI 3.0.x document using functional
// options. Exactly one input source option must be given.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithMaxSize(1<<20),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:  cfg.logger,
		MaxSize: cfg.maxSize,
		Codecs:  cfg.codecs,
	}

	// Route to appropriate parsing method based on input source
	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("parser: no input source specified")
	}

	if parseErr != nil {
		return nil, parseErr
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed (nil logger).
//
// Example:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	    parser.WithLogger(logger),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxSize sets the maximum document size in bytes. Larger inputs fail
// with *oaserrors.ResourceLimitError.
// A value of 0 means use the default (10 MiB).
// Returns an error if size is negative.
func WithMaxSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "maxSize", Value: size, Message: "cannot be negative"}
		}
		cfg.maxSize = size
		return nil
	}
}

// WithCodecs decodes the document with codecs built for a custom name
// policy instead of openapi.DefaultCodecs.
func WithCodecs(c *openapi.Codecs) Option {
	return func(cfg *parseConfig) error {
		cfg.codecs = c
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document.
// This is particularly useful when parsing from bytes or reader, where
// the default names ("ParseBytes.yaml", "ParseReader.yaml") are not descriptive.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "sourceName", Message: "cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}
