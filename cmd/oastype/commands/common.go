// Package commands provides CLI command handlers for oastype.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/oastype/internal/cliutil"
	"github.com/erraggy/oastype/parser"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special source path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams used by the commands. Tests replace them.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ErrReported is returned by a command that has already described its
// failure to the user; the caller should exit non-zero without printing it
// again.
var ErrReported = errors.New("commands: failure already reported")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == "" || inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSourcePath returns a display-friendly name for a source.
// Returns "<stdin>" for an empty path or StdinFilePath.
func FormatSourcePath(source string) string {
	if source == "" || source == StdinFilePath {
		return "<stdin>"
	}
	return source
}

// parseSource parses the document at source, or stdin when source is empty
// or StdinFilePath. With verbose set, parser diagnostics go to Stderr.
func parseSource(source string, verbose bool) (*parser.ParseResult, error) {
	opts := []parser.Option{}
	if verbose {
		handler := slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, parser.WithLogger(parser.NewSlogAdapter(slog.New(handler))))
	}
	if source == "" || source == StdinFilePath {
		opts = append(opts, parser.WithReader(Stdin), parser.WithSourceName("stdin"))
	} else {
		opts = append(opts, parser.WithFilePath(source))
	}
	return parser.ParseWithOptions(opts...)
}
