package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oastype/internal/cliutil"
	"github.com/erraggy/oastype/internal/fileutil"
	"github.com/erraggy/oastype/oaserrors"
	"github.com/erraggy/oastype/parser"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Source string
	Format string
	Output string
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize command.
// Returns the FlagSet and a NormalizeFlags struct with bound flag variables.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Source, "s", "", "path of the document to normalize (default: stdin)")
	fs.StringVar(&flags.Source, "source", "", "path of the document to normalize (default: stdin)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: the source format)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oastype normalize [flags] [file|-]\n\n")
		cliutil.Writef(output, "Parse an OpenAPI 3.0.x document and print its canonical serialization.\n")
		cliutil.Writef(output, "Unknown keys are dropped and optional fields holding their default are omitted.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oastype normalize -s openapi.yaml\n")
		cliutil.Writef(output, "  oastype normalize -format json -o openapi.json openapi.yaml\n")
	}

	return fs, flags
}

// HandleNormalize executes the normalize command
func HandleNormalize(args []string) error {
	fs, flags := SetupNormalizeFlags()
	fs.SetOutput(Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Format != "" {
		if err := ValidateOutputFormat(flags.Format); err != nil {
			return err
		}
	}

	source, err := sourceArg(fs, flags.Source)
	if err != nil {
		return err
	}

	var cleanedOutput string
	if flags.Output != "" {
		cleanedOutput = filepath.Clean(flags.Output)
		if err := ValidateOutputPath(cleanedOutput, []string{source}); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(cleanedOutput); err != nil {
			return err
		}
	}

	result, err := parseSource(source, false)
	if err != nil {
		if errors.Is(err, oaserrors.ErrParse) {
			reportRejection(source, err)
			return ErrReported
		}
		return fmt.Errorf("parsing %s: %w", FormatSourcePath(source), err)
	}

	format := flags.Format
	if format == "" {
		format = FormatYAML
		if result.SourceFormat == parser.SourceFormatJSON {
			format = FormatJSON
		}
	}

	var data []byte
	if format == FormatJSON {
		data, err = parser.MarshalJSONWithCodecs(result.Codecs, result.Document)
	} else {
		data, err = parser.MarshalYAMLWithCodecs(result.Codecs, result.Document)
	}
	if err != nil {
		return err
	}

	if cleanedOutput == "" {
		if _, err := Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(cleanedOutput, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	cliutil.NewStatus(Stderr).Success("Wrote %s (%s)", cleanedOutput, parser.FormatBytes(int64(len(data))))
	return nil
}
