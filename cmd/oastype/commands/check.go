package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oastype/internal/cliutil"
	"github.com/erraggy/oastype/oaserrors"
	"github.com/erraggy/oastype/openapi"
	"github.com/erraggy/oastype/parser"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Source    string
	Roundtrip bool
	Verbose   bool
	Stats     bool
	Warnings  bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Source, "s", "", "path of the document to check (default: stdin)")
	fs.StringVar(&flags.Source, "source", "", "path of the document to check (default: stdin)")
	fs.BoolVar(&flags.Roundtrip, "roundtrip", false, "also serialize and re-parse the document and report any difference")
	fs.BoolVar(&flags.Verbose, "v", false, "log parser diagnostics to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parser diagnostics to stderr")
	fs.BoolVar(&flags.Stats, "stats", false, "print document statistics to stderr")
	fs.BoolVar(&flags.Warnings, "w", false, "report lint findings such as undeclared required properties")
	fs.BoolVar(&flags.Warnings, "warnings", false, "report lint findings such as undeclared required properties")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oastype check [flags] [file|-]\n\n")
		cliutil.Writef(output, "Strictly parse an OpenAPI 3.0.x document (JSON or YAML) into its typed model.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oastype check -s openapi.yaml\n")
		cliutil.Writef(output, "  oastype check --roundtrip openapi.json\n")
		cliutil.Writef(output, "  cat openapi.yaml | oastype check\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Document parsed (and round trip identical, with --roundtrip)\n")
		cliutil.Writef(output, "  1    Document rejected, unreadable, or round trip differs\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	source, err := sourceArg(fs, flags.Source)
	if err != nil {
		return err
	}

	result, err := parseSource(source, flags.Verbose)
	if err != nil {
		if errors.Is(err, oaserrors.ErrParse) {
			reportRejection(source, err)
			return ErrReported
		}
		return fmt.Errorf("parsing %s: %w", FormatSourcePath(source), err)
	}

	status := cliutil.NewStatus(Stdout)
	status.Success("Successfully parsed.")

	if flags.Stats {
		outputStats(source, result)
	}

	if flags.Warnings {
		warn := cliutil.NewStatus(Stderr)
		for _, f := range openapi.Lint(result.Document) {
			warn.Note("%s", f)
		}
	}

	if flags.Roundtrip {
		back, err := roundtrip(result.Document)
		if err != nil {
			return fmt.Errorf("round trip: %w", err)
		}
		if !openapi.Equal(result.Document, back) {
			cliutil.NewStatus(Stderr).Failure("Round trip differs (-parsed +reparsed):")
			cliutil.Writef(Stderr, "%s", openapi.Diff(result.Document, back))
			return ErrReported
		}
		status.Success("Round trip is identical.")
	}
	return nil
}

// sourceArg returns the source named by the -s flag or the single
// positional argument; both at once is an error.
func sourceArg(fs *flag.FlagSet, source string) (string, error) {
	switch {
	case fs.NArg() > 1:
		fs.Usage()
		return "", fmt.Errorf("%s command accepts at most one file path", fs.Name())
	case fs.NArg() == 1 && source != "":
		return "", fmt.Errorf("%s command accepts either -s or a file path, not both", fs.Name())
	case fs.NArg() == 1:
		return fs.Arg(0), nil
	}
	return source, nil
}

// reportRejection prints every decode failure of err as an indented tree.
func reportRejection(source string, err error) {
	errs := oaserrors.Flatten(err)
	noun := "errors"
	if len(errs) == 1 {
		noun = "error"
	}
	cliutil.NewStatus(Stderr).Failure("%s: document rejected with %d %s", FormatSourcePath(source), len(errs), noun)
	for _, pe := range errs {
		for _, line := range strings.Split(pe.Detail(), "\n") {
			cliutil.Writef(Stderr, "  %s\n", line)
		}
	}
}

// outputStats writes document statistics to stderr.
func outputStats(source string, result *parser.ParseResult) {
	doc := result.Document
	cliutil.Writef(Stderr, "Source: %s\n", FormatSourcePath(source))
	cliutil.Writef(Stderr, "Format: %s\n", result.SourceFormat)
	cliutil.Writef(Stderr, "OpenAPI: %s\n", doc.OpenAPI)
	cliutil.Writef(Stderr, "Title: %s\n", doc.Info.Title)
	cliutil.Writef(Stderr, "Version: %s\n", doc.Info.Version)
	cliutil.Writef(Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(Stderr, "Paths: %d\n", result.Stats.PathCount)
	cliutil.Writef(Stderr, "Operations: %d\n", result.Stats.OperationCount)
	cliutil.Writef(Stderr, "Schemas: %d (%d including nested)\n", result.Stats.SchemaCount, result.Stats.SchemaNodes)
	cliutil.Writef(Stderr, "Load Time: %v\n", result.LoadTime)
}

// roundtrip serializes doc and parses the result again.
func roundtrip(doc *openapi.OpenAPI) (*openapi.OpenAPI, error) {
	tree, err := openapi.SerializeSpec(doc)
	if err != nil {
		return nil, err
	}
	return openapi.ParseSpec(tree)
}
