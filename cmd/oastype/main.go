package main

import (
	"errors"
	"os"

	"github.com/erraggy/oastype"
	"github.com/erraggy/oastype/cmd/oastype/commands"
	"github.com/erraggy/oastype/internal/cliutil"
)

// validCommands lists every command name, for typo suggestions.
var validCommands = []string{"check", "normalize", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a command and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var err error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		cliutil.Writef(commands.Stdout, "oastype v%s\n", oastype.Version())
		cliutil.Writef(commands.Stdout, "commit: %s\n", oastype.Commit())
		cliutil.Writef(commands.Stdout, "go: %s\n", oastype.GoVersion())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "check":
		err = commands.HandleCheck(args[1:])
	case "normalize":
		err = commands.HandleNormalize(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		cliutil.Writef(commands.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(commands.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(commands.Stderr, "\n")
		printUsage()
		return 1
	}

	if err != nil {
		if !errors.Is(err, commands.ErrReported) {
			cliutil.Writef(commands.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the valid command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range validCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	w := commands.Stderr
	cliutil.Writef(w, "oastype - strict OpenAPI 3.0.x document checker\n\n")
	cliutil.Writef(w, "Usage:\n")
	cliutil.Writef(w, "  oastype <command> [flags]\n\n")
	cliutil.Writef(w, "Commands:\n")
	cliutil.Writef(w, "  check       Parse a document into the typed model and report any deviation\n")
	cliutil.Writef(w, "  normalize   Print the canonical JSON or YAML serialization of a document\n")
	cliutil.Writef(w, "  mcp         Start an MCP server on stdio\n")
	cliutil.Writef(w, "  version     Show version information\n")
	cliutil.Writef(w, "  help        Show this help message\n\n")
	cliutil.Writef(w, "Run 'oastype <command> --help' for more information on a command.\n")
}
