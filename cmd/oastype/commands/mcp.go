package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oastype/internal/cliutil"
	"github.com/erraggy/oastype/internal/mcpserver"
)

// HandleMCP executes the mcp command: it serves the MCP tools over stdio
// until the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oastype mcp\n\n")
		cliutil.Writef(output, "Start an MCP (Model Context Protocol) server on stdio exposing the\n")
		cliutil.Writef(output, "check, normalize and walk_schemas tools.\n\n")
		cliutil.Writef(output, "Configuration is read from OASTYPE_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
