// Command hexview renders a binary file as a hex/ASCII listing: each row
// shows a byte offset, the row's bytes as hex grouped into 8-byte blocks,
// and the same bytes as printable characters.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/hexview/core/dump"
	hexerrors "github.com/FocuswithJustin/hexview/core/errors"
	"github.com/FocuswithJustin/hexview/internal/logging"
	"github.com/FocuswithJustin/hexview/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for hexview.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`
	LogFormat string `name:"log-format" default:"text" enum:"json,text" help:"Log format (json|text)"`

	Dump    DumpCmd    `cmd:"" help:"Dump a file in hex and ascii format"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// DumpCmd dumps a file as a hex/ASCII listing.
type DumpCmd struct {
	Input   string `name:"input" short:"i" required:"" help:"Path to file to dump" type:"existingfile"`
	Columns int    `name:"columns" short:"c" default:"16" help:"Row width in bytes (8, 16, 32, or 64)"`
	Out     string `name:"out" short:"o" help:"Output path (default: INPUT.dump)" type:"path"`
	Stdout  bool   `help:"Write the listing to stdout instead of a file"`
	XZ      bool   `name:"xz" help:"Decompress xz input before dumping"`
}

func (c *DumpCmd) Run() error {
	cols := dump.Columns(c.Columns)
	if err := cols.Validate(); err != nil {
		return err
	}

	ctx := logging.WithSessionID(context.Background(), uuid.NewString())

	outPath := c.Out
	if outPath == "" && !c.Stdout {
		outPath = defaultOutputPath(c.Input)
	}
	if !c.Stdout {
		if err := validation.ValidateOutputPath(outPath); err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
	}

	in, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	var src io.Reader = bufio.NewReader(in)
	if c.XZ || strings.HasSuffix(c.Input, ".xz") {
		xzr, err := xz.NewReader(src)
		if err != nil {
			return hexerrors.Wrapf(err, "failed to open xz stream %s", c.Input)
		}
		src = xzr
	}

	sinkName := "stdout"
	var sink *bufio.Writer
	if c.Stdout {
		sink = bufio.NewWriter(os.Stdout)
	} else {
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close()
		sink = bufio.NewWriter(out)
		sinkName = outPath
	}

	logging.DumpStarted(ctx, c.Input, int(cols))

	d := dump.NewDumper(cols, sink)
	d.Stream = c.Input
	d.Sink = sinkName
	if err := d.Run(src); err != nil {
		logging.DumpFailed(ctx, c.Input, err)
		return err
	}
	if err := sink.Flush(); err != nil {
		ferr := hexerrors.NewWrite(sinkName, 0, err)
		logging.DumpFailed(ctx, c.Input, ferr)
		return ferr
	}

	logging.DumpCompleted(ctx, c.Input, d.BytesDumped(), d.Digest())

	if !c.Stdout {
		fmt.Printf("Dumped: %s\n", c.Input)
		fmt.Printf("  Columns: %d\n", int(cols))
		fmt.Printf("  Bytes: %d\n", d.BytesDumped())
		fmt.Printf("  BLAKE3: %s\n", d.Digest())
		fmt.Printf("  Output: %s\n", outPath)
	}
	return nil
}

// defaultOutputPath derives the listing path written next to the input.
func defaultOutputPath(input string) string {
	return input + ".dump"
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("hexview %s\n", version)
	return nil
}

func initLogging(level, format string) {
	var l logging.Level
	switch level {
	case "debug":
		l = logging.LevelDebug
	case "warn":
		l = logging.LevelWarn
	case "error":
		l = logging.LevelError
	default:
		l = logging.LevelInfo
	}
	f := logging.FormatText
	if format == "json" {
		f = logging.FormatJSON
	}
	logging.InitLogger(l, f)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hexview"),
		kong.Description("Creates a file dump in hex and ascii format"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging(CLI.LogLevel, CLI.LogFormat)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
