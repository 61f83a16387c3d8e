package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coregx/coregex"
	"github.com/lmittmann/tint"

	"github.com/needleread/needleread/pkg/needle"
	"github.com/needleread/needleread/pkg/scan"
)

var cli struct {
	Pattern string `arg:"" help:"Needle to scan for."`
	File    string `arg:"" optional:"" help:"Input file (defaults to stdin)." type:"existingfile"`

	Regex   bool `short:"r" help:"Treat the pattern as a regular expression."`
	Count   int  `short:"n" default:"1" help:"Cut at up to N occurrences."`
	Keep    bool `short:"k" help:"Write the matched bytes too, not just the segments before them."`
	Verbose bool `short:"v" help:"Enable debug logging."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("needleread"),
		kong.Description("Cut a byte stream at occurrences of a needle, writing everything before the match to stdout."),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))

	var in io.Reader = os.Stdin
	if cli.File != "" {
		f, err := os.Open(cli.File)
		kctx.FatalIfErrorf(err)
		defer f.Close()
		in = f
	}

	n, err := buildNeedle(cli.Pattern, cli.Regex)
	kctx.FatalIfErrorf(err)

	found, err := cut(os.Stdout, scan.NewBuffered(in), n, cli.Count, cli.Keep, logger)
	kctx.FatalIfErrorf(err)
	if found == 0 {
		// Mirror grep: nothing matched.
		os.Exit(1)
	}
}

func buildNeedle(pattern string, regex bool) (needle.Needle, error) {
	if regex {
		re, err := coregex.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern: %w", err)
		}
		return needle.Regexp(re), nil
	}
	return needle.String(pattern), nil
}
