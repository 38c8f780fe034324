// Package cmd implements the psy CLI application to synthesize strategy
// performance series.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands are the subcommands a main package registers.
var Commands = []subcommands.Command{
	&generateCmd{},
	&reportCmd{},
	&axisCmd{},
	&strategiesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	verbose = flag.Bool("v", false, "Log debug messages")
	logJSON = flag.Bool("log-json", false, "Log as JSON lines instead of human readable text")
)

// stdout is where commands write their result, replaced in tests.
var stdout io.Writer = os.Stdout

// NewLogger returns the logger configured by the global flags.
// Logs always go to stderr, stdout is kept for the command output.
func NewLogger() zerolog.Logger {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	if *logJSON {
		w = os.Stderr
	}
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// printJSON writes v as indented JSON. If query is not empty, only the result
// of the JSONPath query applied to v is written.
func printJSON(v any, query string) error {
	if query != "" {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		if v, err = jsonpath.Get(query, doc); err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
