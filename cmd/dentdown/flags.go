package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// convertFlags holds flags for the convert command.
type convertFlags struct {
	output     string
	config     string
	workers    int
	style      string
	title      string
	standalone bool
	quiet      bool
	verbose    bool
}

// parseConvertFlags parses the convert command's flags and returns the
// remaining positional arguments.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	flags := &convertFlags{}

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&flags.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&flags.style, "style", "", "built-in stylesheet name")
	fs.StringVar(&flags.title, "title", "", "document title")
	fs.BoolVar(&flags.standalone, "standalone", false, "emit a full HTML5 document")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-file output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress on stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapUsage(err)
	}

	return flags, fs.Args(), nil
}
