package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dentdown <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert dentdown files to HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dentdown help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dentdown convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert dentdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Source file, directory, or '-' for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --style <name>     Built-in stylesheet (implies standalone)")
	fmt.Fprintln(w, "      --title <s>        Document title for standalone output")
	fmt.Fprintln(w, "      --standalone       Emit a full HTML5 document")
	fmt.Fprintln(w, "  -q, --quiet            Suppress per-file output")
	fmt.Fprintln(w, "  -v, --verbose          Verbose progress on stderr")
}

// runHelp prints help for a specific command, or general usage.
func runHelp(args []string, w io.Writer) error {
	if len(args) == 0 {
		printUsage(w)
		return nil
	}
	switch args[0] {
	case "convert":
		printConvertUsage(w)
		return nil
	default:
		printUsage(w)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
