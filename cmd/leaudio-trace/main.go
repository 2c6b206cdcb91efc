// Command leaudio-trace views and analyzes session trace files written by
// leaudio-sim -trace.
//
// Usage:
//
//	leaudio-trace <command> [flags] <file.ltrace>
//
// Commands:
//
//	view     View trace in human-readable format
//	export   Export trace to JSON lines or CSV
//	filter   Filter trace and write to a new file
//	stats    Show statistics about the trace
//
// Examples:
//
//	# View all events
//	leaudio-trace view session.ltrace
//
//	# View the stream protocol requests of group 1
//	leaudio-trace view -layer stream -category request -group 1 session.ltrace
//
//	# Export to CSV
//	leaudio-trace export -format csv -o session.csv session.ltrace
//
//	# Keep one device and save to a new file
//	leaudio-trace filter -device C0:FF:EE:00:00:01 -o left.ltrace session.ltrace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leaudio/leaudio-go/cmd/leaudio-trace/commands"
	"github.com/leaudio/leaudio-go/pkg/log"
)

const usage = `leaudio-trace - LE Audio Session Trace Analyzer

Usage:
  leaudio-trace <command> [flags] <file.ltrace>

Commands:
  view     View trace in human-readable format
  export   Export trace to JSON lines or CSV
  filter   Filter trace and write to a new file
  stats    Show statistics about the trace

Use "leaudio-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the shared filter flags.
func newFlagSet(name, help string) (*flag.FlagSet, *commands.FilterOptions) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		fs.PrintDefaults()
	}

	opts := commands.NoFilter
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session id")
	fs.StringVar(&opts.Device, "device", "", "Filter by device address")
	fs.IntVar(&opts.Group, "group", log.NoGroup, "Filter by group id")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (link, stream, iso, audio, session)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (none, sink, source)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (request, status, state, error)")
	return fs, &opts
}

func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs, opts := newFlagSet("view", `leaudio-trace view - View trace in human-readable format

Usage:
  leaudio-trace view [flags] <file.ltrace>

Flags:
`)
	path := parseArgs(fs, args)
	if err := commands.RunView(path, *opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs, opts := newFlagSet("export", `leaudio-trace export - Export trace to JSON lines or CSV

Usage:
  leaudio-trace export [flags] <file.ltrace>

Flags:
`)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parseArgs(fs, args)

	if err := commands.RunExport(path, *format, *output, *opts); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs, opts := newFlagSet("filter", `leaudio-trace filter - Filter trace and write to a new file

Usage:
  leaudio-trace filter [flags] -o <out.ltrace> <file.ltrace>

Flags:
`)
	output := fs.String("o", "", "Output file (required)")
	path := parseArgs(fs, args)

	n, err := commands.RunFilter(path, *output, *opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs, opts := newFlagSet("stats", `leaudio-trace stats - Show statistics about the trace

Usage:
  leaudio-trace stats [flags] <file.ltrace>

Flags:
`)
	path := parseArgs(fs, args)
	if err := commands.RunStats(path, *opts, os.Stdout); err != nil {
		fail(err)
	}
}
