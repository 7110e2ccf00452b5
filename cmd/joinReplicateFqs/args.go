package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"github.com/natalierpayne/join-replicate-fqs/pkg/report"
)

const progName = "joinReplicateFqs"

// Options holds everything given on the command line.
type Options struct {
	Patterns []string
	Files    []string
	List     string

	Concatenate bool
	OutDir      string
	Extract     bool
	Dir         string

	Silent  bool
	Fixed   bool
	Verbose bool
	Help    bool

	Xlsx    string
	Chart   string
	Webhook string

	// set by parseArgs, not by FlagSet
	outDirSet bool
	dirSet    bool
}

// UsageError is printed after the usage text and exits with status 2.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, a ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

type listValue []string

func (l *listValue) String() string { return strings.Join(*l, " ") }

func (l *listValue) Set(s string) error {
	*l = append(*l, s)
	return nil
}

type flagKind int

const (
	boolKind flagKind = iota
	valueKind
	listKind
)

var (
	shortNames = map[byte]string{
		'f': "files",
		'l': "list",
		'o': "outdir",
		'd': "dir",
		'c': "concatenate",
		'e': "extract",
		's': "silent",
		'F': "fixed",
		'v': "verbose",
		'x': "xlsx",
		'h': "help",
	}
	flagKinds = map[string]flagKind{
		"files":       listKind,
		"list":        valueKind,
		"outdir":      valueKind,
		"dir":         valueKind,
		"concatenate": boolKind,
		"extract":     boolKind,
		"silent":      boolKind,
		"fixed":       boolKind,
		"verbose":     boolKind,
		"help":        boolKind,
		"xlsx":        valueKind,
		"chart":       valueKind,
		"webhook":     valueKind,
	}
	metavars = map[string]string{
		"files":   "FILE",
		"list":    "FILE",
		"outdir":  "DIR",
		"dir":     "DIR",
		"xlsx":    "FILE",
		"chart":   "FILE",
		"webhook": "KEY",
	}
)

func newFlagSet(opts *Options) *flag.FlagSet {
	var fs = flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(
		(*listValue)(&opts.Files),
		"files",
		"Input fastq file(s), plain or gzipped",
	)
	fs.StringVar(
		&opts.List,
		"list",
		"",
		"Text file listing input fastq files, one per line",
	)
	fs.StringVar(
		&opts.OutDir,
		"outdir",
		"",
		"Directory to output concatenated files",
	)
	fs.StringVar(
		&opts.Dir,
		"dir",
		"",
		"Directory to output extracted files",
	)
	fs.BoolVar(
		&opts.Concatenate,
		"concatenate",
		false,
		"Concatenate replicate files",
	)
	fs.BoolVar(
		&opts.Extract,
		"extract",
		false,
		"Extract replicate files",
	)
	fs.BoolVar(
		&opts.Silent,
		"silent",
		false,
		"Silence warnings",
	)
	fs.BoolVar(
		&opts.Fixed,
		"fixed",
		false,
		"Treat patterns as fixed strings",
	)
	fs.BoolVar(
		&opts.Verbose,
		"verbose",
		false,
		"Log every file written",
	)
	fs.BoolVar(
		&opts.Help,
		"help",
		false,
		"Show this help message and exit",
	)
	fs.StringVar(
		&opts.Xlsx,
		"xlsx",
		"",
		"Write a summary workbook of joined pairs",
	)
	fs.StringVar(
		&opts.Chart,
		"chart",
		"",
		"Write a reads-per-pair chart (.html, .png, .svg, .pdf)",
	)
	fs.StringVar(
		&opts.Webhook,
		"webhook",
		"",
		"WeChat Work robot key to notify when done",
	)
	return fs
}

func flagLabel(name string) string {
	for c, long := range shortNames {
		if long == name {
			return fmt.Sprintf("-%c/--%s", c, name)
		}
	}
	return "--" + name
}

// usage writes an argparse-like help text.
func usage(w io.Writer) {
	var fs = newFlagSet(new(Options))
	fmt.Fprintf(w, "usage: %s [-h] -f FILE [FILE ...] [-l FILE] [-o DIR] [-d DIR] [-c] [-e] [-s] [-F] [-v]\n", progName)
	fmt.Fprintf(w, "       %*s [-x FILE] [--chart FILE] [--webhook KEY] PATTERN [PATTERN ...]\n\n", len(progName), "")
	fmt.Fprintln(w, "Join fastqs of replicate samples")
	fmt.Fprintln(w, "\npositional arguments:")
	fmt.Fprintln(w, "  PATTERN               Pattern(s) denoting replicates in filenames")
	fmt.Fprintln(w, "\noptions:")

	var names []string
	fs.VisitAll(func(f *flag.Flag) { names = append(names, f.Name) })
	sort.Strings(names)
	for _, name := range names {
		var label = flagLabel(name)
		if mv, ok := metavars[name]; ok {
			label += " " + mv
		}
		fmt.Fprintf(w, "  %-26s %s\n", label, fs.Lookup(name).Usage)
	}
}

// splitArgs turns argv into --name=value flag arguments and positional patterns.
// It handles -f/--files FILE..., clustered short flags (-co DIR) and "--".
func splitArgs(argv []string) (flagArgs, patterns []string, err error) {
	for i := 0; i < len(argv); i++ {
		var arg = argv[i]
		if arg == "--" {
			patterns = append(patterns, argv[i+1:]...)
			break
		}
		if !isFlag(arg) {
			patterns = append(patterns, arg)
			continue
		}

		var names []string
		var inline string
		var hasInline bool
		if strings.HasPrefix(arg, "--") {
			var name = arg[2:]
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, inline, hasInline = name[:eq], name[eq+1:], true
			}
			if _, ok := flagKinds[name]; !ok {
				return nil, nil, usageErrorf("unrecognized arguments: %s", arg)
			}
			names = []string{name}
		} else {
			// short flags, possibly clustered, the last may take a value
			var body = arg[1:]
			for j := 0; j < len(body); j++ {
				long, ok := shortNames[body[j]]
				if !ok {
					return nil, nil, usageErrorf("unrecognized arguments: %s", arg)
				}
				names = append(names, long)
				if flagKinds[long] != boolKind {
					if rest := strings.TrimPrefix(body[j+1:], "="); rest != "" {
						inline, hasInline = rest, true
					}
					break
				}
			}
		}

		for _, name := range names[:len(names)-1] {
			flagArgs = append(flagArgs, "--"+name)
		}
		var last = names[len(names)-1]
		switch flagKinds[last] {
		case boolKind:
			if hasInline {
				return nil, nil, usageErrorf("argument %s: ignored explicit argument '%s'", flagLabel(last), inline)
			}
			flagArgs = append(flagArgs, "--"+last)
		case valueKind:
			if !hasInline {
				if i+1 >= len(argv) || isFlag(argv[i+1]) {
					return nil, nil, usageErrorf("argument %s: expected one argument", flagLabel(last))
				}
				i++
				inline = argv[i]
			}
			flagArgs = append(flagArgs, "--"+last+"="+inline)
		case listKind:
			var n int
			if hasInline {
				flagArgs = append(flagArgs, "--"+last+"="+inline)
				n++
			}
			for i+1 < len(argv) && !isFlag(argv[i+1]) {
				i++
				flagArgs = append(flagArgs, "--"+last+"="+argv[i])
				n++
			}
			if n == 0 {
				return nil, nil, usageErrorf("argument %s: expected at least one argument", flagLabel(last))
			}
		}
	}
	return flagArgs, patterns, nil
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// parseArgs parses and validates argv.
func parseArgs(argv []string) (*Options, error) {
	flagArgs, patterns, err := splitArgs(argv)
	if err != nil {
		return nil, err
	}
	var opts = new(Options)
	var fs = newFlagSet(opts)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, usageErrorf("%v", err)
	}
	if opts.Help {
		return opts, nil
	}
	opts.Patterns = patterns
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "outdir":
			opts.outDirSet = true
		case "dir":
			opts.dirSet = true
		}
	})

	if opts.List != "" {
		if !osUtil.FileExists(opts.List) {
			return nil, usageErrorf("%s does not exist. Please provide valid filename.", opts.List)
		}
		for _, line := range textUtil.File2Array(opts.List) {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			opts.Files = append(opts.Files, line)
		}
	}
	opts.Files = expandFiles(opts.Files)

	if err := validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func validate(opts *Options) error {
	var missing []string
	if len(opts.Files) == 0 && opts.List == "" {
		missing = append(missing, "-f/--files")
	}
	if len(opts.Patterns) == 0 {
		missing = append(missing, "PATTERN")
	}
	if len(missing) > 0 {
		return usageErrorf("the following arguments are required: %s", strings.Join(missing, ", "))
	}
	if len(opts.Files) == 0 {
		return usageErrorf("no input files listed in %s", opts.List)
	}

	for _, fh := range opts.Files {
		if info, err := os.Stat(fh); err != nil || !info.Mode().IsRegular() {
			return usageErrorf("%s does not exist. Please provide valid filename.", fh)
		}
	}

	if !opts.Concatenate && !opts.Extract {
		return usageErrorf("What would you like me to do? Please use one or both of --concatenate or --extract")
	}
	if opts.outDirSet && !opts.Concatenate {
		return usageErrorf("Please use --concatenate to use the --outdir option")
	}
	if opts.dirSet && !opts.Extract {
		return usageErrorf("Please use --extract to use the --dir option")
	}
	if opts.Extract && opts.Dir == "" {
		return usageErrorf("Please specify where to copy the extracted files with --dir")
	}
	if opts.outDirSet && opts.OutDir == "" {
		return usageErrorf("argument -o/--outdir: expected one argument")
	}
	if opts.Concatenate && opts.Extract && filepath.Clean(opts.OutDir) == filepath.Clean(opts.Dir) {
		return usageErrorf("Please use different directories for --outdir and --dir")
	}
	if opts.Chart != "" && !report.SupportedChart(opts.Chart) {
		return usageErrorf("argument --chart: unsupported format %s", opts.Chart)
	}
	return nil
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// expandFiles expands globs and drops repeated paths, keeping first-seen order.
// A glob matching nothing is kept as is so the existence check can name it.
func expandFiles(files []string) []string {
	var (
		seen = make(map[string]bool)
		out  []string
	)
	for _, f := range files {
		var matches = []string{f}
		if hasGlobMeta(f) {
			if m, err := filepath.Glob(f); err == nil && len(m) > 0 {
				matches = m
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}
