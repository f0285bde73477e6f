package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/hdoc"
	"pkt.systems/hdoc/symdb"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/hdoc")
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		topicDir   string
		symbolsDB  string
		themeName  string
		widthFlag  int
		osc8Flag   string
		listThemes bool
		outPath    string
		boring     bool
		verbose    bool
	)

	flags := pflag.NewFlagSet("hdoc", pflag.ExitOnError)
	flags.StringVarP(&topicDir, "dir", "d", ".", "Topic directory")
	flags.StringVarP(&symbolsDB, "symbols", "s", "", "SQLite symbol database path")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate plain non-ANSI output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: hdoc [flags] topic...\n")
		fmt.Fprintln(os.Stderr, "\nEach topic is the id of a <id>.yaml file in the topic directory.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		return 2
	}

	if listThemes {
		for _, name := range hdoc.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return 0
	}

	topics := flags.Args()
	if len(topics) == 0 {
		flags.Usage()
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	theme, ok := hdoc.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		for _, name := range hdoc.AvailableThemes() {
			fmt.Fprintln(os.Stderr, name)
		}
		return 2
	}

	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		return 2
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	opts := []hdoc.RenderOption{hdoc.WithWidth(resolveWidth(widthFlag))}
	if symbolsDB != "" {
		db, err := symdb.Open(symbolsDB, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open symbols: %v\n", err)
			return 1
		}
		defer func() { _ = db.Close() }()
		opts = append(opts, hdoc.WithOracle(db))
	}

	var sink hdoc.Sink
	if boring {
		sink = hdoc.NewTextSink(writer)
	} else {
		sink = hdoc.NewANSISink(writer, theme, hdoc.WithOSC8(osc8))
	}

	source := hdoc.DirSource{Dir: topicDir}
	renderer := hdoc.NewRenderer(sink, opts...)
	exitCode := 0
	for _, id := range topics {
		topic, err := source.OpenTopic(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open topic: %v\n", err)
			exitCode = 1
			continue
		}
		if err := renderer.RenderTopic(topic); err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", id, err)
			exitCode = 1
			continue
		}
		for _, problem := range renderer.Problems() {
			logger.Warn("degraded fragment", "topic", id, "problem", problem)
		}
	}
	return exitCode
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return hdoc.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
