// Package main is the entry point for the notegrid command line tool.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/kmowery/notegrid/internal/cli"
	"github.com/kmowery/notegrid/internal/engine"
	"github.com/kmowery/notegrid/internal/store"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	Dir      string
	LogLevel string
	Width    int
	Height   int

	List   bool
	New    bool
	From   string
	Cat    string
	Copy   bool
	Stat   string
	Delete string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	logger := cli.NewLogger(cli.ParseLogLevel(opts.LogLevel), os.Stderr)

	st, err := store.New(store.NewOSFS(), opts.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open store: %v\n", err)
		return 1
	}
	logger.Debug("store ready at %s", st.Dir())

	switch {
	case opts.List:
		return listNotes(st)
	case opts.New:
		return newNote(st, opts, logger)
	case opts.Cat != "":
		return catNote(st, opts, logger)
	case opts.Stat != "":
		return statNote(st, opts)
	case opts.Delete != "":
		return deleteNote(st, opts, logger)
	default:
		flag.Usage()
		return 2
	}
}

// listNotes prints one line per stored note, newest first.
func listNotes(st *store.Store) int {
	notes, err := st.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, n := range notes {
		fmt.Printf("%s  %6d  %s\n", n.ID, n.Size, n.ModTime.Format("2006-01-02 15:04"))
	}
	return 0
}

// newNote creates a note, empty or seeded from a text file, and prints its id.
func newNote(st *store.Store, opts options, logger *cli.Logger) int {
	e := engine.New(engine.WithViewport(opts.Width, opts.Height))

	if opts.From != "" {
		f, err := os.Open(opts.From)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		first := true
		for scanner.Scan() {
			if !first {
				e.CursorBufferEnd()
				before := e.LineCount()
				e.InsertLine()
				if e.LineCount() == before {
					logger.Warn("input truncated to %d lines", before)
					break
				}
			}
			first = false
			for _, r := range scanner.Text() {
				e.InsertChar(r)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	id := st.NewID()
	if err := st.Save(id, e.Serialize()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("created note %s (%d chars)", id, e.CharCount())
	fmt.Println(id)
	return 0
}

// catNote prints the text of a note and optionally copies it to the clipboard.
func catNote(st *store.Store, opts options, logger *cli.Logger) int {
	e, code := loadNote(st, opts.Cat, opts)
	if e == nil {
		return code
	}

	text := e.Text()
	fmt.Println(text)

	if opts.Copy {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: clipboard: %v\n", err)
			return 1
		}
		logger.Info("copied note %s to clipboard", opts.Cat)
	}
	return 0
}

// statNote prints size and shape information for a note.
func statNote(st *store.Store, opts options) int {
	e, code := loadNote(st, opts.Stat, opts)
	if e == nil {
		return code
	}

	fmt.Printf("id:    %s\n", opts.Stat)
	fmt.Printf("lines: %d\n", e.LineCount())
	fmt.Printf("chars: %d\n", e.CharCount())
	fmt.Printf("mode:  %s\n", e.Mode())
	return 0
}

func deleteNote(st *store.Store, opts options, logger *cli.Logger) int {
	if err := st.Delete(opts.Delete); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("deleted note %s", opts.Delete)
	return 0
}

// loadNote reads a note from the store into an engine sized to the viewport.
func loadNote(st *store.Store, id string, opts options) (*engine.Engine, int) {
	data, err := st.Load(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, 1
	}
	e, err := engine.Load(data, engine.WithViewport(opts.Width, opts.Height))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, 1
	}
	return e, 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.Dir, "dir", defaultDir(), "Note storage directory")
	flag.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.Width, "width", 0, "Viewport width in characters (0 = detect)")
	flag.IntVar(&opts.Height, "height", 0, "Viewport height in lines (0 = detect)")
	flag.BoolVar(&opts.List, "list", false, "List stored notes")
	flag.BoolVar(&opts.New, "new", false, "Create a note and print its id")
	flag.StringVar(&opts.From, "from", "", "Seed the new note from a text file")
	flag.StringVar(&opts.Cat, "cat", "", "Print the text of a note")
	flag.BoolVar(&opts.Copy, "copy", false, "Also copy the printed note to the clipboard")
	flag.StringVar(&opts.Stat, "stat", "", "Print size information for a note")
	flag.StringVar(&opts.Delete, "delete", "", "Delete a note")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "notegrid - bounded sticky-note buffers\n\n")
		fmt.Fprintf(os.Stderr, "Usage: notegrid [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  notegrid -list                 List stored notes\n")
		fmt.Fprintf(os.Stderr, "  notegrid -new -from todo.txt   Create a note from a text file\n")
		fmt.Fprintf(os.Stderr, "  notegrid -cat <id> -copy       Print a note and copy it\n")
		fmt.Fprintf(os.Stderr, "  notegrid -stat <id>            Show a note's size\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("notegrid %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		w, h := detectViewport()
		if opts.Width <= 0 {
			opts.Width = w
		}
		if opts.Height <= 0 {
			opts.Height = h
		}
	}

	return opts
}

// detectViewport sizes the note grid from the terminal, falling back to the
// engine defaults when stdout is not a terminal.
func detectViewport() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 1 || h < 1 {
		return engine.DefaultWidth, engine.DefaultHeight
	}
	return w, h
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notegrid"
	}
	return filepath.Join(home, ".notegrid", "notes")
}
