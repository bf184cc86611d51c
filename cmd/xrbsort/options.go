package main

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
)

type sortOptions struct {
	dir      string
	logLevel string
	workers  int
	reverse  bool
	numeric  bool
	unique   bool
	metrics  bool
	validate bool
	files    []string
}

func defaultLogLevel() string {
	if lvl := strings.TrimSpace(os.Getenv("XLOG_LVL")); len(lvl) > 0 {
		return lvl
	}
	return "INFO"
}

func parseSortOptions(args []string, output io.Writer) (*sortOptions, error) {
	opts := &sortOptions{}
	f := pflag.NewFlagSet("xrbsort", pflag.ContinueOnError)
	f.SetOutput(output)
	f.Usage = func() {
		_, _ = io.WriteString(output, "Usage: xrbsort [flags] [file...]\n\n"+
			"Sorts the lines of the files, read beneath --dir, or of stdin.\n\n")
		f.PrintDefaults()
	}

	f.StringVar(&opts.dir, "dir", ".",
		"base directory the input files are opened beneath")
	f.BoolVarP(&opts.reverse, "reverse", "r", false,
		"sort in descending order")
	f.BoolVarP(&opts.numeric, "numeric", "n", false,
		"compare lines by their numeric value, non-numeric lines last")
	f.BoolVarP(&opts.unique, "unique", "u", false,
		"print every distinct line once")
	f.IntVarP(&opts.workers, "workers", "w", runtime.GOMAXPROCS(0),
		"number of files sorted concurrently")
	f.StringVar(&opts.logLevel, "log-level", defaultLogLevel(),
		"log level, one of DEBUG, INFO, WARN, ERROR")
	f.BoolVar(&opts.metrics, "metrics", false,
		"print the tree metrics to stderr on exit")
	f.BoolVar(&opts.validate, "validate", false,
		"check the red-black invariants of every built tree")
	if err := f.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			_, _ = io.WriteString(output, err.Error()+"\n")
			f.Usage()
		}
		return nil, err
	}
	if opts.workers <= 0 {
		err := errors.New("--workers must be positive")
		_, _ = io.WriteString(output, err.Error()+"\n")
		return nil, err
	}
	opts.files = f.Args()
	return opts, nil
}
