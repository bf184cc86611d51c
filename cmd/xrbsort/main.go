package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// setMaxProcs adjusts GOMAXPROCS to the container CPU quota and reports
// the outcome to w.
func setMaxProcs(w io.Writer) func() {
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format+"\n", args...)
	}))
	if err != nil {
		_, _ = fmt.Fprintf(w, "unable to set GOMAXPROCS: %v\n", err)
	}
	return undo
}

func main() {
	stdio := defaultSortIO()

	// Before the flags, the default worker count follows GOMAXPROCS.
	undo := setMaxProcs(stdio.err)
	defer undo()

	opts, err := parseSortOptions(os.Args[1:], stdio.err)
	if errors.Is(err, pflag.ErrHelp) {
		return
	} else if err != nil {
		undo()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, opts, stdio)
	stop()
	if code != 0 {
		undo()
		os.Exit(code)
	}
}
