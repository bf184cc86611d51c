package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xrbtree/observability"
	"github.com/benz9527/xrbtree/xlog"
)

const (
	metricsInterval = 30 * time.Second
	metricsTimeout  = 5 * time.Second
	poolStopTimeout = 3 * time.Second
)

type sortIO struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newXLogger(lc fx.Lifecycle, opts *sortOptions) xlog.XLogger {
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(opts.logLevel)),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerWriter(xlog.StdErr),
	)
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger
}

func newWorkerPool(lc fx.Lifecycle, opts *sortOptions, logger xlog.XLogger) (*ants.Pool, error) {
	pool, err := ants.NewPool(opts.workers,
		ants.WithLogger(xlog.NewAntsXLogger(logger)),
	)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() error {
		return pool.ReleaseTimeout(poolStopTimeout)
	}))
	return pool, nil
}

func registerMetrics(lc fx.Lifecycle, opts *sortOptions, stdio *sortIO) error {
	if !opts.metrics {
		return nil
	}
	shutdown, err := observability.NewConsoleMetricsExporter(metricsInterval, metricsTimeout,
		stdoutmetric.WithWriter(stdio.err),
	)
	if err != nil {
		return err
	}
	observability.InitAppStats(context.Background(), sortStatsName, nil)
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		return shutdown(ctx)
	}))
	return nil
}

func newApp(opts *sortOptions, stdio *sortIO, extra ...fx.Option) *fx.App {
	options := []fx.Option{
		fx.Supply(opts, stdio),
		fx.Provide(
			newXLogger,
			newWorkerPool,
			newSorter,
		),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(registerMetrics),
	}
	return fx.New(append(options, extra...)...)
}

// run sorts once and returns the process exit code.
func run(ctx context.Context, opts *sortOptions, stdio *sortIO) int {
	var s *sorter
	app := newApp(opts, stdio, fx.Populate(&s))
	if err := app.Err(); err != nil {
		_, _ = io.WriteString(stdio.err, err.Error()+"\n")
		return 1
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		_, _ = io.WriteString(stdio.err, err.Error()+"\n")
		return 1
	}

	code := 0
	if err := s.Run(ctx); err != nil {
		s.logger.ErrorStack(err, "sort failed")
		code = 1
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		_, _ = io.WriteString(stdio.err, err.Error()+"\n")
		code = 1
	}
	return code
}

func defaultSortIO() *sortIO {
	return &sortIO{
		in:  os.Stdin,
		out: os.Stdout,
		err: os.Stderr,
	}
}
