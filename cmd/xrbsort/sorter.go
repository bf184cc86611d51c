package main

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/google/safeopen"
	"github.com/panjf2000/ants/v2"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xrbtree/lib/infra"
	"github.com/benz9527/xrbtree/lib/kv"
	"github.com/benz9527/xrbtree/lib/queue"
	"github.com/benz9527/xrbtree/lib/tree"
	"github.com/benz9527/xrbtree/xlog"
)

const (
	sortStatsName = "xrbsort"
	maxLineSize   = 1 << 20
	stdinName     = "-"
)

// lineCount is a distinct line of one input and its occurrences.
type lineCount struct {
	line  string
	count int
}

// sortedInput is the tree built from the input at idx.
type sortedInput struct {
	idx   int
	name  string
	lines tree.RBTree[lineCount]
	err   error
}

func sortedInputCmp(i, j *sortedInput) int64 {
	return int64(i.idx - j.idx)
}

func parseNumber(line string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// numericLineOrder orders numbers by value, the other lines after them.
// Ties fall back to the byte order, so distinct lines never compare equal.
func numericLineOrder() infra.Comparator[string] {
	natural := infra.NaturalOrder[string]()
	return func(i, j string) int64 {
		fi, iok := parseNumber(i)
		fj, jok := parseNumber(j)
		switch {
		case iok && jok:
			if fi < fj {
				return -1
			} else if fi > fj {
				return 1
			}
		case iok:
			return -1
		case jok:
			return 1
		}
		return natural(i, j)
	}
}

func lineOrder(numeric bool) infra.Comparator[string] {
	if numeric {
		return numericLineOrder()
	}
	return infra.NaturalOrder[string]()
}

type sorter struct {
	opts   *sortOptions
	logger xlog.XLogger
	pool   *ants.Pool
	cmp    infra.Comparator[string]
	in     io.Reader
	out    io.Writer

	// memStats reads the host memory, only when the debug level is on.
	memStats func() (*mem.VirtualMemoryStat, error)
}

func newSorter(opts *sortOptions, logger xlog.XLogger, pool *ants.Pool, stdio *sortIO) *sorter {
	return &sorter{
		opts:     opts,
		logger:   logger,
		pool:     pool,
		cmp:      lineOrder(opts.numeric),
		in:       stdio.in,
		out:      stdio.out,
		memStats: mem.VirtualMemory,
	}
}

func (s *sorter) treeOpts() []tree.RBTreeOpt[lineCount] {
	if !s.opts.metrics {
		return nil
	}
	return []tree.RBTreeOpt[lineCount]{tree.WithRBTreeStats[lineCount](sortStatsName)}
}

// buildTree counts the lines of r in a tree ordered by s.cmp.
func (s *sorter) buildTree(ctx context.Context, r io.Reader) (tree.RBTree[lineCount], error) {
	lines := tree.NewRBTree[lineCount](func(i, j lineCount) int64 {
		return s.cmp(i.line, j.line)
	}, s.treeOpts()...)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Text()
		if lc := lines.SearchMut(func(elem lineCount) int64 {
			return s.cmp(line, elem.line)
		}); lc != nil {
			lc.count++
			continue
		}
		lines.Insert(lineCount{line: line, count: 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *sorter) sortFile(ctx context.Context, idx int, name string) *sortedInput {
	res := &sortedInput{idx: idx, name: name}
	f, err := safeopen.OpenBeneath(s.opts.dir, name)
	if err != nil {
		res.err = infra.WrapErrorStackWithMessage(err, "unable to open "+name)
		return res
	}
	defer func() {
		_ = f.Close()
	}()
	if res.lines, err = s.buildTree(ctx, f); err != nil {
		res.err = infra.WrapErrorStackWithMessage(err, "unable to read "+name)
	}
	return res
}

// sortInputs builds one tree per input file in the worker pool.
// The trees come back ordered by the input position.
func (s *sorter) sortInputs(ctx context.Context) queue.PriorityQueue[*sortedInput] {
	results := queue.NewRBQueue[*sortedInput](sortedInputCmp,
		queue.WithRBQueueEnableThreadSafe[*sortedInput](),
	)
	if len(s.opts.files) == 0 {
		res := &sortedInput{name: stdinName}
		var err error
		if res.lines, err = s.buildTree(ctx, s.in); err != nil {
			res.err = infra.WrapErrorStackWithMessage(err, "unable to read stdin")
		}
		results.Insert(res)
		return results
	}

	var wg sync.WaitGroup
	for idx, name := range s.opts.files {
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			results.Insert(s.sortFile(ctx, idx, name))
		})
		if err != nil {
			wg.Done()
			results.Insert(&sortedInput{
				idx:  idx,
				name: name,
				err:  infra.WrapErrorStackWithMessage(err, "unable to schedule "+name),
			})
		}
	}
	wg.Wait()
	return results
}

// merge folds the per input trees into one map of line counts.
func (s *sorter) merge(results queue.PriorityQueue[*sortedInput]) (kv.OrderedMap[string, int], error) {
	mapOpts := make([]kv.RBMapOpt[string, int], 0, 2)
	if s.opts.reverse {
		mapOpts = append(mapOpts, kv.WithRBMapDesc[string, int]())
	}
	if s.opts.metrics {
		mapOpts = append(mapOpts, kv.WithRBMapStats[string, int](sortStatsName))
	}
	merged := kv.NewRBMap[string, int](s.cmp, mapOpts...)

	var merr error
	for res, ok := results.Pop(); ok; res, ok = results.Pop() {
		if res.err != nil {
			s.logger.ErrorStack(res.err, "sort input failed", zap.String("input", res.name))
			merr = multierr.Append(merr, res.err)
			continue
		}
		if s.opts.validate {
			if err := tree.Validate[lineCount](res.lines); err != nil {
				err = infra.WrapErrorStackWithMessage(err, "invalid tree of "+res.name)
				s.logger.ErrorStack(err, "tree validation failed", zap.String("input", res.name))
				merr = multierr.Append(merr, err)
				continue
			}
		}
		s.logger.Debug("input sorted",
			zap.String("input", res.name),
			zap.Int64("distinct", res.lines.Len()),
			zap.Int("height", res.lines.Height()),
		)
		drain := res.lines.Drain()
		for lc, ok := drain.Next(); ok; lc, ok = drain.Next() {
			count := lc.count
			merged.Entry(lc.line).
				AndModify(func(val *int) { *val += count }).
				OrInsert(count)
		}
	}
	return merged, merr
}

func (s *sorter) write(merged kv.OrderedMap[string, int]) error {
	w := bufio.NewWriter(s.out)
	var werr error
	merged.Foreach(func(idx int64, line string, count int) bool {
		if s.opts.unique {
			count = 1
		}
		for i := 0; i < count; i++ {
			if _, werr = w.WriteString(line); werr != nil {
				return false
			}
			if werr = w.WriteByte('\n'); werr != nil {
				return false
			}
		}
		return true
	})
	return multierr.Append(werr, w.Flush())
}

func (s *sorter) debugEnabled() bool {
	lvl, err := zapcore.ParseLevel(s.logger.Level())
	return err == nil && lvl.Enabled(zapcore.DebugLevel)
}

func (s *sorter) reportMemory() {
	if !s.debugEnabled() {
		return
	}
	vm, err := s.memStats()
	if err != nil {
		s.logger.Warn("unable to read the memory stats", zap.String("error", err.Error()))
		return
	}
	s.logger.Debug("memory after build",
		zap.Uint64("used", vm.Used),
		zap.Uint64("available", vm.Available),
		zap.Float64("usedPercent", vm.UsedPercent),
	)
}

// Run writes the sorted lines of every readable input. Inputs failing
// to open or read are skipped and reported in the returned error.
func (s *sorter) Run(ctx context.Context) error {
	results := s.sortInputs(ctx)
	merged, merr := s.merge(results)
	s.reportMemory()
	s.logger.Info("lines merged",
		zap.Int("inputs", max(1, len(s.opts.files))),
		zap.Int64("distinct", merged.Len()),
	)
	if err := s.write(merged); err != nil {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, "unable to write the sorted lines"))
	}
	merged.Clear()
	return merr
}
