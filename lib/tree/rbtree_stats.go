package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBTreeStatsName = "xrbtree/rbtree"
)

type rotationKind uint8

const (
	outerRotation rotationKind = iota
	innerRotation
)

func (k rotationKind) String() string {
	if k == innerRotation {
		return "inner"
	}
	return "outer"
}

var (
	outerRotationAttrs = metric.WithAttributeSet(attribute.NewSet(attribute.String("rbtree.rotation.kind", outerRotation.String())))
	innerRotationAttrs = metric.WithAttributeSet(attribute.NewSet(attribute.String("rbtree.rotation.kind", innerRotation.String())))
)

// A nil *rbTreeStats records nothing.
type rbTreeStats struct {
	elementCount     metric.Int64UpDownCounter
	insertCount      metric.Int64Counter
	replaceCount     metric.Int64Counter
	removeCount      metric.Int64Counter
	rotationCount    metric.Int64Counter
	rootAbsorbsCount metric.Int64Counter
}

func (stats *rbTreeStats) recordInsert(replaced bool) {
	if stats == nil {
		return
	}
	if replaced {
		stats.replaceCount.Add(context.Background(), 1)
		return
	}
	stats.insertCount.Add(context.Background(), 1)
	stats.elementCount.Add(context.Background(), 1)
}

func (stats *rbTreeStats) recordRemove(op string) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("rbtree.remove.op", op),
	)
	stats.removeCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
	stats.elementCount.Add(context.Background(), -1)
}

func (stats *rbTreeStats) recordClear(count int64) {
	if stats == nil || count <= 0 {
		return
	}
	stats.elementCount.Add(context.Background(), -count)
}

func (stats *rbTreeStats) recordRotation(kind rotationKind) {
	if stats == nil {
		return
	}
	attrs := outerRotationAttrs
	if kind == innerRotation {
		attrs = innerRotationAttrs
	}
	stats.rotationCount.Add(context.Background(), 1, attrs)
}

// recordRootAbsorb counts removals whose double black reached the root,
// shrinking the black height of the whole tree.
func (stats *rbTreeStats) recordRootAbsorb() {
	if stats == nil {
		return
	}
	stats.rootAbsorbsCount.Add(context.Background(), 1)
}

func newRBTreeStats(name string) *rbTreeStats {
	meterName := RBTreeStatsName
	if name != "" {
		meterName = fmt.Sprintf("%s/%s", RBTreeStatsName, name)
	}
	meter := otel.Meter(meterName)
	return &rbTreeStats{
		elementCount: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"rbtree.element.count",
				metric.WithDescription("The number of elements in the red-black tree."),
			),
		),
		insertCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.insert.count",
				metric.WithDescription("The number of new elements inserted."),
			),
		),
		replaceCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.replace.count",
				metric.WithDescription("The number of inserts replacing an equal element."),
			),
		),
		removeCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.remove.count",
				metric.WithDescription("The number of elements removed, by operation."),
			),
		),
		rotationCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.rotation.count",
				metric.WithDescription("The number of rotations done by the rebalance fixups."),
			),
		),
		rootAbsorbsCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"rbtree.root.absorb.count",
				metric.WithDescription("The number of removals that propagated double black to the root."),
			),
		),
	}
}
