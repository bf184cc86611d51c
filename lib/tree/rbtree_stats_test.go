package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func sumOf(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			total := int64(0)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestRBTreeStats(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	defer func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	}()

	tree := NewOrderedRBTree[int](WithRBTreeStats[int]("stats-test"))
	for i := 0; i < 16; i++ {
		tree.Insert(i)
	}
	tree.Insert(3)
	for i := 0; i < 16; i += 2 {
		require.True(t, tree.Remove(i))
	}
	_, ok := tree.Pop()
	require.True(t, ok)
	_, ok = tree.PopBack()
	require.True(t, ok)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	require.Equal(t, int64(16), sumOf(t, rm, "rbtree.insert.count"))
	require.Equal(t, int64(1), sumOf(t, rm, "rbtree.replace.count"))
	require.Equal(t, int64(10), sumOf(t, rm, "rbtree.remove.count"))
	require.Equal(t, tree.Len(), sumOf(t, rm, "rbtree.element.count"))
	require.Greater(t, sumOf(t, rm, "rbtree.rotation.count"), int64(0))

	tree.Clear()
	rm = metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Equal(t, int64(0), sumOf(t, rm, "rbtree.element.count"))
}

func TestRBTreeStats_Disabled(t *testing.T) {
	var stats *rbTreeStats
	require.NotPanics(t, func() {
		stats.recordInsert(false)
		stats.recordRemove("pop")
		stats.recordRotation(innerRotation)
		stats.recordRootAbsorb()
		stats.recordClear(1)
	})
}
