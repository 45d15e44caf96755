package memory

import (
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/kindalloc/internal/metrics"
)

// TrackingAllocator wraps a base memory.Allocator and updates Prometheus
// metrics plus atomic byte counters.
type TrackingAllocator struct {
	memory.Allocator
	// Exposed for testing validity, but main purpose is metrics
	BytesAllocated atomic.Int64
	BytesFreed     atomic.Int64
}

// NewTrackingAllocator creates a new allocator that wraps the given base
// allocator. If base is nil, it uses the package default.
func NewTrackingAllocator(base memory.Allocator) *TrackingAllocator {
	if base == nil {
		base = Default
	}
	return &TrackingAllocator{Allocator: base}
}

func (a *TrackingAllocator) Allocate(size int) []byte {
	a.BytesAllocated.Add(int64(size))
	metrics.AllocatorBytesAllocatedTotal.Add(float64(size))
	return a.Allocator.Allocate(size)
}

func (a *TrackingAllocator) Reallocate(size int, b []byte) []byte {
	// Counted as a fresh allocation to show churn; the engine performs its
	// own copy-and-free, so this path only serves direct callers.
	a.BytesAllocated.Add(int64(size))
	metrics.AllocatorBytesAllocatedTotal.Add(float64(size))
	return a.Allocator.Reallocate(size, b)
}

func (a *TrackingAllocator) Free(b []byte) {
	a.BytesFreed.Add(int64(len(b)))
	metrics.AllocatorBytesFreedTotal.Add(float64(len(b)))
	a.Allocator.Free(b)
}

// Ensure interface satisfaction
var _ memory.Allocator = (*TrackingAllocator)(nil)
