package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AllocationsTotal counts successful allocations by kind
	AllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kindalloc_allocations_total",
			Help: "Total number of successful allocations by kind",
		},
		[]string{"kind"},
	)

	// LiveAllocations tracks currently registered allocations by kind
	LiveAllocations = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kindalloc_live_allocations",
			Help: "Number of currently registered allocations by kind",
		},
		[]string{"kind"},
	)

	// ReallocationsTotal counts reallocations of registered pointers
	ReallocationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kindalloc_reallocations_total",
			Help: "Total number of reallocations of registered pointers",
		},
	)

	// UnknownPointerTotal counts operations on pointers missing from the registry
	UnknownPointerTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kindalloc_unknown_pointer_total",
			Help: "Total number of free/realloc calls on unregistered pointers",
		},
		[]string{"op"},
	)

	// AllocatorBytesAllocatedTotal tracks bytes requested from the backing allocator
	AllocatorBytesAllocatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kindalloc_allocator_bytes_allocated_total",
			Help: "Total bytes requested from the backing allocator",
		},
	)

	// AllocatorBytesFreedTotal tracks bytes returned to the backing allocator
	AllocatorBytesFreedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kindalloc_allocator_bytes_freed_total",
			Help: "Total bytes returned to the backing allocator",
		},
	)

	// CloseReclaimedTotal counts blocks reclaimed during handle teardown
	CloseReclaimedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kindalloc_close_reclaimed_blocks_total",
			Help: "Total number of still-live blocks reclaimed by Close",
		},
	)
)
