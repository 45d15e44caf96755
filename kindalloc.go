// Package kindalloc is a small type-segmented allocator for runtimes that
// repeatedly create and discard a closed set of tagged value kinds, such as
// an interpreter's value heap. Every live block is tracked in a central
// registry partitioned into per-kind slabs, which makes per-kind populations
// inspectable and lets Close reclaim everything the caller forgot to free.
//
// It is not a general-purpose allocator: freed memory is never reused,
// blocks are never coalesced, and alignment is whatever the backing Arrow
// allocator provides.
package kindalloc

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/kindalloc/internal/engine"
	kerrors "github.com/23skdu/kindalloc/internal/errors"
	"github.com/23skdu/kindalloc/internal/logging"
	memsvc "github.com/23skdu/kindalloc/internal/memory"
)

// Kind tags each allocation. Aliased from the engine so both layers share
// one enumeration.
type Kind = engine.Kind

const (
	KindNumeric = engine.KindNumeric
	KindString  = engine.KindString
	KindBoolean = engine.KindBoolean
)

// ErrOutOfMemory is the sentinel matched by errors.Is on the recoverable
// TryAlloc/TryRealloc contract.
var ErrOutOfMemory = kerrors.ErrOutOfMemory

// allocator is the call surface shared by the two engine variants.
type allocator interface {
	Alloc(engine.Kind, int) (unsafe.Pointer, error)
	Realloc(unsafe.Pointer, int) (unsafe.Pointer, error)
	Free(unsafe.Pointer) bool
	Close()
	Count(engine.Kind) int
	Len() int
	Live(engine.Kind) []unsafe.Pointer
	SizeOf(unsafe.Pointer) (int, bool)
	Bytes(unsafe.Pointer) ([]byte, bool)
}

// Heap is the caller-facing handle. It owns exactly one engine variant,
// selected irrevocably at construction, and dispatches every call to it.
// After Close the handle must not be used again.
type Heap struct {
	eng        allocator
	tracking   *memsvc.TrackingAllocator
	threadSafe bool
	log        *logging.Logger
}

// Stats reports cumulative byte traffic through the backing allocator and
// the current live population per kind.
type Stats struct {
	BytesAllocated int64
	BytesFreed     int64
	LiveByKind     map[Kind]int
}

// New creates a heap backed by the default Arrow allocator.
func New(cfg Config) *Heap {
	return NewWithAllocator(cfg, nil)
}

// NewWithAllocator creates a heap over a caller-supplied Arrow allocator.
// A nil mem falls back to the default. Either way the backing allocator is
// wrapped for byte accounting.
func NewWithAllocator(cfg Config, mem memory.Allocator) *Heap {
	log := logging.New(cfg.LogLevel)
	tracking := memsvc.NewTrackingAllocator(mem)
	h := &Heap{
		tracking:   tracking,
		threadSafe: cfg.ThreadSafe,
		log:        log.WithComponent("heap"),
	}
	if cfg.ThreadSafe {
		h.eng = engine.NewConcurrent(tracking, log)
	} else {
		h.eng = engine.New(tracking, log)
	}
	return h
}

// Alloc returns a size-byte block registered under k. Exhaustion of the
// backing allocator is fatal; callers needing a recoverable contract use
// TryAlloc. Block contents are not zeroed.
func (h *Heap) Alloc(k Kind, size int) unsafe.Pointer {
	p, err := h.eng.Alloc(k, size)
	if err != nil {
		h.log.Fatal("allocation failed", map[string]any{
			"kind":  k.String(),
			"size":  size,
			"error": err.Error(),
		})
	}
	return p
}

// TryAlloc is Alloc with exhaustion reported as ErrOutOfMemory instead of
// terminating the process.
func (h *Heap) TryAlloc(k Kind, size int) (unsafe.Pointer, error) {
	return h.eng.Alloc(k, size)
}

// Realloc moves the allocation at p into a fresh size-byte block, preserving
// min(old, new) bytes, and returns the new address. Exhaustion is fatal. A
// pointer this heap does not own yields a fresh untracked block (logged and
// counted, see the engine documentation).
func (h *Heap) Realloc(p unsafe.Pointer, size int) unsafe.Pointer {
	np, err := h.eng.Realloc(p, size)
	if err != nil {
		h.log.Fatal("reallocation failed", map[string]any{
			"size":  size,
			"error": err.Error(),
		})
	}
	return np
}

// TryRealloc is Realloc with exhaustion reported as ErrOutOfMemory instead
// of terminating the process.
func (h *Heap) TryRealloc(p unsafe.Pointer, size int) (unsafe.Pointer, error) {
	return h.eng.Realloc(p, size)
}

// Free releases the allocation at p and reports whether p was registered.
// Freeing an unknown or already-freed pointer is a no-op returning false.
func (h *Heap) Free(p unsafe.Pointer) bool {
	return h.eng.Free(p)
}

// Close releases every still-live block and the heap's bookkeeping. The
// handle must not be used afterwards.
func (h *Heap) Close() {
	h.eng.Close()
}

// ThreadSafe reports which engine variant the heap was constructed with.
func (h *Heap) ThreadSafe() bool {
	return h.threadSafe
}

// Count returns the number of live allocations of kind k.
func (h *Heap) Count(k Kind) int {
	return h.eng.Count(k)
}

// Len returns the total number of live allocations.
func (h *Heap) Len() int {
	return h.eng.Len()
}

// Live returns a snapshot of every live pointer of kind k.
func (h *Heap) Live(k Kind) []unsafe.Pointer {
	return h.eng.Live(k)
}

// SizeOf returns the most recently requested size for p.
func (h *Heap) SizeOf(p unsafe.Pointer) (int, bool) {
	return h.eng.SizeOf(p)
}

// Bytes returns the live block at p as a byte slice sized to the last
// requested length.
func (h *Heap) Bytes(p unsafe.Pointer) ([]byte, bool) {
	return h.eng.Bytes(p)
}

// Stats returns cumulative byte counters and live populations.
func (h *Heap) Stats() Stats {
	return Stats{
		BytesAllocated: h.tracking.BytesAllocated.Load(),
		BytesFreed:     h.tracking.BytesFreed.Load(),
		LiveByKind: map[Kind]int{
			KindNumeric: h.eng.Count(KindNumeric),
			KindString:  h.eng.Count(KindString),
			KindBoolean: h.eng.Count(KindBoolean),
		},
	}
}
