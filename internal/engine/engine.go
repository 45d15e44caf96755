// Package engine implements the allocation engine: a registry of live
// allocations partitioned into per-kind slabs, with alloc, realloc, free and
// teardown over an Arrow backing allocator.
package engine

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/kindalloc/internal/logging"
	backing "github.com/23skdu/kindalloc/internal/memory"
	"github.com/23skdu/kindalloc/internal/metrics"
)

// Engine orchestrates all registry and slab mutation. It performs no internal
// synchronization; a handle shared between goroutines needs Concurrent.
type Engine struct {
	mem memory.Allocator
	reg registry
	log *logging.Logger
}

// New creates an engine over the given backing allocator. A nil allocator
// falls back to the package default, a nil logger discards output.
func New(mem memory.Allocator, log *logging.Logger) *Engine {
	if mem == nil {
		mem = backing.Default
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{mem: mem, log: log.WithComponent("engine")}
}

// Alloc obtains a size-byte block, registers it under k and returns its
// address. Block contents are whatever the backing allocator returns.
func (e *Engine) Alloc(k Kind, size int) (unsafe.Pointer, error) {
	if !k.Valid() {
		panic("kindalloc: invalid kind")
	}
	buf, err := e.obtain("alloc", size)
	if err != nil {
		return nil, err
	}
	p := e.reg.insert(k, buf, size)
	metrics.AllocationsTotal.WithLabelValues(k.String()).Inc()
	metrics.LiveAllocations.WithLabelValues(k.String()).Inc()
	return p, nil
}

// Realloc moves the allocation at p into a fresh size-byte block, copying
// min(old, new) bytes, and returns the new address. The fresh block is
// obtained before the registry scan, so an unregistered p still consumes an
// allocation: that block is returned untracked and p is left alone, matching
// the reference allocator. The path is logged and counted.
func (e *Engine) Realloc(p unsafe.Pointer, size int) (unsafe.Pointer, error) {
	buf, err := e.obtain("realloc", size)
	if err != nil {
		return nil, err
	}
	i := e.reg.find(p)
	if i < 0 {
		e.log.Warn("realloc of unregistered pointer", map[string]any{"size": size})
		metrics.UnknownPointerTotal.WithLabelValues("realloc").Inc()
		return unsafe.Pointer(unsafe.SliceData(buf)), nil
	}
	rec := &e.reg.records[i]
	n := rec.size
	if size < n {
		n = size
	}
	copy(buf, rec.buf[:n])
	old := rec.buf
	np := unsafe.Pointer(unsafe.SliceData(buf))
	e.reg.replaceSlab(rec.kind, p, np)
	rec.buf, rec.size = buf, size
	e.mem.Free(old)
	metrics.ReallocationsTotal.Inc()
	return np, nil
}

// Free releases the allocation at p and reports whether p was registered.
// Unknown pointers, double frees included, are a counted no-op.
func (e *Engine) Free(p unsafe.Pointer) bool {
	i := e.reg.find(p)
	if i < 0 {
		metrics.UnknownPointerTotal.WithLabelValues("free").Inc()
		return false
	}
	rec := e.reg.removeAt(i)
	e.mem.Free(rec.buf)
	metrics.LiveAllocations.WithLabelValues(rec.kind.String()).Dec()
	return true
}

// Close releases every still-registered block, then the bookkeeping
// containers. The engine must not be used afterwards.
func (e *Engine) Close() {
	reclaimed := len(e.reg.records)
	for i := range e.reg.records {
		rec := &e.reg.records[i]
		e.mem.Free(rec.buf)
		metrics.LiveAllocations.WithLabelValues(rec.kind.String()).Dec()
		metrics.CloseReclaimedTotal.Inc()
	}
	if reclaimed > 0 {
		e.log.Debug("reclaimed live blocks at close", map[string]any{"blocks": reclaimed})
	}
	e.reg.release()
}

// Count returns the number of live allocations of kind k.
func (e *Engine) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return len(e.reg.slabs[k])
}

// Len returns the total number of live allocations.
func (e *Engine) Len() int {
	return len(e.reg.records)
}

// Live returns a snapshot of every live pointer of kind k.
func (e *Engine) Live(k Kind) []unsafe.Pointer {
	if !k.Valid() {
		return nil
	}
	out := make([]unsafe.Pointer, len(e.reg.slabs[k]))
	copy(out, e.reg.slabs[k])
	return out
}

// SizeOf returns the most recently requested size for p.
func (e *Engine) SizeOf(p unsafe.Pointer) (int, bool) {
	i := e.reg.find(p)
	if i < 0 {
		return 0, false
	}
	return e.reg.records[i].size, true
}

// Bytes returns the live block at p as a byte slice.
func (e *Engine) Bytes(p unsafe.Pointer) ([]byte, bool) {
	i := e.reg.find(p)
	if i < 0 {
		return nil, false
	}
	rec := &e.reg.records[i]
	return rec.buf[:rec.size], true
}

// obtain requests at least one byte so every allocation has a distinct
// address; the recorded size stays as requested.
func (e *Engine) obtain(op string, size int) ([]byte, error) {
	n := size
	if n < 1 {
		n = 1
	}
	return backing.Allocate(e.mem, op, n)
}
