package engine

import (
	"sync"
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/kindalloc/internal/logging"
)

// Concurrent guards an Engine behind a single mutex per handle. Every
// operation, lookup through backing-allocator call, is one critical section,
// so mixed calls from multiple goroutines never observe partial registry
// state. Exhaustion surfaces as an error after the lock is released; the
// mutex is never held across a fatal exit.
type Concurrent struct {
	mu  sync.Mutex
	eng *Engine
}

// NewConcurrent creates a thread-safe engine over the given backing
// allocator.
func NewConcurrent(mem memory.Allocator, log *logging.Logger) *Concurrent {
	return &Concurrent{eng: New(mem, log)}
}

func (c *Concurrent) Alloc(k Kind, size int) (unsafe.Pointer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Alloc(k, size)
}

func (c *Concurrent) Realloc(p unsafe.Pointer, size int) (unsafe.Pointer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Realloc(p, size)
}

func (c *Concurrent) Free(p unsafe.Pointer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Free(p)
}

// Close tears down the wrapped engine. Nothing may contend with a handle
// being destroyed, but the lock is still taken.
func (c *Concurrent) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.Close()
}

func (c *Concurrent) Count(k Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Count(k)
}

func (c *Concurrent) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Len()
}

func (c *Concurrent) Live(k Kind) []unsafe.Pointer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Live(k)
}

func (c *Concurrent) SizeOf(p unsafe.Pointer) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.SizeOf(p)
}

func (c *Concurrent) Bytes(p unsafe.Pointer) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.Bytes(p)
}
