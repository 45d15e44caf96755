// Package memory adapts an Arrow allocator as the raw memory service behind
// the allocation engine. Blocks are plain byte slices obtained from and
// returned to a memory.Allocator; the engine never touches the Go heap
// directly.
package memory

import (
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/kindalloc/internal/errors"
)

// Default is the backing allocator used when the caller does not supply one.
var Default memory.Allocator = memory.DefaultAllocator

// Allocate requests size bytes from the backing allocator. Arrow allocators
// signal exhaustion by panicking; that is converted here into a typed
// resource_exhaustion error so the engine boundary stays error-based.
func Allocate(mem memory.Allocator, operation string, size int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errors.NewExhaustion(operation, size)
		}
	}()
	buf = mem.Allocate(size)
	if buf == nil && size > 0 {
		return nil, errors.NewExhaustion(operation, size)
	}
	return buf, nil
}
