package engine

import "unsafe"

// record describes one live allocation. The backing slice keeps the block
// reachable; its data pointer is the allocation's identity.
type record struct {
	kind Kind
	buf  []byte
	size int
}

func (r *record) pointer() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(r.buf))
}

// registry is the authoritative collection of live records plus per-kind
// pointer slabs mirroring its membership. Lookup is a linear scan, sized for
// the small live sets of a scripting value heap. Removal is swap-with-last:
// only the bookkeeping arrays compact, the blocks themselves never move, so
// pointers held elsewhere stay valid across other records' removal.
type registry struct {
	records []record
	slabs   [kindCount][]unsafe.Pointer
}

func (g *registry) insert(k Kind, buf []byte, size int) unsafe.Pointer {
	rec := record{kind: k, buf: buf, size: size}
	p := rec.pointer()
	g.records = append(g.records, rec)
	g.slabs[k] = append(g.slabs[k], p)
	return p
}

// find returns the index of the record owning p, or -1.
func (g *registry) find(p unsafe.Pointer) int {
	for i := range g.records {
		if g.records[i].pointer() == p {
			return i
		}
	}
	return -1
}

// removeAt swap-removes record i and its slab entry, returning the record.
func (g *registry) removeAt(i int) record {
	rec := g.records[i]
	last := len(g.records) - 1
	g.records[i] = g.records[last]
	g.records[last] = record{}
	g.records = g.records[:last]
	g.removeSlab(rec.kind, rec.pointer())
	return rec
}

func (g *registry) removeSlab(k Kind, p unsafe.Pointer) {
	slab := g.slabs[k]
	for i, q := range slab {
		if q == p {
			last := len(slab) - 1
			slab[i] = slab[last]
			slab[last] = nil
			g.slabs[k] = slab[:last]
			return
		}
	}
}

// replaceSlab rewrites the slab entry for old in place, keeping the slab a
// faithful mirror of the registry after a reallocation.
func (g *registry) replaceSlab(k Kind, old, np unsafe.Pointer) {
	slab := g.slabs[k]
	for i, q := range slab {
		if q == old {
			slab[i] = np
			return
		}
	}
}

func (g *registry) release() {
	g.records = nil
	g.slabs = [kindCount][]unsafe.Pointer{}
}
