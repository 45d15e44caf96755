package engine

// Kind tags every allocation with one of the three value classes the
// allocator partitions by.
type Kind uint8

const (
	KindNumeric Kind = iota
	KindString
	KindBoolean

	kindCount = 3
)

// Valid reports whether k is one of the three defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the metric/log label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	}
	return "unknown"
}
