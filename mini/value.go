package mini

// ValueKind enumerates the runtime value categories.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// Value is an immutable runtime value: a kind tag plus payload.
type Value struct {
	kind ValueKind
	data any
}
