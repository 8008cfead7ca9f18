package mini

import (
	"fmt"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String returns the display text of a value, as printed by `print` and
// used for string coercion under `+`.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindBool:
		if v.Bool() {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return formatFloat(v.data.(float64))
	case KindString:
		return v.data.(string)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// formatFloat keeps a visible decimal point on whole floats so the
// float/int distinction survives in output (42.0 rather than 42).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.ContainsAny(s, "nN") {
		s += ".0"
	}
	return s
}

func (v Value) Truthy() bool {
	switch v.kind {
	case KindNone:
		return false
	case KindBool:
		return v.Bool()
	case KindInt:
		return v.data.(int64) != 0
	case KindFloat:
		return v.data.(float64) != 0
	case KindString:
		return v.data.(string) != ""
	default:
		return true
	}
}

// Equal is strict identity: kinds must match and payloads must be equal.
// The `is` operator uses it directly; `==` additionally admits numeric
// comparison across int and float.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindInt:
		return v.data.(int64) == other.data.(int64)
	case KindFloat:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	default:
		return v.data == other.data
	}
}
