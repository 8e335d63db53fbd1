package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ValueKind is the type of a cell value.
type ValueKind int

const (
	// KindNull is an absent value.
	KindNull ValueKind = iota
	// KindString is a text value.
	KindString
	// KindNumber is a float64 value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
)

// String returns the string representation of a ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Value is a scalar cell value.
// The zero Value is null.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	flag bool
}

// String creates a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number creates a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Null creates an absent value.
func Null() Value { return Value{} }

// Kind returns the value's type.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the text and true if v is a string value.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number and true if v is a numeric value.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsBool returns the boolean and true if v is a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// String returns the display form of the value.
// Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// MarshalJSON encodes the value as its natural JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// FromAny converts a decoded JSON/TOML scalar to a Value.
// Composite values are kept as their JSON text.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return String(x.Format("2006-01-02"))
		}
		return String(x.Format(time.RFC3339))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return String(x.String())
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return String(fmt.Sprintf("%v", x))
		}
		return String(string(data))
	}
}
