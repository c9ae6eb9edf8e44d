package klv

import (
	"encoding/binary"
	"math"
	"time"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// VariantKind identifies which shape a Value holds.
type VariantKind int

const (
	KindU8 VariantKind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindString
	KindBytes
	KindTimestamp
	KindDuration
)

func (k VariantKind) String() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindI8:
		return "I8"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindF32:
		return "F32"
	case KindF64:
		return "F64"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindTimestamp:
		return "Timestamp"
	case KindDuration:
		return "Duration"
	default:
		return "Unknown"
	}
}

// Value is a tagged union over the primitive and time-oriented shapes a
// decoded record payload may take. Kind selects which fields are
// meaningful: one payload field for most kinds, both sec and nan for
// KindDuration.
type Value struct {
	Kind VariantKind

	u   uint64
	i   int64
	f   float64
	s   string
	b   []byte
	sec uint64
	nan uint32
}

func ValueU8(v uint8) Value   { return Value{Kind: KindU8, u: uint64(v)} }
func ValueU16(v uint16) Value { return Value{Kind: KindU16, u: uint64(v)} }
func ValueU32(v uint32) Value { return Value{Kind: KindU32, u: uint64(v)} }
func ValueU64(v uint64) Value { return Value{Kind: KindU64, u: v} }
func ValueI8(v int8) Value    { return Value{Kind: KindI8, i: int64(v)} }
func ValueI16(v int16) Value  { return Value{Kind: KindI16, i: int64(v)} }
func ValueI32(v int32) Value  { return Value{Kind: KindI32, i: int64(v)} }
func ValueI64(v int64) Value  { return Value{Kind: KindI64, i: v} }
func ValueF32(v float32) Value   { return Value{Kind: KindF32, f: float64(v)} }
func ValueF64(v float64) Value   { return Value{Kind: KindF64, f: v} }
func ValueString(v string) Value { return Value{Kind: KindString, s: v} }
func ValueBytes(v []byte) Value  { return Value{Kind: KindBytes, b: v} }

// ValueTimestamp holds a microsecond-resolution instant since the Unix
// epoch, matching ST 0601 tag 2's encoded width.
func ValueTimestamp(microsSinceEpoch uint64) Value {
	return Value{Kind: KindTimestamp, u: microsSinceEpoch}
}

// ValueDuration holds a seconds+nanoseconds span, encoded by Value.encode as
// 12 bytes: 8-byte seconds followed by 4-byte nanoseconds.
func ValueDuration(seconds uint64, nanos uint32) Value {
	return Value{Kind: KindDuration, sec: seconds, nan: nanos}
}

// AsTime converts a Timestamp value to a time.UTC instant. Kind is not
// checked, so the result is meaningful only for KindTimestamp; callers
// should check Kind first.
func (v Value) AsTime() time.Time {
	return time.UnixMicro(int64(v.u)).UTC()
}

// AsDuration converts a Duration value to a time.Duration, truncating
// anything beyond nanosecond resolution (none, since the wire form is
// already seconds+nanoseconds).
func (v Value) AsDuration() time.Duration {
	return time.Duration(v.sec)*time.Second + time.Duration(v.nan)
}

// AsString returns the raw string payload; valid only for KindString.
func (v Value) AsString() string { return v.s }

// AsBytes returns the raw byte payload; valid only for KindBytes.
func (v Value) AsBytes() []byte { return v.b }

// lengthHint returns the encoded byte width of the value's body, used when
// pre-sizing an output buffer. For String/Bytes this is the payload length;
// callers adding the surrounding length-of-length must add that separately.
func (v Value) lengthHint() int {
	switch v.Kind {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64, KindTimestamp:
		return 8
	case KindDuration:
		return 12
	case KindString:
		return len(v.s)
	case KindBytes:
		return len(v.b)
	default:
		return 0
	}
}

// encode appends the big-endian wire body (no surrounding length prefix)
// for v to dst and returns the extended slice.
func (v Value) encode(dst []byte) []byte {
	var tmp [8]byte
	switch v.Kind {
	case KindU8:
		return append(dst, byte(v.u))
	case KindI8:
		return append(dst, byte(int8(v.i)))
	case KindU16:
		binary.BigEndian.PutUint16(tmp[:2], uint16(v.u))
		return append(dst, tmp[:2]...)
	case KindI16:
		binary.BigEndian.PutUint16(tmp[:2], uint16(int16(v.i)))
		return append(dst, tmp[:2]...)
	case KindU32:
		binary.BigEndian.PutUint32(tmp[:4], uint32(v.u))
		return append(dst, tmp[:4]...)
	case KindI32:
		binary.BigEndian.PutUint32(tmp[:4], uint32(int32(v.i)))
		return append(dst, tmp[:4]...)
	case KindF32:
		binary.BigEndian.PutUint32(tmp[:4], math.Float32bits(float32(v.f)))
		return append(dst, tmp[:4]...)
	case KindU64:
		binary.BigEndian.PutUint64(tmp[:8], v.u)
		return append(dst, tmp[:8]...)
	case KindI64:
		binary.BigEndian.PutUint64(tmp[:8], uint64(v.i))
		return append(dst, tmp[:8]...)
	case KindF64:
		binary.BigEndian.PutUint64(tmp[:8], math.Float64bits(v.f))
		return append(dst, tmp[:8]...)
	case KindTimestamp:
		binary.BigEndian.PutUint64(tmp[:8], v.u)
		return append(dst, tmp[:8]...)
	case KindDuration:
		binary.BigEndian.PutUint64(tmp[:8], v.sec)
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], v.nan)
		dst = append(dst, tmp[:8]...)
		return append(dst, n[:]...)
	case KindString:
		return append(dst, v.s...)
	case KindBytes:
		return append(dst, v.b...)
	default:
		return dst
	}
}

// fixedWidthFor returns the exact payload width a given fixed-width kind
// requires.
func fixedWidthFor(kind VariantKind) int {
	switch kind {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64, KindTimestamp:
		return 8
	case KindDuration:
		return 12
	default:
		return -1
	}
}

// decodeFixed decodes a fixed-width numeric or time value of the given
// kind from payload, validating that payload is exactly the expected
// width before any unchecked slice access.
func decodeFixed(kind VariantKind, payload []byte) (Value, error) {
	if want := fixedWidthFor(kind); want >= 0 && len(payload) != want {
		return Value{}, errUnexpectedLength(-1, want, len(payload))
	}
	switch kind {
	case KindU8:
		return ValueU8(payload[0]), nil
	case KindI8:
		return ValueI8(int8(payload[0])), nil
	case KindU16:
		return ValueU16(binary.BigEndian.Uint16(payload)), nil
	case KindI16:
		return ValueI16(int16(binary.BigEndian.Uint16(payload))), nil
	case KindU32:
		return ValueU32(binary.BigEndian.Uint32(payload)), nil
	case KindI32:
		return ValueI32(int32(binary.BigEndian.Uint32(payload))), nil
	case KindF32:
		return ValueF32(math.Float32frombits(binary.BigEndian.Uint32(payload))), nil
	case KindU64:
		return ValueU64(binary.BigEndian.Uint64(payload)), nil
	case KindI64:
		return ValueI64(int64(binary.BigEndian.Uint64(payload))), nil
	case KindF64:
		return ValueF64(math.Float64frombits(binary.BigEndian.Uint64(payload))), nil
	case KindTimestamp:
		return ValueTimestamp(binary.BigEndian.Uint64(payload)), nil
	case KindDuration:
		return ValueDuration(binary.BigEndian.Uint64(payload[:8]), binary.BigEndian.Uint32(payload[8:12])), nil
	default:
		return Value{}, errEncoding("unsupported fixed-width kind")
	}
}

// decodeString validates payload as UTF-8 and wraps it as a String value.
func decodeString(payload []byte) (Value, error) {
	if !utf8.Valid(payload) {
		return Value{}, errEncoding("string payload is not valid UTF-8")
	}
	return ValueString(string(payload)), nil
}

// AsInt extracts a signed integer of type T from v, reporting ok=false if
// v's Kind is not a signed-integer variant. Widths are not compared: the
// value is converted to T with a Go conversion, so a T narrower than the
// variant keeps only the low-order bits.
func AsInt[T constraints.Signed](v Value) (T, bool) {
	switch v.Kind {
	case KindI8, KindI16, KindI32, KindI64:
		return T(v.i), true
	default:
		return 0, false
	}
}

// AsUint extracts an unsigned integer of type T from v, reporting ok=false
// if v's Kind is not an unsigned-integer or Timestamp variant.
func AsUint[T constraints.Unsigned](v Value) (T, bool) {
	switch v.Kind {
	case KindU8, KindU16, KindU32, KindU64, KindTimestamp:
		return T(v.u), true
	default:
		return 0, false
	}
}

// AsFloat extracts a floating-point value of type T from v, reporting
// ok=false if v's Kind is not F32 or F64.
func AsFloat[T constraints.Float](v Value) (T, bool) {
	switch v.Kind {
	case KindF32, KindF64:
		return T(v.f), true
	default:
		return 0, false
	}
}
