package klv

import "testing"

func TestGenericAccessors(t *testing.T) {
	if v, ok := AsInt[int32](ValueI32(-42)); !ok || v != -42 {
		t.Fatalf("AsInt[int32] = (%d, %v), want (-42, true)", v, ok)
	}
	if _, ok := AsInt[int32](ValueU32(42)); ok {
		t.Fatalf("AsInt[int32] on a U32 value should report ok=false")
	}
	if v, ok := AsUint[uint16](ValueU16(1000)); !ok || v != 1000 {
		t.Fatalf("AsUint[uint16] = (%d, %v), want (1000, true)", v, ok)
	}
	if v, ok := AsFloat[float64](ValueF32(1.5)); !ok || v != 1.5 {
		t.Fatalf("AsFloat[float64] = (%v, %v), want (1.5, true)", v, ok)
	}
}
