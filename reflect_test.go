package klv

import (
	"errors"
	"testing"
)

func TestMarshalUnmarshal_mixedTypesSymmetry(t *testing.T) {
	in := reflectMixedRecord{
		A: 8, B: 16, C: 32, D: 64,
		E: -8, F: -16, G: -32, H: -64,
		I: 0.1, J: -123.45,
		K: true,
	}

	encoded, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out reflectMixedRecord
	if err := Unmarshal(encoded, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out != in {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestMarshal_optionalSkipEncoding(t *testing.T) {
	present := "present"
	nineBytes := "ABCDEFGHI"
	in := reflectOptionalRecord{
		Req:  "required",
		OptA: &present,
		OptB: nil,
		OptC: nil,
		OptD: &nineBytes,
	}

	encoded, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !containsSubsequence(encoded, []byte{32, 0}) {
		t.Fatalf("expected tag 32 encoded with zero length")
	}
	if containsSubsequence(encoded, []byte{120, 0}) {
		t.Fatalf("tag 120 should be entirely absent (skip-if-none, nil)")
	}
	want121 := append([]byte{121, 9}, nineBytes...)
	if !containsSubsequence(encoded, want121) {
		t.Fatalf("expected tag 121 with its 9-byte payload")
	}
}

func TestUnmarshal_optionalSkipRoundTrip(t *testing.T) {
	present := "present"
	in := reflectOptionalRecord{Req: "required", OptA: &present}

	encoded, err := Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out reflectOptionalRecord
	if err := Unmarshal(encoded, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Req != in.Req {
		t.Fatalf("Req = %q, want %q", out.Req, in.Req)
	}
	if out.OptA == nil || *out.OptA != present {
		t.Fatalf("OptA = %v, want %q", out.OptA, present)
	}
	if out.OptB == nil || *out.OptB != "" {
		t.Fatalf("OptB should decode present-but-empty, got %v", out.OptB)
	}
	if out.OptC != nil {
		t.Fatalf("OptC should remain nil (absent on wire), got %v", out.OptC)
	}
}

func TestUnmarshal_keyMismatch(t *testing.T) {
	a := keyedStringA{V: "hello"}
	encoded, err := Marshal(&a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var b keyedStringB
	err = Unmarshal(encoded, &b)
	if err == nil {
		t.Fatalf("want InvalidKey error decoding into a type with a different Universal Key")
	}
	if !errorIsKind(err, InvalidKey) {
		t.Fatalf("got %v, want InvalidKey", err)
	}
}

func TestUnmarshal_missingRequiredField(t *testing.T) {
	// Encode only the required field as absent by hand-building a frame
	// with an empty field list under reflectOptionalRecord's key.
	key := reflectOptionalRecord{}.UniversalKey()
	frame := append([]byte{}, key[:]...)
	frame = appendLength(frame, 0)

	var out reflectOptionalRecord
	err := Unmarshal(frame, &out)
	if err == nil {
		t.Fatalf("want MissingField for absent required string field")
	}
	if !errorIsKind(err, MissingField) {
		t.Fatalf("got %v, want MissingField", err)
	}
}

func errorIsKind(err error, k Kind) bool {
	return errors.Is(err, ErrKind(k))
}
