package klv

import "bytes"

// reflectMixedRecord exercises testable property S3: one field per
// supported primitive Go kind, each with a numeric tag rename.
type reflectMixedRecord struct {
	A uint8   `klv:"10"`
	B uint16  `klv:"11"`
	C uint32  `klv:"12"`
	D uint64  `klv:"13"`
	E int8    `klv:"15"`
	F int16   `klv:"16"`
	G int32   `klv:"17"`
	H int64   `klv:"18"`
	I float32 `klv:"20"`
	J float64 `klv:"21"`
	K bool    `klv:"128"`
}

func (reflectMixedRecord) UniversalKey() [KeyLength]byte {
	return [KeyLength]byte{'T', 'E', 'S', 'T', 'M', 'I', 'X', 'E', 'D', '0', '0', '0', '0', '0', '0', '0'}
}

// reflectOptionalRecord exercises testable property S4: a required string,
// an optional present field, an optional absent field encoded as a
// zero-length body, and two skip-if-none fields (one absent, one present).
type reflectOptionalRecord struct {
	Req  string  `klv:"30"`
	OptA *string `klv:"31"`
	OptB *string `klv:"32"`
	OptC *string `klv:"120,omitempty"`
	OptD *string `klv:"121,omitempty"`
}

func (reflectOptionalRecord) UniversalKey() [KeyLength]byte {
	return [KeyLength]byte{'T', 'E', 'S', 'T', 'O', 'P', 'T', 'I', 'O', 'N', 'A', 'L', '0', '0', '0', '0'}
}

// keyedStringA and keyedStringB exercise testable property S5: two record
// types whose Universal Keys differ only in their last byte.
type keyedStringA struct {
	V string `klv:"1"`
}

func (keyedStringA) UniversalKey() [KeyLength]byte {
	return [KeyLength]byte{'T', 'E', 'S', 'T', 'D', 'A', 'T', 'A', '0', '0', '0', '0', '0', '0', '0', '0'}
}

type keyedStringB struct {
	V string `klv:"1"`
}

func (keyedStringB) UniversalKey() [KeyLength]byte {
	return [KeyLength]byte{'T', 'E', 'S', 'T', 'D', 'A', 'T', 'A', '0', '0', '0', '0', '0', '0', '0', '1'}
}

func containsSubsequence(haystack, needle []byte) bool {
	return bytes.Contains(haystack, needle)
}
