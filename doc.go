// Package klv provides functions and data structures for reading and writing the
// KLV (Key-Length-Value) binary encoding used by MISB ST 0601 "UAS Datalink Local
// Set" metadata, as embedded in MPEG transport streams produced by airborne imaging
// platforms. The package provides a low level API for viewing the outer 16-byte-key
// container and the inner short-form records it holds, a schema-driven API
// (UASDatalinkSchema) for decoding recognized tags into typed Values, and a
// reflective API (Marshal/Unmarshal) for projecting arbitrary Go structs onto the
// same wire layout via struct tags.
//
// The low level views (GlobalContainer, ShortRecord) borrow from the caller's byte
// slice rather than copying it and are only valid as long as the source buffer is
// not reused. Decoded strings, and byte slices filled in by Unmarshal, are copies.
package klv
