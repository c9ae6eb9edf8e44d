package klv

import (
	"reflect"
	"strconv"
	"strings"
)

// KeyedRecord is implemented by any Go struct Marshal/Unmarshal can drive
// reflectively: it supplies the 16-byte Universal Key that fronts the
// encoded Local Set, playing the role the reference implementation's
// 16-byte struct/record name plays.
type KeyedRecord interface {
	UniversalKey() [KeyLength]byte
}

// fieldSpec describes one reflectively-encoded struct field: its numeric
// wire tag rename and whether a nil pointer should be skipped entirely
// rather than encoded as a zero-length body.
type fieldSpec struct {
	index     int
	tag       byte
	omitIfNil bool
}

// parseFieldTag parses a `klv:"N"` or `klv:"N,omitempty"` struct tag into a
// wire tag byte and the omitempty flag. ok is false when the field has no
// klv tag (such fields are skipped entirely by the reflective codec) or when
// the tag's number does not parse as a u8 (collectFields reports that as
// InvalidKey).
func parseFieldTag(raw string) (tag byte, omitIfNil bool, ok bool) {
	if raw == "" || raw == "-" {
		return 0, false, false
	}
	parts := strings.Split(raw, ",")
	n, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, false, false
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitIfNil = true
		}
	}
	return byte(n), omitIfNil, true
}

// collectFields walks t's exported fields, building one fieldSpec per
// klv-tagged field and detecting duplicate and malformed renames.
func collectFields(t reflect.Type) ([]fieldSpec, error) {
	seen := make(map[byte]bool)
	var specs []fieldSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		raw := f.Tag.Get("klv")
		tagByte, omitIfNil, ok := parseFieldTag(raw)
		if !ok {
			if raw != "" && raw != "-" {
				return nil, errInvalidKey("klv tag " + strconv.Quote(raw) + " on field " + f.Name + " is not a u8 rename")
			}
			continue
		}
		if seen[tagByte] {
			return nil, errDuplicateTag(int(tagByte))
		}
		seen[tagByte] = true
		specs = append(specs, fieldSpec{index: i, tag: tagByte, omitIfNil: omitIfNil})
	}
	return specs, nil
}

func structOf(v any) (reflect.Value, KeyedRecord, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, nil, errInvalidKey("nil pointer passed to reflective codec")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, nil, errInvalidKey("reflective codec requires a struct or pointer to struct")
	}
	kr, ok := v.(KeyedRecord)
	if !ok {
		if rv.CanAddr() {
			if kr2, ok2 := rv.Addr().Interface().(KeyedRecord); ok2 {
				return rv, kr2, nil
			}
		}
		return reflect.Value{}, nil, errInvalidKey("type does not implement UniversalKey() [16]byte")
	}
	return rv, kr, nil
}
