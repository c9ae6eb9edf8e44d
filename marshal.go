package klv

import (
	"reflect"
)

// Marshal encodes v, which must be a struct (or pointer to struct)
// implementing KeyedRecord, into a KLV frame: the 16-byte Universal Key,
// a BER length, and the concatenated tag/length/value records for each
// klv-tagged field, in declaration order. This mirrors the reference
// serializer's struct-name-as-key, field-rename-as-tag protocol.
func Marshal(v any) ([]byte, error) {
	rv, kr, err := structOf(v)
	if err != nil {
		return nil, err
	}
	specs, err := collectFields(rv.Type())
	if err != nil {
		return nil, err
	}

	var body []byte
	for _, spec := range specs {
		fv := rv.Field(spec.index)
		encoded, skip, err := encodeReflectField(fv, spec.omitIfNil)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		body = append(body, spec.tag)
		body = appendLength(body, len(encoded))
		body = append(body, encoded...)
	}

	key := kr.UniversalKey()
	out := make([]byte, 0, KeyLength+lengthOfLength(len(body))+len(body))
	out = append(out, key[:]...)
	out = appendLength(out, len(body))
	out = append(out, body...)
	return out, nil
}

// encodeReflectField encodes fv's body bytes (no surrounding tag/length).
// skip is true when fv is a nil optional pointer that omitIfNil tags as
// skip-if-none, in which case no tag/length/body should be emitted at all.
func encodeReflectField(fv reflect.Value, omitIfNil bool) (encoded []byte, skip bool, err error) {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			if omitIfNil {
				return nil, true, nil
			}
			return nil, false, nil
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.Bool:
		if fv.Bool() {
			return []byte{1}, false, nil
		}
		return []byte{0}, false, nil
	case reflect.Int8:
		return ValueI8(int8(fv.Int())).encode(nil), false, nil
	case reflect.Int16:
		return ValueI16(int16(fv.Int())).encode(nil), false, nil
	case reflect.Int32:
		return ValueI32(int32(fv.Int())).encode(nil), false, nil
	case reflect.Int64, reflect.Int:
		return ValueI64(fv.Int()).encode(nil), false, nil
	case reflect.Uint8:
		return ValueU8(uint8(fv.Uint())).encode(nil), false, nil
	case reflect.Uint16:
		return ValueU16(uint16(fv.Uint())).encode(nil), false, nil
	case reflect.Uint32:
		return ValueU32(uint32(fv.Uint())).encode(nil), false, nil
	case reflect.Uint64, reflect.Uint:
		return ValueU64(fv.Uint()).encode(nil), false, nil
	case reflect.Float32:
		return ValueF32(float32(fv.Float())).encode(nil), false, nil
	case reflect.Float64:
		return ValueF64(fv.Float()).encode(nil), false, nil
	case reflect.String:
		return []byte(fv.String()), false, nil
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), fv.Bytes()...), false, nil
		}
		return nil, false, errEncoding("unsupported slice element type in reflective encoder")
	default:
		return nil, false, errEncoding("unsupported field kind in reflective encoder: " + fv.Kind().String())
	}
}
