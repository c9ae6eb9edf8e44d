package klv

import "reflect"

// Unmarshal decodes data, a KLV frame shaped as 16-byte Universal Key + BER
// length + concatenated tag/length/value records, into v, a pointer to a
// struct implementing KeyedRecord. Unknown wire tags are tolerated and
// skipped. Fields present in v but absent from data are left at their zero
// value unless the field is not a pointer, in which case MissingField is
// returned. Trailing or short records report TrailingBytes/BufferTooShort.
func Unmarshal(data []byte, v any) error {
	rv, kr, err := structOf(v)
	if err != nil {
		return err
	}
	if !rv.CanSet() {
		return errInvalidKey("Unmarshal requires a pointer to a struct")
	}

	g, err := TryViewGlobal(data)
	if err != nil {
		return err
	}
	want := kr.UniversalKey()
	if !g.KeyEquals(want) {
		return errInvalidKey("Universal Key does not match target record")
	}
	content, err := g.TryContent()
	if err != nil {
		return err
	}

	specs, err := collectFields(rv.Type())
	if err != nil {
		return err
	}
	byTag := make(map[byte]fieldSpec, len(specs))
	for _, s := range specs {
		byTag[s.tag] = s
	}

	seen := make(map[byte]bool)
	cursor := 0
	for cursor < len(content) {
		tagByte := content[cursor]
		cursor++
		payloadLen, headerLen, err := decodeLength(content[cursor:])
		if err != nil {
			return err
		}
		cursor += headerLen
		if cursor+payloadLen > len(content) {
			return errBufferTooShort("reflective record payload runs past content end")
		}
		payload := content[cursor : cursor+payloadLen]
		cursor += payloadLen

		spec, ok := byTag[tagByte]
		if !ok {
			continue // tolerant of unrecognized fields, per skip-by-length policy
		}
		seen[tagByte] = true
		if err := decodeReflectField(rv.Field(spec.index), payload); err != nil {
			return err
		}
	}
	if cursor != len(content) {
		return errTrailingBytes(len(content) - cursor)
	}

	for _, spec := range specs {
		if seen[spec.tag] {
			continue
		}
		if rv.Field(spec.index).Kind() != reflect.Ptr {
			return errMissingField(int(spec.tag))
		}
	}
	return nil
}

// decodeReflectField decodes payload into fv according to fv's static Go
// type, allocating a new element when fv is a nil optional pointer.
func decodeReflectField(fv reflect.Value, payload []byte) error {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.Bool:
		if len(payload) != 1 {
			return errEncoding("bool field requires a 1-byte payload")
		}
		fv.SetBool(payload[0] != 0)
	case reflect.Int8:
		if len(payload) != 1 {
			return errEncoding("int8 field requires a 1-byte payload")
		}
		fv.SetInt(int64(int8(payload[0])))
	case reflect.Int16:
		val, err := decodeFixed(KindI16, payload)
		if err != nil {
			return err
		}
		fv.SetInt(val.i)
	case reflect.Int32:
		val, err := decodeFixed(KindI32, payload)
		if err != nil {
			return err
		}
		fv.SetInt(val.i)
	case reflect.Int64, reflect.Int:
		val, err := decodeFixed(KindI64, payload)
		if err != nil {
			return err
		}
		fv.SetInt(val.i)
	case reflect.Uint8:
		if len(payload) != 1 {
			return errEncoding("uint8 field requires a 1-byte payload")
		}
		fv.SetUint(uint64(payload[0]))
	case reflect.Uint16:
		val, err := decodeFixed(KindU16, payload)
		if err != nil {
			return err
		}
		fv.SetUint(val.u)
	case reflect.Uint32:
		val, err := decodeFixed(KindU32, payload)
		if err != nil {
			return err
		}
		fv.SetUint(val.u)
	case reflect.Uint64, reflect.Uint:
		val, err := decodeFixed(KindU64, payload)
		if err != nil {
			return err
		}
		fv.SetUint(val.u)
	case reflect.Float32:
		val, err := decodeFixed(KindF32, payload)
		if err != nil {
			return err
		}
		fv.SetFloat(val.f)
	case reflect.Float64:
		val, err := decodeFixed(KindF64, payload)
		if err != nil {
			return err
		}
		fv.SetFloat(val.f)
	case reflect.String:
		s, err := decodeString(payload)
		if err != nil {
			return err
		}
		fv.SetString(s.s)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.Uint8 {
			return errEncoding("unsupported slice element type in reflective decoder")
		}
		fv.SetBytes(append([]byte(nil), payload...))
	default:
		return errEncoding("unsupported field kind in reflective decoder: " + fv.Kind().String())
	}
	return nil
}
