package klv

// TagValue pairs a UAS Datalink tag with the value to encode for it.
type TagValue struct {
	Tag   UASTag
	Value Value
}

var uasSchema = UASDatalinkSchema{}

// DecodeUASDLS decodes buf as the content of a UAS Datalink Local Set
// (already stripped of its outer Universal Key and BER length — see
// TryViewGlobal/GlobalContainer.Content for peeling that off first) into a
// map from recognized tag to decoded Value.
func DecodeUASDLS(buf []byte, opts ...DecodeOption) (map[UASTag]Value, error) {
	cfg := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make(map[UASTag]Value)
	it := NewRecordIterator(buf)
	for {
		rec, err := it.Next()
		if err != nil {
			break
		}
		tag, ok := uasSchema.FromByte(rec.Tag)
		if !ok {
			if cfg.unknownTag == ErrorOnUnknownTags {
				return nil, errUnknownTag(int(rec.Tag))
			}
			continue
		}
		if !uasSchema.ExpectedLength(tag, rec.Length()) {
			return nil, errUnexpectedLength(int(tag), uasTagTable[tag].fixedWidth, rec.Length())
		}

		var v Value
		if uasTagTable[tag].kind == KindString {
			v, err = decodeStringPayload(rec.Content(), cfg)
		} else {
			v, err = uasSchema.DecodeValue(tag, rec.Content())
		}
		if err != nil {
			return nil, err
		}
		out[tag] = v
	}
	if cfg.truncation == ErrorOnTruncation && it.Truncated() {
		return nil, errBufferTooShort("trailing record truncated")
	}
	return out, nil
}

// EncodedLen returns the exact byte length EncodeUASDLS/EncodeUASDLSInto
// will produce for records, including the outer Universal Key and BER
// length but excluding nothing: the return value is ready to pass to
// make([]byte, n).
func EncodedLen(records []TagValue) int {
	content := 0
	for _, r := range records {
		body := r.Value.lengthHint()
		if r.Tag == TagChecksum && body == 1 {
			body = 2
		}
		content += shortRecordHeaderLength + body
	}
	return EncodedGlobalLen(content)
}

// EncodeUASDLS encodes records as a full UAS Datalink Local Set frame:
// Universal Key, BER length, and the concatenated short-form records in
// declaration order.
func EncodeUASDLS(records []TagValue, opts ...EncodeOption) []byte {
	cfg := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	content := make([]byte, 0, EncodedLen(records)-KeyLength-lengthOfLength(0))
	for _, r := range records {
		content = EncodeTagValue(content, r.Tag, r.Value)
	}

	dst := make([]byte, 0, EncodedGlobalLen(len(content)))
	dst = append(dst, uasSchema.UniversalKey()[:]...)
	dst = appendLength(dst, len(content))
	dst = append(dst, content...)
	return dst
}

// EncodeUASDLSInto encodes records into dst, which must be at least
// EncodedLen(records) bytes long, and returns the number of bytes written.
func EncodeUASDLSInto(dst []byte, records []TagValue) (int, error) {
	need := EncodedLen(records)
	if len(dst) < need {
		return 0, errBufferTooShort("destination buffer shorter than EncodedLen(records)")
	}

	n := copy(dst, uasSchema.UniversalKey()[:])
	content := make([]byte, 0, need-KeyLength)
	for _, r := range records {
		content = EncodeTagValue(content, r.Tag, r.Value)
	}
	header := appendLength(nil, len(content))
	n += copy(dst[n:], header)
	n += copy(dst[n:], content)
	return n, nil
}
