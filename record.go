package klv

import "io"

// shortRecordHeaderLength is the number of octets preceding a ShortRecord's
// content: one tag octet and one literal (non-BER) length octet.
const shortRecordHeaderLength = 2

// ShortRecord is a borrowed view over one inner KLV record within a
// GlobalContainer's content: a single tag octet, a single literal length
// octet, and that many content octets. Unlike the outer container, the
// length octet here is a plain byte value, never BER-encoded.
type ShortRecord struct {
	Tag     byte
	content []byte
}

// Length reports the declared content length of the record.
func (r ShortRecord) Length() int { return len(r.content) }

// Content returns the record's content slice, borrowed from the buffer the
// record was read from.
func (r ShortRecord) Content() []byte { return r.content }

// RecordIterator walks concatenated ShortRecords inside a content buffer,
// in the style of the teacher's DataElementIterator: repeated calls to Next
// return io.EOF once the buffer is exhausted.
type RecordIterator struct {
	buf       []byte
	cursor    int
	truncated bool
}

// NewRecordIterator returns an iterator over buf starting at its first byte.
func NewRecordIterator(buf []byte) *RecordIterator {
	return &RecordIterator{buf: buf}
}

// Truncated reports whether iteration stopped early because a record's
// header or declared length ran past the end of the buffer, as opposed to
// cleanly exhausting the buffer on a record boundary.
func (it *RecordIterator) Truncated() bool { return it.truncated }

// Next returns the next ShortRecord in the buffer. It returns io.EOF once
// the cursor reaches the end of the buffer. If a record's declared length
// would run past the end of the buffer, Next truncates iteration silently:
// it returns io.EOF without yielding a partial record, and Truncated
// reports true from then on (see design notes on iterator truncation
// tolerance).
func (it *RecordIterator) Next() (ShortRecord, error) {
	if it.cursor >= len(it.buf) {
		return ShortRecord{}, io.EOF
	}
	if it.cursor+1 >= len(it.buf) {
		it.truncated = true
		it.cursor = len(it.buf)
		return ShortRecord{}, io.EOF
	}

	tag := it.buf[it.cursor]
	length := int(it.buf[it.cursor+1])
	start := it.cursor + shortRecordHeaderLength
	end := start + length
	if end > len(it.buf) {
		it.truncated = true
		it.cursor = len(it.buf)
		return ShortRecord{}, io.EOF
	}

	it.cursor = end
	return ShortRecord{Tag: tag, content: it.buf[start:end]}, nil
}

// AppendShortRecord appends tag, a literal length octet for len(content),
// and content itself to dst, returning the extended slice. length must fit
// in a single byte (ST 0601 short-form records never exceed 255 octets of
// content); AppendShortRecord panics when content is longer than that,
// which is the same contract the reference implementation
// enforces at encode time.
func AppendShortRecord(dst []byte, tag byte, content []byte) []byte {
	if len(content) > 0xFF {
		panic("klv: short record content exceeds 255 bytes")
	}
	dst = append(dst, tag, byte(len(content)))
	return append(dst, content...)
}
