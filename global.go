package klv

import "io"

// KeyLength is the fixed size, in bytes, of a Universal Key fronting a
// Local Set.
const KeyLength = 16

// minimumGlobalLength is the smallest byte span that could possibly hold a
// Universal Key plus a (minimal, zero-content) BER length octet.
const minimumGlobalLength = KeyLength + 1 /*short-form length octet*/ + 0

// GlobalContainer is a borrowed view over a byte slice shaped as
// 16-byte key + BER length + content. It never copies or mutates buf;
// accessors re-slice into it.
type GlobalContainer struct {
	buf []byte
}

// ViewGlobal wraps buf without any length validation. Accessors on the
// returned GlobalContainer may panic if buf is shorter than the minimum
// required span; prefer TryViewGlobal when buf is not already known-good.
func ViewGlobal(buf []byte) GlobalContainer {
	return GlobalContainer{buf: buf}
}

// TryViewGlobal wraps buf, failing with BufferTooShort if buf is shorter
// than the 16-byte key plus a minimal length octet.
func TryViewGlobal(buf []byte) (GlobalContainer, error) {
	if len(buf) < minimumGlobalLength {
		return GlobalContainer{}, errBufferTooShort("global container requires at least 17 bytes")
	}
	return GlobalContainer{buf: buf}, nil
}

// Key returns the 16-byte Universal Key slice.
func (g GlobalContainer) Key() []byte {
	return g.buf[:KeyLength]
}

// KeyEquals reports whether the container's key matches expected exactly.
func (g GlobalContainer) KeyEquals(expected [KeyLength]byte) bool {
	key := g.Key()
	for i := range expected {
		if key[i] != expected[i] {
			return false
		}
	}
	return true
}

// contentRange decodes the BER length at buf[16:] and returns the
// [start,end) byte range of the content within buf. It reports an error if
// the length form is indefinite, reserved, or an unsupported long-form
// octet count, or if the declared content length runs past buf.
func (g GlobalContainer) contentRange() (start, end int, err error) {
	contentLen, headerLen, err := decodeLength(g.buf[KeyLength:])
	if err != nil {
		return 0, 0, err
	}
	start = KeyLength + headerLen
	end = start + contentLen
	if end > len(g.buf) {
		return 0, 0, errBufferTooShort("declared content length exceeds buffer")
	}
	return start, end, nil
}

// Content returns the content sub-slice of buf. If the length octets are
// indefinite, reserved, unsupported, or declare more content than buf
// holds, Content returns nil; use TryContent to observe the error.
func (g GlobalContainer) Content() []byte {
	start, end, err := g.contentRange()
	if err != nil {
		return nil
	}
	return g.buf[start:end]
}

// TryContent is Content but propagates the classification/bounds error
// instead of masking it behind an empty slice.
func (g GlobalContainer) TryContent() ([]byte, error) {
	start, end, err := g.contentRange()
	if err != nil {
		return nil, err
	}
	return g.buf[start:end], nil
}

// WriteGlobal writes key, followed by the BER length of content, followed
// by content itself, to w. It returns the total number of bytes written.
func WriteGlobal(w io.Writer, key [KeyLength]byte, content []byte) (int, error) {
	header := make([]byte, 0, KeyLength+lengthOfLength(len(content)))
	header = append(header, key[:]...)
	header = appendLength(header, len(content))

	n, err := w.Write(header)
	if err != nil {
		return n, errWriteFailed(err)
	}
	m, err := w.Write(content)
	total := n + m
	if err != nil {
		return total, errWriteFailed(err)
	}
	return total, nil
}

// EncodedGlobalLen returns the exact byte length WriteGlobal would produce
// for the given content length, useful for pre-sizing a destination buffer.
func EncodedGlobalLen(contentLen int) int {
	return KeyLength + lengthOfLength(contentLen) + contentLen
}
