package klv

import "fmt"

// Kind classifies the way a decode or encode operation failed.
type Kind int

const (
	// BufferTooShort indicates a read would extend past the slice end.
	BufferTooShort Kind = iota
	// UnsupportedLength indicates a BER length used indefinite, reserved,
	// or an unsupported long-form octet count.
	UnsupportedLength
	// UnexpectedLength indicates a fixed-width tag arrived with a
	// non-matching length.
	UnexpectedLength
	// UnknownTag indicates a dataset byte has no enum mapping.
	UnknownTag
	// Encoding indicates a UTF-8, character, or numeric conversion failed.
	Encoding
	// InvalidKey indicates a Universal Key mismatch or a malformed tag
	// rename.
	InvalidKey
	// DuplicateTag indicates two fields declared the same numeric rename.
	DuplicateTag
	// MissingField indicates a required field was absent on decode.
	MissingField
	// TrailingBytes indicates the cursor did not reach the declared
	// content end.
	TrailingBytes
	// WriteFailed indicates the destination writer returned short or
	// errored.
	WriteFailed
)

func (k Kind) String() string {
	switch k {
	case BufferTooShort:
		return "BufferTooShort"
	case UnsupportedLength:
		return "UnsupportedLength"
	case UnexpectedLength:
		return "UnexpectedLength"
	case UnknownTag:
		return "UnknownTag"
	case Encoding:
		return "Encoding"
	case InvalidKey:
		return "InvalidKey"
	case DuplicateTag:
		return "DuplicateTag"
	case MissingField:
		return "MissingField"
	case TrailingBytes:
		return "TrailingBytes"
	case WriteFailed:
		return "WriteFailed"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by this package's decode and
// encode paths. It carries enough context (tag byte, expected vs. observed
// lengths) to diagnose a malformed frame without parsing a message string.
type Error struct {
	Kind     Kind
	Message  string
	Tag      int // -1 when not applicable
	Expected int // -1 when not applicable
	Got      int // -1 when not applicable
	err      error
}

func (e *Error) Error() string {
	switch {
	case e.Tag >= 0 && e.Expected >= 0:
		return fmt.Sprintf("klv: %s: tag %d: expected %d, got %d: %s", e.Kind, e.Tag, e.Expected, e.Got, e.Message)
	case e.Tag >= 0:
		return fmt.Sprintf("klv: %s: tag %d: %s", e.Kind, e.Tag, e.Message)
	default:
		return fmt.Sprintf("klv: %s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same Kind, letting callers write
// errors.Is(err, klv.ErrKind(klv.UnknownTag)).
func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && k.Kind == e.Kind
}

type kindSentinel struct{ Kind Kind }

func (k kindSentinel) Error() string { return k.Kind.String() }

// ErrKind returns a sentinel error usable with errors.Is to test a *Error's
// Kind without a type assertion.
func ErrKind(k Kind) error { return kindSentinel{k} }

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Tag: -1, Expected: -1, Got: -1}
}

func errBufferTooShort(msg string) *Error { return newErr(BufferTooShort, msg) }

func errUnsupportedLength(msg string) *Error { return newErr(UnsupportedLength, msg) }

func errUnexpectedLength(tag, want, got int) *Error {
	return &Error{Kind: UnexpectedLength, Message: "fixed-width tag length mismatch", Tag: tag, Expected: want, Got: got}
}

func errUnknownTag(tag int) *Error {
	return &Error{Kind: UnknownTag, Message: "tag has no schema mapping", Tag: tag, Expected: -1, Got: -1}
}

func errEncoding(msg string) *Error { return newErr(Encoding, msg) }

func errInvalidKey(msg string) *Error { return newErr(InvalidKey, msg) }

func errDuplicateTag(tag int) *Error {
	return &Error{Kind: DuplicateTag, Message: "tag rename already used by another field", Tag: tag, Expected: -1, Got: -1}
}

func errMissingField(tag int) *Error {
	return &Error{Kind: MissingField, Message: "required field absent on decode", Tag: tag, Expected: -1, Got: -1}
}

func errTrailingBytes(remaining int) *Error {
	return &Error{Kind: TrailingBytes, Message: "cursor did not reach declared content end", Tag: -1, Expected: 0, Got: remaining}
}

func errWriteFailed(err error) *Error {
	e := newErr(WriteFailed, "destination writer returned an error")
	e.err = err
	return e
}
