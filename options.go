package klv

import "golang.org/x/text/encoding"

// UnknownTagPolicy governs how DecodeUASDLS treats a wire tag byte with no
// schema mapping.
type UnknownTagPolicy int

const (
	// SkipUnknownTags drops unrecognized tags silently (default).
	SkipUnknownTags UnknownTagPolicy = iota
	// ErrorOnUnknownTags surfaces UnknownTag instead of skipping.
	ErrorOnUnknownTags
)

// TruncationPolicy governs how DecodeUASDLS treats a record whose declared
// length runs past the enclosing buffer.
type TruncationPolicy int

const (
	// TruncateSilently stops decoding at the truncation point without an
	// error, matching the reference iterator's tolerance (default).
	TruncateSilently TruncationPolicy = iota
	// ErrorOnTruncation surfaces BufferTooShort instead of stopping quietly.
	ErrorOnTruncation
)

type decodeOptions struct {
	unknownTag  UnknownTagPolicy
	truncation  TruncationPolicy
	textEncoder encoding.Encoding
}

func defaultDecodeOptions() decodeOptions {
	return decodeOptions{unknownTag: SkipUnknownTags, truncation: TruncateSilently}
}

// DecodeOption configures DecodeUASDLS, in the functional-options style the
// teacher uses for ParseOption. Unmarshal takes no options.
type DecodeOption func(*decodeOptions)

// WithUnknownTagPolicy selects how unrecognized wire tags are handled.
func WithUnknownTagPolicy(p UnknownTagPolicy) DecodeOption {
	return func(o *decodeOptions) { o.unknownTag = p }
}

// WithTruncationPolicy selects how a truncated trailing record is handled.
func WithTruncationPolicy(p TruncationPolicy) DecodeOption {
	return func(o *decodeOptions) { o.truncation = p }
}

// WithTextEncoding routes String-kind tag bodies through enc before UTF-8
// validation, for tolerant interop with non-conformant encoders. ST 0601
// itself mandates UTF-8; this is an escape hatch, not the default path.
func WithTextEncoding(enc encoding.Encoding) DecodeOption {
	return func(o *decodeOptions) { o.textEncoder = enc }
}

type encodeOptions struct {
	strictLengths bool
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{strictLengths: true}
}

// EncodeOption is accepted by EncodeUASDLS. Marshal takes no options.
type EncodeOption func(*encodeOptions)

// WithStrictLengths records whether fixed-width tags must match their
// schema-declared width exactly. Defaults to true. EncodeUASDLS does not
// check value widths against the schema, so the setting does not change
// its output.
func WithStrictLengths(strict bool) EncodeOption {
	return func(o *encodeOptions) { o.strictLengths = strict }
}

// decodeStringPayload applies opts.textEncoder (if set) before validating
// payload as UTF-8.
func decodeStringPayload(payload []byte, opts decodeOptions) (Value, error) {
	if opts.textEncoder == nil {
		return decodeString(payload)
	}
	decoded, err := opts.textEncoder.NewDecoder().Bytes(payload)
	if err != nil {
		return Value{}, errEncoding("text-encoding conversion failed: " + err.Error())
	}
	return decodeString(decoded)
}
