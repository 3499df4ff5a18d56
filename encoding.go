package acceptencoding

// Encoding represents a content-coding token from an Accept-Encoding header.
//
// The concrete values are based on the IANA HTTP Content-Coding registry.
//
// Reference: https://www.iana.org/assignments/http-parameters/http-parameters.xhtml
type Encoding string

const (
	// EncodingNone means no preference was expressed: the header was absent
	// or contained no usable directive.
	EncodingNone Encoding = ""

	EncodingGzip     Encoding = "gzip"
	EncodingDeflate  Encoding = "deflate"
	EncodingBrotli   Encoding = "br"
	EncodingZstd     Encoding = "zstd"
	EncodingIdentity Encoding = "identity"

	// EncodingAny is the "*" wildcard. It matches any encoding not otherwise
	// listed in the header and is never a valid Content-Encoding value on
	// its own.
	EncodingAny Encoding = "*"
)

// ParseEncoding maps a single content-coding token to its Encoding.
// The match is exact and case-sensitive. Unlike the header-wide scan,
// an unrecognized token here is a hard ErrUnknownEncoding failure.
func ParseEncoding(token string) (Encoding, error) {
	switch enc := Encoding(token); enc {
	case EncodingGzip, EncodingDeflate, EncodingBrotli,
		EncodingZstd, EncodingIdentity, EncodingAny:
		return enc, nil
	}
	return EncodingNone, NewParseError(KindUnknownEncoding, "unrecognized token %q", token)
}

// IsValid checks if the Encoding is one of the recognized header tokens,
// including the wildcard.
func (enc Encoding) IsValid() bool {
	return enc == EncodingGzip ||
		enc == EncodingDeflate ||
		enc == EncodingBrotli ||
		enc == EncodingZstd ||
		enc == EncodingIdentity ||
		enc == EncodingAny
}

// String returns the canonical header token for the Encoding, which is also
// the value to write into Content-Encoding. EncodingAny and EncodingNone
// have no Content-Encoding form; callers must special-case them before
// serializing.
func (enc Encoding) String() string {
	return string(enc)
}

// IsGzip checks if the encoding is gzip.
func (enc Encoding) IsGzip() bool { return enc == EncodingGzip }

// IsDeflate checks if the encoding is deflate.
func (enc Encoding) IsDeflate() bool { return enc == EncodingDeflate }

// IsBrotli checks if the encoding is brotli.
func (enc Encoding) IsBrotli() bool { return enc == EncodingBrotli }

// IsZstd checks if the encoding is zstandard.
func (enc Encoding) IsZstd() bool { return enc == EncodingZstd }

// IsIdentity checks if the encoding is identity, i.e. no compression.
func (enc Encoding) IsIdentity() bool { return enc == EncodingIdentity }

// IsAny checks if the encoding is the "*" wildcard.
func (enc Encoding) IsAny() bool { return enc == EncodingAny }

// IsNone checks if no preference was expressed.
func (enc Encoding) IsNone() bool { return enc == EncodingNone }
