package acceptencoding

var (
	ErrInvalidEncoding = NewParseError(KindInvalidEncoding, "malformed value")
	ErrUnknownEncoding = NewParseError(KindUnknownEncoding, "unrecognized token")
)
