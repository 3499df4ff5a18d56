// Package acceptencoding interprets the HTTP Accept-Encoding request header:
// it parses the weighted content-coding directives and selects the client's
// preferred encoding following RFC 9110 quality-value semantics.
package acceptencoding

import (
	"golang.org/x/net/http/httpguts"
)

// HeaderName is the request header field this package interprets.
const HeaderName = "Accept-Encoding"

// Header is the package's view of a request header map: all values of a
// field, in order, with case-insensitive field-name matching handled by the
// implementation. net/http.Header satisfies it.
type Header interface {
	Values(name string) []string
}

// Parse selects the client's most preferred encoding from the
// Accept-Encoding header.
//
// An absent or empty header yields EncodingNone. The first directive whose
// quality is within 0.01 of 1.0 wins outright, so a client listing its top
// choice first beats any explicit preference appearing later. Otherwise the
// highest quality seen wins, earliest first. A winning "*" is reported as
// EncodingAny, meaning the client accepts anything not otherwise listed.
func Parse(header Header) (Encoding, error) {
	directives, err := Encodings(header)
	if err != nil {
		return EncodingNone, err
	}

	best := EncodingNone
	bestQuality := 0.0
	for _, directive := range directives {
		if isTopQuality(directive.Quality) {
			return directive.Encoding, nil
		}
		if directive.Quality > bestQuality {
			best = directive.Encoding
			bestQuality = directive.Quality
		}
	}
	return best, nil
}

// Encodings parses every occurrence of the Accept-Encoding header into the
// full weighted list, concatenated in encounter order and unsorted.
// Unrecognized tokens contribute nothing; an absent header yields an empty
// list. A malformed quality value fails the whole parse with
// ErrInvalidEncoding, without partial results.
func Encodings(header Header) ([]Directive, error) {
	var directives []Directive
	for _, value := range header.Values(HeaderName) {
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, NewParseError(KindInvalidEncoding, "unrepresentable header text")
		}

		var err error
		directives, err = parseDirectives(value, directives)
		if err != nil {
			return nil, err
		}
	}
	return directives, nil
}

// Negotiate picks the best encoding among those the server supports.
// A directive's quality weighs each supported offer it names; the "*"
// wildcard covers every offer the client did not list, and q=0 refuses one.
// Offers tied on quality resolve in argument order, so callers list their
// own preference first. An absent header yields the first offer, and
// EncodingNone means no offer is acceptable.
func Negotiate(header Header, supported ...Encoding) (Encoding, error) {
	if len(supported) == 0 {
		return EncodingNone, nil
	}
	if len(header.Values(HeaderName)) == 0 {
		return supported[0], nil
	}

	directives, err := Encodings(header)
	if err != nil {
		return EncodingNone, err
	}

	// First listing of a token wins over later repeats.
	weights := make(map[Encoding]float64, len(directives))
	for _, directive := range directives {
		if _, seen := weights[directive.Encoding]; !seen {
			weights[directive.Encoding] = directive.Quality
		}
	}
	wildcard, hasWildcard := weights[EncodingAny]

	best := EncodingNone
	bestQuality := 0.0
	for _, offer := range supported {
		if offer.IsAny() || offer.IsNone() {
			continue
		}
		quality, listed := weights[offer]
		if !listed && hasWildcard {
			quality = wildcard
		}
		if quality > bestQuality {
			best = offer
			bestQuality = quality
		}
	}
	return best, nil
}
