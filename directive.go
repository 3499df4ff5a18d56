package acceptencoding

import (
	"math"
	"strconv"
	"strings"
)

// Directive is one parsed Accept-Encoding entry: a recognized content-coding
// (or the wildcard) together with its quality value in [0.0, 1.0].
type Directive struct {
	Encoding Encoding
	Quality  float64
}

// Quality values within this distance of 1.0 count as an exact top
// preference and short-circuit selection.
const qualityTolerance = 0.01

func isTopQuality(quality float64) bool {
	return math.Abs(quality-1.0) < qualityTolerance
}

// parseDirectives scans one header occurrence, appending to directives.
// Empty segments and unrecognized tokens are dropped; a recognized token
// with a malformed or out-of-range quality value aborts the whole scan.
func parseDirectives(value string, directives []Directive) ([]Directive, error) {
	for _, segment := range strings.Split(value, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		token, qvalue, hasQuality := strings.Cut(segment, ";q=")
		enc, err := ParseEncoding(token)
		if err != nil {
			// Anything outside the recognized set, including tokens
			// carrying ";"-extensions other than q, contributes nothing.
			continue
		}

		quality := 1.0
		if hasQuality {
			quality, err = strconv.ParseFloat(qvalue, 64)
			if err != nil {
				return nil, NewParseError(KindInvalidEncoding,
					"malformed quality value %q: %s", qvalue, err)
			}
			if quality < 0.0 || quality > 1.0 {
				return nil, NewParseError(KindInvalidEncoding,
					"quality value %q out of range", qvalue)
			}
		}

		directives = append(directives, Directive{Encoding: enc, Quality: quality})
	}
	return directives, nil
}
