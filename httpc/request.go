package httpc

import (
	"strconv"
	"strings"
)

// Request is an HTTP request as seen by this package. Header keys are
// case-sensitive strings; insertion order is irrelevant.
type Request struct {
	Method  string
	URL     URL
	Headers map[string]string
	Body    string
}

// Accepts reports whether the request's Accept-Encoding header allows
// the given content encoding. See RFC 2616, section 14.3 for the
// details.
func (r Request) Accepts(encoding string) bool {
	accepted, ok := r.Headers["Accept-Encoding"]
	if !ok {
		return false
	}

	// Remove spaces and tabs for easier parsing.
	accepted = strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(accepted)

	// From RFC 2616:
	// 1. If the content-coding is one of the content-codings listed in
	//    the Accept-Encoding field, then it is acceptable, unless it is
	//    accompanied by a qvalue of 0. (As defined in section 3.9, a
	//    qvalue of 0 means "not acceptable.")
	// 2. The special "*" symbol in an Accept-Encoding field matches any
	//    available content-coding not explicitly listed in the header
	//    field.

	// First we'll look for the encoding specified explicitly, then '*'.
	for _, candidate := range []string{encoding, "*"} {
		for _, field := range strings.Split(accepted, ",") {
			if field == "" || !strings.HasPrefix(field, candidate) {
				continue
			}
			// Is there a 0 q value? Ex: 'gzip;q=0.0'.
			q, found := qvalue(field)
			if !found {
				// No q value, or malformed q value.
				return true
			}
			// Is the q value > 0?
			value, err := strconv.ParseFloat(q, 64)
			return err == nil && value > 0
		}
	}

	// NOTE: rules 3 and 4 of the RFC are partially ignored since we can
	// only provide gzip.
	return false
}

// qvalue extracts the single "q" parameter of a field like
// "gzip;q=0.5". It reports found=false when there is no q parameter or
// when there are several.
func qvalue(field string) (string, bool) {
	var values []string
	for _, param := range strings.Split(field, ";") {
		kv := strings.SplitN(param, "=", 2)
		if len(kv) == 2 && kv[0] == "q" {
			values = append(values, kv[1])
		}
	}
	if len(values) != 1 {
		return "", false
	}
	return values[0], true
}
