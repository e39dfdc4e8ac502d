package httpc

import (
	"strings"

	"github.com/samber/lo"
)

// DecodeQuery parses a query string into key/value pairs. Pairs are
// separated by '&' or ';', keys and values by the first '='; both are
// percent-decoded. A key without '=' maps to the empty string.
func DecodeQuery(query string) (map[string]string, error) {
	result := make(map[string]string)

	tokens := strings.FieldsFunc(query, func(r rune) bool {
		return r == '&' || r == ';'
	})
	for _, token := range tokens {
		pair := strings.SplitN(token, "=", 2)
		key, err := PercentDecode(pair[0])
		if err != nil {
			return nil, err
		}
		if len(pair) == 2 {
			value, err := PercentDecode(pair[1])
			if err != nil {
				return nil, err
			}
			result[key] = value
		} else {
			result[key] = ""
		}
	}

	return result, nil
}

// EncodeQuery serializes query as percent-encoded k=v pairs joined by
// '&'. The '=' is omitted for empty values. Pair order follows map
// iteration order.
func EncodeQuery(query map[string]string) string {
	pairs := lo.MapToSlice(query, func(key, value string) string {
		if value == "" {
			return PercentEncode(key)
		}
		return PercentEncode(key) + "=" + PercentEncode(value)
	})
	return strings.Join(pairs, "&")
}
