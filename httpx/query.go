package httpx

//
// query.go - deterministic query-string encoding.
//

import (
	"fmt"
	"sort"
	"strings"
)

// queryReservedCharacters is the fixed set of reserved characters that
// is always percent-escaped in query keys and values, in addition to
// every character that is not legal in a URL.
const queryReservedCharacters = `:&=;+!@#$()',*`

// shouldEscape returns whether the given byte must be percent-escaped.
func shouldEscape(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return false
	}
	switch c {
	case '-', '.', '_', '~', '/', '?', '[', ']':
		return false
	}
	return true
}

// escape percent-escapes the given string for use inside a query
// string, escaping [queryReservedCharacters] and every byte that is
// not a legal URL character.
func escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteString(fmt.Sprintf("%%%02X", c))
	}
	return sb.String()
}

// queryComponent is a single key-value pair of the query string.
type queryComponent struct {
	key   string
	value string
}

// queryComponents flattens the given value into key-value pairs. A
// nested map produces `key[nested]` entries and a slice produces
// `key[]` entries; flattening supports one level of nesting, matching
// the observed use of the wire protocol, and deeper nesting is
// undefined behavior.
func queryComponents(key string, value any) []queryComponent {
	var components []queryComponent
	switch v := value.(type) {
	case map[string]any:
		for _, nestedKey := range sortedKeys(v) {
			components = append(components, queryComponents(
				fmt.Sprintf("%s[%s]", key, nestedKey), v[nestedKey])...)
		}
	case []any:
		for _, entry := range v {
			components = append(components, queryComponents(key+"[]", entry)...)
		}
	case []string:
		for _, entry := range v {
			components = append(components, queryComponents(key+"[]", entry)...)
		}
	default:
		components = append(components, queryComponent{
			key:   escape(key),
			value: escape(fmt.Sprintf("%v", value)),
		})
	}
	return components
}

// sortedKeys returns the keys of the given map sorted lexicographically.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// EncodeQuery encodes the given parameters into a query string. The
// encoding is deterministic: keys are visited in lexicographic order,
// so identical parameter maps always serialize to the same string
// regardless of insertion order.
func EncodeQuery(parameters map[string]any) string {
	var entries []string
	for _, key := range sortedKeys(parameters) {
		for _, component := range queryComponents(key, parameters[key]) {
			entries = append(entries, component.key+"="+component.value)
		}
	}
	return strings.Join(entries, "&")
}
