// Package payload extracts the command field from an interpreter request
// body.
//
// The accepted input is deliberately not JSON. After trimming surrounding
// whitespace the body must match:
//
//	'{' WS '"command":' VALUE '}'
//
// VALUE is everything after the first ':' inside the braces, trimmed. A
// value wrapped in double quotes is returned with the quotes stripped and
// the interior untouched (no escape decoding); any other value is returned
// as the bare trimmed token. Nested objects, arrays, escaped quotes, and
// additional fields are unsupported by contract and will extract incorrectly
// or not at all.
package payload

import "strings"

const commandKey = `"command":`

// ExtractCommand returns the command value and whether one was found.
// Malformed input never fails; it reports ok == false.
func ExtractCommand(body string) (command string, ok bool) {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return "", false
	}

	inner := trimmed[1 : len(trimmed)-1]
	if !strings.HasPrefix(strings.TrimSpace(inner), commandKey) {
		return "", false
	}

	// The key check guarantees a colon exists.
	_, rest, _ := strings.Cut(inner, ":")
	value := strings.TrimSpace(rest)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1], true
	}
	return value, true
}
