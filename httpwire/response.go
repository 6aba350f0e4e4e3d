package httpwire

import (
	"fmt"
	"io"
	"strings"
)

// doctypeMarker decides whether a 200 body is served as HTML.
const doctypeMarker = "<!DOCTYPE html"

// StatusText returns the reason phrase for the status codes the helper
// emits. Unknown codes fall back to the 400 phrase.
func StatusText(status int) string {
	switch status {
	case 200:
		return "OK"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	default:
		return "Bad Request"
	}
}

// ContentType picks text/html only for a 200 response carrying an HTML
// document; everything else is plain text.
func ContentType(status int, body string) string {
	if status == 200 && strings.Contains(body, doctypeMarker) {
		return "text/html"
	}
	return "text/plain"
}

// WriteResponse writes a complete response to w: status line, Content-Length,
// Content-Type, a blank line, then the body. The emitted Content-Length is
// always the byte length of the body that follows it. A write failure is
// returned as-is; there is no retry.
func WriteResponse(w io.Writer, status int, body string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", status, StatusText(status))
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	fmt.Fprintf(&b, "Content-Type: %s\r\n", ContentType(status, body))
	b.WriteString("\r\n")
	b.WriteString(body)

	_, err := io.WriteString(w, b.String())
	return err
}
