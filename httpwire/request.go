// Package httpwire implements the minimal HTTP/1.1 framing the helper speaks
// over a raw loopback socket: a request line, a header block, an optional
// Content-Length body, and a fixed-shape response.
package httpwire

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Request holds one parsed request. It lives for a single connection and is
// discarded when the connection closes.
type Request struct {
	// RawLine is the request line as received, with the trailing CRLF
	// stripped. Routing matches on it by prefix.
	RawLine string
	Method  string
	Path    string
	Proto   string
	// Headers maps lowercased header names to values. A repeated header
	// keeps the last value seen.
	Headers map[string]string
	Body    []byte
}

// ReadError wraps a socket read failure or premature EOF.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "read: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// ReadRequestLine reads the first line of a request and splits it into
// method, path, and protocol. A partial line terminated by EOF still counts
// as a line; a read that yields nothing does not.
func ReadRequestLine(r *bufio.Reader) (*Request, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return nil, &ReadError{Err: err}
	}

	req := &Request{
		RawLine: strings.TrimRight(line, "\r\n"),
		Headers: make(map[string]string),
	}

	fields := strings.Fields(req.RawLine)
	if len(fields) > 0 {
		req.Method = fields[0]
	}
	if len(fields) > 1 {
		req.Path = fields[1]
	}
	if len(fields) > 2 {
		req.Proto = fields[2]
	}
	return req, nil
}

// ReadHeaders consumes header lines until the blank line that ends the
// block. Lines without a colon are ignored.
func (req *Request) ReadHeaders(r *bufio.Reader) error {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return &ReadError{Err: err}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		req.Headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
}

// ContentLength returns the declared body length. A missing, negative, or
// unparsable header counts as zero; it never fails.
func (req *Request) ContentLength() int {
	v, ok := req.Headers["content-length"]
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return 0
	}
	return int(n)
}

// ReadBody reads exactly n body bytes. The caller treats n == 0 as a missing
// body and must not call ReadBody for it.
func (req *Request) ReadBody(r *bufio.Reader, n int) error {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return &ReadError{Err: err}
	}
	req.Body = buf
	return nil
}

// BodyText decodes the body as UTF-8, substituting U+FFFD for invalid
// sequences rather than failing on them.
func (req *Request) BodyText() string {
	return strings.ToValidUTF8(string(req.Body), "�")
}
