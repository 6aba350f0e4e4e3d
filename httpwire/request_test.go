package httpwire

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadRequestLine(t *testing.T) {
	req, err := ReadRequestLine(reader("POST /api/interpreter HTTP/1.1\r\nHost: localhost\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.RawLine != "POST /api/interpreter HTTP/1.1" {
		t.Errorf("expected raw line preserved, got %q", req.RawLine)
	}
	if req.Method != "POST" || req.Path != "/api/interpreter" || req.Proto != "HTTP/1.1" {
		t.Errorf("unexpected parse: %q %q %q", req.Method, req.Path, req.Proto)
	}
}

func TestReadRequestLineEmptyStream(t *testing.T) {
	_, err := ReadRequestLine(reader(""))
	if err == nil {
		t.Fatal("expected error for empty stream")
	}
	var re *ReadError
	if !errors.As(err, &re) {
		t.Errorf("expected *ReadError, got %T", err)
	}
}

func TestReadRequestLinePartialAtEOF(t *testing.T) {
	// A line with data but no newline still parses.
	req, err := ReadRequestLine(reader("GET / HTTP/1.1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != "GET" || req.Path != "/" {
		t.Errorf("unexpected parse: %q %q", req.Method, req.Path)
	}
}

func TestReadHeaders(t *testing.T) {
	req := &Request{Headers: make(map[string]string)}
	err := req.ReadHeaders(reader("Content-Length: 12\r\nHost: localhost\r\n\r\nbody"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Headers["content-length"] != "12" {
		t.Errorf("expected content-length 12, got %q", req.Headers["content-length"])
	}
	if req.Headers["host"] != "localhost" {
		t.Errorf("expected host localhost, got %q", req.Headers["host"])
	}
	if req.ContentLength() != 12 {
		t.Errorf("expected length 12, got %d", req.ContentLength())
	}
}

func TestReadHeadersCaseInsensitive(t *testing.T) {
	req := &Request{Headers: make(map[string]string)}
	if err := req.ReadHeaders(reader("CONTENT-LENGTH: 7\r\n\r\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentLength() != 7 {
		t.Errorf("expected length 7, got %d", req.ContentLength())
	}
}

func TestReadHeadersDuplicateLastWins(t *testing.T) {
	req := &Request{Headers: make(map[string]string)}
	if err := req.ReadHeaders(reader("Content-Length: 5\r\nContent-Length: 9\r\n\r\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ContentLength() != 9 {
		t.Errorf("expected last value 9, got %d", req.ContentLength())
	}
}

func TestContentLengthUnparsable(t *testing.T) {
	for _, v := range []string{"abc", "-5", "1.5", ""} {
		req := &Request{Headers: map[string]string{"content-length": v}}
		if got := req.ContentLength(); got != 0 {
			t.Errorf("value %q: expected 0, got %d", v, got)
		}
	}
}

func TestReadHeadersUnterminated(t *testing.T) {
	req := &Request{Headers: make(map[string]string)}
	err := req.ReadHeaders(reader("Content-Length: 5\r\n"))
	if err == nil {
		t.Fatal("expected error for unterminated header block")
	}
	var re *ReadError
	if !errors.As(err, &re) {
		t.Errorf("expected *ReadError, got %T", err)
	}
}

func TestReadBodyExact(t *testing.T) {
	req := &Request{}
	if err := req.ReadBody(reader("hello, world"), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(req.Body) != "hello" {
		t.Errorf("expected %q, got %q", "hello", req.Body)
	}
}

func TestReadBodyShort(t *testing.T) {
	req := &Request{}
	err := req.ReadBody(reader("hi"), 10)
	if err == nil {
		t.Fatal("expected error for short body")
	}
	var re *ReadError
	if !errors.As(err, &re) {
		t.Errorf("expected *ReadError, got %T", err)
	}
}

func TestBodyTextLossyDecode(t *testing.T) {
	req := &Request{Body: []byte{'o', 'k', 0xff, '!'}}
	got := req.BodyText()
	if got != "ok�!" {
		t.Errorf("expected replacement char, got %q", got)
	}
}
