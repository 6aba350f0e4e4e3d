package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/flurion/fpb/httpwire"
	"github.com/flurion/fpb/payload"
	"github.com/flurion/fpb/runner"
)

// indexPage is served for GET /. The doctype marker is what flips the
// response to text/html.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Flurion's Python Bindings for MinePy mod</title>
</head>
<body>
    <h1>Helper is running.</h1>
</body>
</html>`

// handle drives one connection end to end. Every path writes exactly one
// response before the connection closes; the only exception is a response
// write that itself fails.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("connection accepted")

	r := bufio.NewReader(conn)
	req, err := httpwire.ReadRequestLine(r)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read request line")
		s.respond(conn, 500, "Internal Server Error")
		return
	}
	s.log.Debug().Str("line", req.RawLine).Msg("request line")

	switch {
	case strings.HasPrefix(req.RawLine, "GET / "):
		s.respond(conn, 200, indexPage)
	case strings.HasPrefix(req.RawLine, "POST /api/interpreter "):
		s.interpret(conn, r, req)
	default:
		s.log.Info().Str("line", req.RawLine).Msg("unrecognized request")
		s.respond(conn, 404, "Not Found")
	}
}

// interpret runs the header/body/extract/execute pipeline for
// POST /api/interpreter.
func (s *Server) interpret(conn net.Conn, r *bufio.Reader, req *httpwire.Request) {
	if err := req.ReadHeaders(r); err != nil {
		s.log.Error().Err(err).Msg("failed to read headers")
		s.respond(conn, 500, "Internal Server Error")
		return
	}

	n := req.ContentLength()
	if n == 0 {
		s.log.Info().Msg("missing body in request")
		s.respond(conn, 400, "Bad Request: Missing body")
		return
	}
	if err := req.ReadBody(r, n); err != nil {
		s.log.Error().Err(err).Msg("failed to read body")
		s.respond(conn, 500, "Internal Server Error")
		return
	}

	body := req.BodyText()
	s.log.Debug().Str("body", body).Msg("request body")

	command, ok := payload.ExtractCommand(body)
	if !ok {
		s.log.Info().Msg("no command in body")
		s.respond(conn, 400, "Bad Request: Invalid JSON")
		return
	}
	s.log.Debug().Str("command", command).Msg("extracted command")

	status, respBody := formatResult(s.Runner.Run(context.Background(), command))
	s.respond(conn, status, respBody)
}

// formatResult maps an execution result onto the wire contract. Interpreter
// stderr rides in a 200 body behind an "Error:" prefix; the mod tells
// success from failure by inspecting the body, not the status code.
func formatResult(res runner.Result) (int, string) {
	switch {
	case errors.Is(res.Err, runner.ErrScratch):
		return 500, "Internal Server Error"
	case res.Err != nil:
		// Launch failure or timeout: the error text is the body.
		return 500, res.Err.Error()
	case res.Stderr != "":
		return 200, fmt.Sprintf("Error: %s\nOutput: %s", res.Stderr, res.Stdout)
	default:
		return 200, res.Stdout
	}
}

func (s *Server) respond(conn net.Conn, status int, body string) {
	if err := httpwire.WriteResponse(conn, status, body); err != nil {
		s.log.Error().Err(err).Int("status", status).Msg("failed to write response")
		return
	}
	s.log.Debug().Int("status", status).Msg("response sent")
}
