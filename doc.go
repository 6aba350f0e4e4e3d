// Package fpb implements Flurion's Python Bindings helper: a loopback HTTP
// bridge between the MinePy game mod and an external Python interpreter.
//
// # Overview
//
// The helper listens on 127.0.0.1:6914 and speaks just enough HTTP/1.1 for
// the mod. GET / serves a static status page; POST /api/interpreter takes a
// body of the form {"command": "<code>"}, executes the code with the
// interpreter, and returns whatever the interpreter printed as the response
// body.
//
// # Basic Usage
//
//	run := runner.New()
//	srv := server.New(server.DefaultAddr, 1, run)
//	if err := srv.ListenAndServe(); err != nil {
//	    // bind or accept failure, both fatal
//	}
//
// # Customizing Execution
//
//	run := runner.New(
//	    runner.WithInterpreter("python3"),
//	    runner.WithTimeout(10*time.Second),
//	)
//
// See the [server], [runner], [payload], and [httpwire] packages for
// detailed API documentation.
package fpb
