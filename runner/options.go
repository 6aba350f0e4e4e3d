package runner

import (
	"os"
	"path/filepath"
	"time"
)

// Option configures a Runner.
type Option func(*config)

type config struct {
	interpreter string
	scratchDir  string
	timeout     time.Duration
}

func defaultConfig() config {
	return config{
		interpreter: "python",
		scratchDir:  filepath.Join(os.TempDir(), "fpb"),
		timeout:     30 * time.Second,
	}
}

// WithInterpreter sets the interpreter binary invoked on the scratch file.
func WithInterpreter(name string) Option {
	return func(c *config) {
		c.interpreter = name
	}
}

// WithScratchDir sets the directory scratch script files are created in.
// It is created on first use if absent.
func WithScratchDir(dir string) Option {
	return func(c *config) {
		c.scratchDir = dir
	}
}

// WithTimeout sets the maximum execution time. The interpreter process is
// killed when the bound expires. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}
