package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flurion/fpb/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fpb",
	Short: "Loopback bridge between the MinePy mod and a Python interpreter",
	Long: `fpb - Flurion's Python Bindings helper.

Runs a loopback HTTP bridge on port 6914. The MinePy mod POSTs
{"command": "<code>"} to /api/interpreter and receives the interpreter's
output as the response body.`,
	Run: runServe, // bare fpb behaves like fpb serve
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Verbosity flags mirror the original helper's CLI: the most verbose
	// flag set wins, default is warn.
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")
	rootCmd.PersistentFlags().Bool("info", false, "Log at info level")
	rootCmd.PersistentFlags().Bool("warn", false, "Log at warn level")
	rootCmd.PersistentFlags().Bool("error", false, "Log at error level")
	rootCmd.PersistentFlags().String("log-file", "", "Also log to a size-rotated file")

	// Serve flags on the root so bare fpb works like fpb serve.
	addServeFlags(rootCmd)
}

// logLevel resolves the verbosity flags to a level name.
func logLevel(cmd *cobra.Command) string {
	flags := cmd.Root().PersistentFlags()
	for _, level := range []string{"debug", "info", "error", "warn"} {
		if set, _ := flags.GetBool(level); set {
			return level
		}
	}
	return "warn"
}

func setupLogging(cmd *cobra.Command) {
	logFile, _ := cmd.Root().PersistentFlags().GetString("log-file")
	logging.Setup(logLevel(cmd), logFile)
}
