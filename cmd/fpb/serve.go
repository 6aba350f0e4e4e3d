package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flurion/fpb/runner"
	"github.com/flurion/fpb/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the loopback bridge server",
	Long: `Start the HTTP bridge on the loopback interface.

Endpoints:
  GET  /                 Static status page
  POST /api/interpreter  Execute {"command": "<code>"} and return its output`,
	Run: runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("port", "p", 6914, "Port to listen on (loopback only)")
	cmd.Flags().Int("workers", 1, "Concurrent connection workers")
	addRunnerFlags(cmd)
}

func addRunnerFlags(cmd *cobra.Command) {
	cmd.Flags().String("interpreter", "python", "Interpreter binary")
	cmd.Flags().String("scratch-dir", "", "Scratch directory for script files (default: $TMPDIR/fpb)")
	cmd.Flags().Duration("exec-timeout", 30*time.Second, "Execution timeout (0 disables)")
}

func buildRunner(cmd *cobra.Command) *runner.Runner {
	interpreter, _ := cmd.Flags().GetString("interpreter")
	scratchDir, _ := cmd.Flags().GetString("scratch-dir")
	timeout, _ := cmd.Flags().GetDuration("exec-timeout")

	opts := []runner.Option{
		runner.WithInterpreter(interpreter),
		runner.WithTimeout(timeout),
	}
	if scratchDir != "" {
		opts = append(opts, runner.WithScratchDir(scratchDir))
	}
	return runner.New(opts...)
}

func runServe(cmd *cobra.Command, args []string) {
	setupLogging(cmd)

	port, _ := cmd.Flags().GetInt("port")
	workers, _ := cmd.Flags().GetInt("workers")

	srv := server.New(fmt.Sprintf("127.0.0.1:%d", port), workers, buildRunner(cmd))
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
