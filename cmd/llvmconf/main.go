package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/llvmconf"
	"github.com/danmuck/llvmconf/internal/logging"
)

// Exit codes mirror the failure origins: query failures come from
// llvm-config itself, config errors from this tool's own inputs.
const (
	exitOK          = 0
	exitQueryFailed = 1
	exitConfigError = 2
	exitCheckFailed = 3
)

// checkFailedError marks a completed toolchain check that found mismatches,
// so main can map it to its own exit code.
type checkFailedError struct {
	count int
}

func (e *checkFailedError) Error() string {
	return fmt.Sprintf("toolchain check failed with %d mismatch(es)", e.count)
}

func exitCode(err error) int {
	var checkErr *checkFailedError
	switch {
	case errors.As(err, &checkErr):
		return exitCheckFailed
	case isQueryError(err):
		return exitQueryFailed
	default:
		return exitConfigError
	}
}

// isQueryError reports whether err originates from the llvm-config query
// layer rather than from this tool's own flags, args, or manifest files.
func isQueryError(err error) bool {
	var (
		invokeErr *llvmconf.InvokeError
		exitErr   *llvmconf.ExitError
		decodeErr *llvmconf.DecodeError
	)
	return errors.As(err, &invokeErr) || errors.As(err, &exitErr) || errors.As(err, &decodeErr)
}

func main() {
	logging.ConfigureRuntime()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "llvmconf: %v\n", err)
		os.Exit(exitCode(err))
	}
}
