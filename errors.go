package llvmconf

import "fmt"

// Every query returns exactly one of the three error types below (or nil).
// Callers discriminate with errors.As, never by matching message text.

// DecodeError reports llvm-config output that was not valid UTF-8.
type DecodeError struct {
	Raw []byte // captured stdout, untouched
	Pos int    // byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("llvmconf: output is not valid UTF-8 (invalid byte at offset %d)", e.Pos)
}

// InvokeError reports that llvm-config could not be started at all.
type InvokeError struct {
	Err error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("llvmconf: unable to invoke llvm-config, is it installed and on your PATH? (%v)", e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }

// ExitError reports a run that completed with a failure status. Output holds
// everything the run captured so callers can surface stderr or the code.
type ExitError struct {
	Output Output
}

func (e *ExitError) Error() string {
	if e.Output.ExitCode < 0 {
		return "llvmconf: llvm-config ran unsuccessfully"
	}
	return fmt.Sprintf("llvmconf: llvm-config ran unsuccessfully with exit code %d", e.Output.ExitCode)
}
