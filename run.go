package llvmconf

import (
	"bytes"
	"errors"
	"os/exec"
)

// command is the fixed executable name, resolved via PATH.
const command = "llvm-config"

// Output records one completed llvm-config run. Stderr is never decoded but
// is kept so callers can show it when a run fails.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int // negative when the process was killed by a signal
}

// Success reports whether the run exited with status zero.
func (o Output) Success() bool { return o.ExitCode == 0 }

// run launches llvm-config with args passed through verbatim (no shell, no
// re-splitting), no stdin attached, and waits for it to finish. A process
// that cannot start yields *InvokeError; one that exits unsuccessfully
// yields *ExitError carrying everything the run captured.
func run(args ...string) (Output, error) {
	cmd := exec.Command(command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return Output{}, &InvokeError{Err: err}
	}
	out.ExitCode = exitErr.ExitCode()
	return Output{}, &ExitError{Output: out}
}
