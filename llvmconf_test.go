package llvmconf_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/llvmconf"
	"github.com/danmuck/llvmconf/internal/testutil/testlog"
)

// stubTool installs a shell script named llvm-config on a private PATH so a
// test controls exactly what the tool prints and how it exits.
func stubTool(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool requires a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "llvm-config")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	t.Setenv("PATH", dir)
}

func TestWholeStringDecodeTrims(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `printf '  /usr/local  \n'`)

	got, err := llvmconf.Prefix()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local", got)
}

func TestTokenizedDecodeSkipsBoundaryWhitespace(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `printf '  -L/opt/llvm/lib\n -lLLVM-18  \n'`)

	sc, err := llvmconf.Libs()
	require.NoError(t, err)
	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	assert.Equal(t, []string{"-L/opt/llvm/lib", "-lLLVM-18"}, got)
}

func TestNonzeroExitKeepsCapturedOutput(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `echo partial
echo 'unknown option' >&2
exit 3`)

	_, err := llvmconf.Version()
	require.Error(t, err)

	var exitErr *llvmconf.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Output.ExitCode)
	assert.False(t, exitErr.Output.Success())
	assert.Contains(t, string(exitErr.Output.Stderr), "unknown option")
	assert.Contains(t, string(exitErr.Output.Stdout), "partial")
	assert.Contains(t, err.Error(), "exit code 3")
}

func TestMissingToolReportsInvokeError(t *testing.T) {
	testlog.Start(t)
	t.Setenv("PATH", t.TempDir())

	_, err := llvmconf.Components()
	require.Error(t, err)

	var invokeErr *llvmconf.InvokeError
	require.ErrorAs(t, err, &invokeErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), "PATH")
}

func TestInvalidUTF8ReportsDecodeError(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `printf 'ab\377cd'`)

	_, err := llvmconf.LibNames()
	require.Error(t, err)

	var decodeErr *llvmconf.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 2, decodeErr.Pos)
	assert.Equal(t, []byte("ab\xffcd"), decodeErr.Raw)
}

func TestSignalKilledRunOmitsExitCode(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `kill -KILL $$`)

	_, err := llvmconf.Version()
	require.Error(t, err)

	var exitErr *llvmconf.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Negative(t, exitErr.Output.ExitCode)
	assert.NotContains(t, err.Error(), "exit code")
}

func TestErrorSetIsDisjoint(t *testing.T) {
	testlog.Start(t)
	stubTool(t, `exit 1`)

	_, err := llvmconf.Prefix()
	require.Error(t, err)

	var invokeErr *llvmconf.InvokeError
	var decodeErr *llvmconf.DecodeError
	assert.False(t, errors.As(err, &invokeErr))
	assert.False(t, errors.As(err, &decodeErr))
}
