package llvmconf

import (
	"strings"
	"unicode/utf8"

	"github.com/danmuck/llvmconf/words"
)

// stdout runs llvm-config and returns its stdout as text trimmed of
// surrounding whitespace. The first error anywhere wins; there is no retry
// and no fallback value.
func stdout(args ...string) (string, error) {
	out, err := run(args...)
	if err != nil {
		return "", err
	}
	text, err := decode(out.Stdout)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// stdoutWords runs llvm-config and returns a lazy scanner over the tokens of
// its stdout. No pre-trim is needed; the scanner skips boundary whitespace
// itself.
func stdoutWords(args ...string) (*words.Scanner, error) {
	out, err := run(args...)
	if err != nil {
		return nil, err
	}
	text, err := decode(out.Stdout)
	if err != nil {
		return nil, err
	}
	return words.New(text), nil
}

// decode validates raw as UTF-8, locating the first invalid sequence when it
// is not.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	pos := 0
	for pos < len(raw) {
		r, size := utf8.DecodeRune(raw[pos:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		pos += size
	}
	return "", &DecodeError{Raw: raw, Pos: pos}
}
