package words

import (
	"unicode"
	"unicode/utf8"
)

// Scanner yields the whitespace-separated tokens of a string one at a time.
// It keeps a single cursor over the source and materializes no token before
// Scan asks for it. Once the source is exhausted the Scanner stays exhausted;
// build a new one to iterate again.
type Scanner struct {
	src   string
	pos   int
	token string
}

// New returns a Scanner positioned before the first token of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan advances to the next token, reporting whether one exists. Any run of
// whitespace acts as a single separator, so Scan never yields an empty token.
func (s *Scanner) Scan() bool {
	s.token = ""
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	if s.pos == len(s.src) {
		return false
	}
	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	s.token = s.src[start:s.pos]
	return true
}

// Text returns the token found by the last call to Scan. It returns the
// empty string before the first Scan and after exhaustion.
func (s *Scanner) Text() string {
	return s.token
}
