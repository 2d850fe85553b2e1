// Package llvmconf wraps invocation of the llvm-config tool so build tooling
// can query installation paths, compiler/linker flags, and component lists
// without re-implementing subprocess plumbing and output parsing at each
// call site.
//
// Ownership boundary:
// - llvm-config subprocess invocation and output capture
// - UTF-8 validation and whitespace trimming of captured stdout
// - the closed query error set (DecodeError, InvokeError, ExitError)
//
// Every query re-invokes the tool; nothing is cached and nothing is shared
// between calls, so concurrent callers need no coordination.
package llvmconf
