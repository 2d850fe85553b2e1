// Package manifest checks a live LLVM installation against a pinned TOML
// manifest of expected toolchain facts.
//
// Ownership boundary:
// - manifest file loading and validation
// - snapshot comparison and mismatch reporting
package manifest
