// Package words owns whitespace tokenization of captured tool output.
//
// Ownership boundary:
// - lazy token iteration over a captured string
// - cursor bookkeeping; no materialized token slices
package words
