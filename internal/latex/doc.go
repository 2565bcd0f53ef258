// Package latex converts LaTeX math markup to readable plain text.
//
// The wiki serves formulas as images whose alt attribute holds the LaTeX
// source. The converter renders that source as terminal-friendly text:
// fractions become a/b, known commands map to unicode symbols, wrapper
// commands are unwrapped, and anything unrecognized is dropped rather than
// reported. Conversion is best-effort and never fails.
package latex
