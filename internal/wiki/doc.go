// Package wiki extracts answer keys and solution write-ups from parsed AoPS
// wiki pages.
//
// The wiki's page template is the contract: answers live in an ordered list
// directly under the mw-parser-output container, solution sections are the
// top-level table-of-contents entries, and section bodies run from one h2
// heading to the next. Extraction fails closed when that shape is absent
// rather than guessing at alternatives. All extractors are pure functions
// over an already-fetched document: no I/O, no retained state.
package wiki
