// Package cli implements the command-line interface for amc-answers.
//
// The cli package provides the Cobra-based CLI with an interactive mode
// (prompt for year, test type, question and solution section) and a one-shot
// mode driven by flags. It coordinates the exam, fetch, wiki and latex
// packages to turn a year and test type into printed answers and solutions.
package cli
