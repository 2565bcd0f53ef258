// Package exam describes the AMC family of competitions hosted on the AoPS wiki.
//
// The exam package holds the registry of test types (AJHSME, AHSME, AMC 8/10/12
// variants, AIME and its post-2000 split) with the years each one ran, and
// constructs the deterministic wiki URLs for answer-key and per-problem pages.
package exam
