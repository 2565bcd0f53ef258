// Package fetch retrieves and parses AoPS wiki pages over HTTP.
//
// The fetch package wraps plain GETs with the concerns the extraction layer
// must not know about: request timeouts, a rotating or fixed User-Agent
// header, optional exponential-backoff retries for transient failures, and a
// short-lived cache of parsed documents so the same problem page is not
// refetched between listing its sections and extracting one. Failures surface
// as *NetworkError so callers can tell a fetch failure from a page whose
// structure was not recognized.
package fetch
