// Package errors provides structured, actionable error values for Lucent.
//
// Each error carries a stable code (e.g. "E001"), a category, a short
// message, and optionally a suggestion and a documentation link. Codes
// map to templates in the registry so that the same failure always
// surfaces with the same wording.
//
// Usage:
//
//	err := errors.New("E001").
//	    WithDetailf("no element matches selector %q", sel).
//	    WithSuggestion("mount into an element that exists in the document")
package errors
