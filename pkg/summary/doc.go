// Package summary builds the check-answers page content: one row per
// question, each carrying a compiled template expression that formats the
// live answer (or a fallback) at render time. Like the field compiler, this
// package defers every value-dependent decision into emitted template
// source; the only runtime fact it consumes is which answer keys exist.
package summary
