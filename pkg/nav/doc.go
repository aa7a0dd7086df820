// Package nav resolves where a form submission routes next. Resolution is a
// pure function over the definition; the only per-session state in this
// package is the History back-link stack kept by the live preview.
package nav
