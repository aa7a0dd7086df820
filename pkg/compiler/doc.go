// Package compiler turns questions into page fragments: GOV.UK-styled HTML
// with embedded template expressions that read the live answer store at
// render time. The compiler never sees answer values; everything
// answer-dependent is deferred into the emitted template source.
//
// Fragments also carry data-validate-* attributes. They are the single
// contract between the compiler, the browser validation runtime shipped in
// pkg/pages assets, and the server-side mirror in pkg/validate.
package compiler
