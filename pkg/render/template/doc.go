// Package template defines the renderer-agnostic template engine seam. The
// compiled pages and check-answers expressions are template source; anything
// satisfying TemplateRenderer can evaluate them against a live answer store.
package template
