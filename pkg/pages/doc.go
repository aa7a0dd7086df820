// Package pages assembles complete page template-source units from compiled
// fields and themed chrome: a start page, one page per question, the
// check-answers page, and the confirmation page. The same assembly serves
// the live in-app preview and the downloadable prototype copy.
package pages
