// Package countries provides the deterministic country and nationality
// option lists backing the country, nationality, and passport select
// controls. The data is loaded once from the embedded list under
// data/countries.txt, with the United Kingdom pinned first.
package countries
