package nav

// History is the per-session stack of visited page paths used to compute
// back links in the live preview. It is scoped to one session and mutated
// only by the request handling that session, so it carries no locking.
type History struct {
	pages []string
}

// Visit records a page view. Revisiting the current page, e.g. a refresh or
// a validation redirect, does not grow the stack.
func (h *History) Visit(path string) {
	if n := len(h.pages); n > 0 && h.pages[n-1] == path {
		return
	}
	h.pages = append(h.pages, path)
}

// Current returns the most recently visited path, or "" for a fresh session.
func (h *History) Current() string {
	if len(h.pages) == 0 {
		return ""
	}
	return h.pages[len(h.pages)-1]
}

// BackLink returns the path behind the current page without mutating the
// stack, or "" when there is nowhere to go back to.
func (h *History) BackLink() string {
	if len(h.pages) < 2 {
		return ""
	}
	return h.pages[len(h.pages)-2]
}

// Back pops the current page and returns the newly-current path. It reports
// false when the stack had no previous page to return to.
func (h *History) Back() (string, bool) {
	if len(h.pages) < 2 {
		return "", false
	}
	h.pages = h.pages[:len(h.pages)-1]
	return h.pages[len(h.pages)-1], true
}

// Reset clears the stack, e.g. when the user restarts the form.
func (h *History) Reset() {
	h.pages = h.pages[:0]
}
