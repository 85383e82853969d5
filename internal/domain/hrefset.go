package domain

// HrefSet is the unordered, unique collection of raw href values found on a page.
type HrefSet map[string]struct{}

// NewHrefSet builds a set from the given hrefs, dropping repeats.
func NewHrefSet(hrefs ...string) HrefSet {
	s := make(HrefSet, len(hrefs))
	for _, h := range hrefs {
		s.Add(h)
	}
	return s
}

// Add inserts href into the set.
func (s HrefSet) Add(href string) {
	s[href] = struct{}{}
}

// Len returns the number of unique hrefs.
func (s HrefSet) Len() int {
	return len(s)
}

// Slice returns the hrefs in no particular order.
func (s HrefSet) Slice() []string {
	out := make([]string, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	return out
}
