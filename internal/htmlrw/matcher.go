package htmlrw

import "regexp"

// Match is one regex match: the whole-match span plus one span per
// capturing group, in pattern order.
type Match struct {
	Whole  Span
	Groups []Span
}

// Group returns the span of capture group n, numbered from 1 as in the
// pattern. Out-of-range groups are absent.
func (m Match) Group(n int) Span {
	if n < 1 || n > len(m.Groups) {
		return noSpan
	}
	return m.Groups[n-1]
}

// FindAll returns every match of re in text, left to right and
// non-overlapping. Capture groups that did not participate in a match are
// reported as absent spans, not empty ones. No matches yields nil.
//
// Go's regexp is RE2: matching is linear in the input, so adversarial
// '<'-heavy documents cannot trigger catastrophic backtracking.
func FindAll(re *regexp.Regexp, text string) []Match {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return nil
	}
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		m := Match{Whole: Span{loc[0], loc[1]}}
		if n := len(loc)/2 - 1; n > 0 {
			m.Groups = make([]Span, n)
			for g := 1; g <= n; g++ {
				if loc[2*g] < 0 {
					m.Groups[g-1] = noSpan
				} else {
					m.Groups[g-1] = Span{loc[2*g], loc[2*g+1]}
				}
			}
		}
		matches[i] = m
	}
	return matches
}
