package project

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestRatio bounds the edit distance, relative to the longer name,
// for a project name to be offered as a suggestion.
const maxSuggestRatio = 0.4

// Lister is implemented by lookups that can enumerate their project names.
type Lister interface {
	Names() []string
}

// Suggest returns the name in names closest to name, or "" when none is
// close enough. Names are compared case-insensitively with separators
// removed. The earliest of equally close names wins.
func Suggest(name string, names []string) string {
	want := normalizeName(name)
	if want == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, n := range names {
		have := normalizeName(n)
		dist := levenshtein.ComputeDistance(want, have)
		if float64(dist)/float64(max(len(want), len(have))) >= maxSuggestRatio {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = n, dist
		}
	}
	return best
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// suggestFrom offers a suggestion when projects can list its names.
func suggestFrom(name string, projects Lookup) string {
	l, ok := projects.(Lister)
	if !ok {
		return ""
	}
	return Suggest(name, l.Names())
}
