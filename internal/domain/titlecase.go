package domain

import (
	"regexp"
	"strings"
)

// Connective words kept lowercase in title case unless they open or close
// the name.
var titleLowercase = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "but": true,
	"or": true, "for": true, "nor": true, "as": true, "at": true,
	"by": true, "from": true, "in": true, "into": true, "near": true,
	"of": true, "on": true, "onto": true, "to": true, "with": true,
}

var titleSeparators = regexp.MustCompile(`([\s_-]+)`)

// titleCase converts a base name to title case, treating spaces, hyphens
// and underscores as word boundaries and keeping connective words
// lowercase in the interior of the name.
func titleCase(text string) string {
	if text == "" {
		return text
	}

	parts := titleSeparators.Split(text, -1)
	seps := titleSeparators.FindAllString(text, -1)

	var b strings.Builder
	for i, word := range parts {
		if word != "" {
			lower := strings.ToLower(word)
			if i == 0 || i == len(parts)-1 || !titleLowercase[lower] {
				b.WriteString(capitalize(word))
			} else {
				b.WriteString(lower)
			}
		}
		if i < len(seps) {
			b.WriteString(seps[i])
		}
	}
	return b.String()
}

// capitalize upper-cases the first letter of each apostrophe-separated
// segment, so "o'connor" becomes "O'Connor".
func capitalize(word string) string {
	segments := strings.Split(word, "'")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		segments[i] = strings.ToUpper(seg[:1]) + strings.ToLower(seg[1:])
	}
	return strings.Join(segments, "'")
}
