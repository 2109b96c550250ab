package catalog

import (
	"sort"
	"strings"
)

// SearchExamples finds examples where every whitespace-separated query term
// appears, case-insensitively, somewhere in the example's id, title,
// description, or tags. Matching is literal substring, not ranked.
func (c *Catalog) SearchExamples(query string) *Result {
	terms := strings.Fields(strings.ToLower(query))

	var matches []ExampleDoc
	for _, d := range c.examples {
		if matchesAllTerms(d, terms) {
			matches = append(matches, d)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	return TextResult(renderSearchResults(query, matches))
}

func matchesAllTerms(d ExampleDoc, terms []string) bool {
	if len(terms) == 0 {
		return false
	}

	haystack := strings.ToLower(strings.Join([]string{
		d.ID,
		d.Title,
		d.Description,
		strings.Join(d.Tags, " "),
	}, " "))

	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
