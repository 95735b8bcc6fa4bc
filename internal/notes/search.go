package notes

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

type searchSource []Note

func (s searchSource) String(i int) string {
	return s[i].Title + " " + strings.ReplaceAll(s[i].Content, "\n", " ")
}

func (s searchSource) Len() int {
	return len(s)
}

// Filter returns the notes whose title or content fuzzy-matches query.
// Matches keep the order they had in ns. An empty query returns ns unchanged.
func Filter(ns []Note, query string) []Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return ns
	}

	matches := fuzzy.FindFrom(query, searchSource(ns))
	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		indexes = append(indexes, match.Index)
	}
	sort.Ints(indexes)

	filtered := make([]Note, 0, len(indexes))
	for _, i := range indexes {
		filtered = append(filtered, ns[i])
	}
	return filtered
}
