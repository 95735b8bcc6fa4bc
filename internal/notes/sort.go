package notes

import "sort"

// SortNewestFirst returns a copy of ns ordered by timestamp, newest first.
// Notes with equal timestamps keep their original relative order.
func SortNewestFirst(ns []Note) []Note {
	sorted := make([]Note, len(ns))
	copy(sorted, ns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// IndexOf returns the position of the note with the given id, or -1.
func IndexOf(ns []Note, id ID) int {
	for i, n := range ns {
		if n.ID == id {
			return i
		}
	}
	return -1
}
