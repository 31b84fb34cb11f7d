// File: pkg/bundle/sort.go
package bundle

import "sort"

// Sort returns files ordered by mode. The sort is stable, so ties keep their
// collection order. Keys compare byte-wise.
func Sort(files []FileEntry, mode SortMode) []FileEntry {
	sorted := append([]FileEntry(nil), files...)

	key := FileEntry.Name
	if mode == SortByType {
		key = FileEntry.Ext
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}
