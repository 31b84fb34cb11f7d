// File: pkg/bundle/tree.go
package bundle

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
	isDir    bool
}

// RenderTree draws slash-separated relative paths as a tree rooted at ".".
// Directories come before files and entries are ordered case-insensitively.
func RenderTree(paths []string) []string {
	root := &treeNode{name: ".", isDir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		node := root
		parts := strings.Split(p, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			if i < len(parts)-1 {
				child.isDir = true
			}
			node = child
		}
	}

	lines := []string{"./"}
	return appendTree(lines, root, "")
}

func appendTree(lines []string, node *treeNode, prefix string) []string {
	entries := make([]*treeNode, 0, len(node.children))
	for _, c := range node.children {
		entries = append(entries, c)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		name := entry.name
		if entry.isDir {
			name += "/"
		}
		lines = append(lines, prefix+connector+name)
		if entry.isDir {
			lines = appendTree(lines, entry, prefix+extension)
		}
	}
	return lines
}
