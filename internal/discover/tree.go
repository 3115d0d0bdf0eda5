package discover

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type TreeNode struct {
	Name     string
	Children []*TreeNode
	File     string // relative path for files, empty for directories
}

func BuildTree(paths []string) *TreeNode {
	root := &TreeNode{Name: "."}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		cur := root
		for i, part := range parts {
			if i == len(parts)-1 {
				cur.Children = append(cur.Children, &TreeNode{Name: part, File: p})
				break
			}
			var next *TreeNode
			for _, ch := range cur.Children {
				if ch.Name == part && ch.File == "" {
					next = ch
					break
				}
			}
			if next == nil {
				next = &TreeNode{Name: part}
				cur.Children = append(cur.Children, next)
			}
			cur = next
		}
	}

	sortTree(root)
	return root
}

// files before directories, then by name
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		ci, cj := node.Children[i], node.Children[j]
		if (ci.File != "") != (cj.File != "") {
			return ci.File != ""
		}
		return ci.Name < cj.Name
	})
	for _, ch := range node.Children {
		sortTree(ch)
	}
}

func PrintTree(w io.Writer, node *TreeNode, label func(*TreeNode) string) {
	if label == nil {
		label = func(n *TreeNode) string { return n.Name }
	}
	printChildren(w, node, "", label)
}

func printChildren(w io.Writer, node *TreeNode, prefix string, label func(*TreeNode) string) {
	for i, ch := range node.Children {
		last := i == len(node.Children)-1
		conn, next := "├─ ", "│  "
		if last {
			conn, next = "└─ ", "   "
		}
		fmt.Fprintln(w, prefix+conn+label(ch))
		printChildren(w, ch, prefix+next, label)
	}
}
