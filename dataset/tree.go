package dataset

import "sort"

// TreeNode is one level of the object category hierarchy with the number of
// records reachable under it.
type TreeNode struct {
	Name     string
	Count    int
	Children []*TreeNode
}

// CategoryTree builds the object hierarchy across the whole catalog.
// Each record contributes at most once to a node's count, even when several
// of its objects share a category path.
func (c *Catalog) CategoryTree() []*TreeNode {
	type node struct {
		children map[string]*node
		records  map[string]bool
	}
	newNode := func() *node {
		return &node{children: make(map[string]*node), records: make(map[string]bool)}
	}
	root := newNode()

	for _, r := range c.Records {
		for _, o := range r.Objects {
			cur := root
			for _, level := range o.Levels {
				if level == "" {
					break
				}
				child, ok := cur.children[level]
				if !ok {
					child = newNode()
					cur.children[level] = child
				}
				child.records[r.UUID] = true
				cur = child
			}
		}
	}

	var build func(n *node) []*TreeNode
	build = func(n *node) []*TreeNode {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		out := make([]*TreeNode, 0, len(names))
		for _, name := range names {
			child := n.children[name]
			out = append(out, &TreeNode{
				Name:     name,
				Count:    len(child.records),
				Children: build(child),
			})
		}
		return out
	}

	return build(root)
}
