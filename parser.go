package main

import "strings"

// Node is one folder in the parsed outline. Children keep source order.
type Node struct {
	Name     string
	Children []*Node
}

// parseOutline converts indentation-delimited text into a forest of nodes.
// Every 4 leading space characters nest a line one level deeper; blank and
// whitespace-only lines contribute nothing. Parsing never fails: any input
// yields some forest, with each line attached to the nearest preceding line
// of strictly smaller depth (or kept as a root when none exists).
func parseOutline(text string) []*Node {
	type frame struct {
		depth    int
		children *[]*Node
	}

	var forest []*Node
	// Sentinel at depth -1 owns the forest and can never be popped.
	stack := []frame{{depth: -1, children: &forest}}

	for _, raw := range strings.Split(text, "\n") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		depth := leadingSpaces(raw) / 4

		// Unwind to the nearest frame shallower than this line. Equal depth
		// means sibling, greater means we left that subtree.
		for stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		node := &Node{Name: name}
		top := stack[len(stack)-1]
		*top.children = append(*top.children, node)
		stack = append(stack, frame{depth: depth, children: &node.Children})
	}

	return forest
}

// leadingSpaces counts leading ASCII space characters only. Tabs do not
// count toward depth, so a tab-indented template parses as all roots.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
