package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Matcher compiles a set of declared names into a trie that can be
// emitted as branch code with cost proportional to name length and no
// allocation, or interpreted directly (used by tests).
type Matcher struct {
	root *matcherNode
}

type nameIndex struct {
	name  string
	index int
}

type matcherNode struct {
	children map[byte]*matcherNode
	names    []nameIndex // every name passing through this node
	index    int         // index of a name terminating here, or -1
}

func newMatcherNode() *matcherNode {
	return &matcherNode{children: map[byte]*matcherNode{}, index: -1}
}

// BuildMatcher compiles the name → index mapping.
func BuildMatcher(indices map[string]int) *Matcher {
	names := make([]string, 0, len(indices))
	for name := range indices {
		names = append(names, name)
	}
	sort.Strings(names)

	root := newMatcherNode()
	for _, name := range names {
		entry := nameIndex{name: name, index: indices[name]}
		node := root
		node.names = append(node.names, entry)
		for i := 0; i < len(name); i++ {
			child, ok := node.children[name[i]]
			if !ok {
				child = newMatcherNode()
				node.children[name[i]] = child
			}
			node = child
			node.names = append(node.names, entry)
		}
		node.index = entry.index
	}

	return &Matcher{root: root}
}

// Lookup interprets the trie: the declared index for name, or -1.
func (m *Matcher) Lookup(name string) int {
	node := m.root
	for i := 0; i < len(name); i++ {
		child, ok := node.children[name[i]]
		if !ok {
			return -1
		}
		node = child
	}

	return node.index
}

// EmitCpp renders the lookup procedure as nested switch/compare code.
// Branch characters are visited in descending order, so shared-prefix
// runs stay contiguous and branch nesting closes as the prefix set
// shrinks.
func (m *Matcher) EmitCpp(funcName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "int %s(std::string_view name) {\n", funcName)
	b.WriteString("\tauto size = int(name.size());\n")
	b.WriteString("\tauto data = name.data();\n")
	m.emitNode(&b, m.root, 0, 1)
	b.WriteString("}\n")

	return b.String()
}

func (m *Matcher) emitNode(b *strings.Builder, node *matcherNode, depth, indent int) {
	tabs := strings.Repeat("\t", indent)

	if len(node.names) == 1 {
		// A single candidate remains: finish with a length check plus a
		// byte-range compare of the remaining suffix.
		entry := node.names[0]
		suffix := entry.name[depth:]
		if len(suffix) == 0 {
			fmt.Fprintf(b, "%sreturn (size == %d) ? %d : -1;\n", tabs, len(entry.name), entry.index)
		} else {
			fmt.Fprintf(b, "%sreturn (size == %d && !memcmp(data + %d, %s, %d)) ? %d : -1;\n",
				tabs, len(entry.name), depth, EncodedString(suffix), len(suffix), entry.index)
		}

		return
	}

	if node.index >= 0 {
		fmt.Fprintf(b, "%sif (size == %d) return %d;\n", tabs, depth, node.index)
	}

	chars := make([]int, 0, len(node.children))
	for ch := range node.children {
		chars = append(chars, int(ch))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(chars)))

	fmt.Fprintf(b, "%sif (size > %d) switch (data[%d]) {\n", tabs, depth, depth)
	for _, ch := range chars {
		fmt.Fprintf(b, "%scase '%c':\n", tabs, byte(ch))
		m.emitNode(b, node.children[byte(ch)], depth+1, indent+1)
	}
	fmt.Fprintf(b, "%s}\n", tabs)
	fmt.Fprintf(b, "%sreturn -1;\n", tabs)
}
