package trie

// AlphabetSize is the fan-out of every node, one slot per lowercase letter.
const AlphabetSize = 26

// Node is a single position in a Trie. The path from the root to a Node spells a prefix of every
// word inserted beneath it. A nil *Node is valid and behaves as a node with no children.
type Node struct {
	isWord   bool
	children [AlphabetSize]*Node
}

// Child returns the node reached by following ch, or nil if there is no such edge or ch is not a
// lowercase letter.
func (n *Node) Child(ch byte) *Node {
	if n == nil {
		return nil
	}
	idx, ok := index(ch)
	if !ok {
		return nil
	}
	return n.children[idx]
}

// IsWord reports whether the path ending at n spells an inserted word.
func (n *Node) IsWord() bool {
	return n != nil && n.isWord
}

func index(ch byte) (int, bool) {
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}

// release drops every node beneath n, children first, and returns how many nodes were released
// including n itself.
func release(n *Node) int {
	freed := 0
	for i, child := range n.children {
		if child == nil {
			continue
		}
		freed += release(child)
		n.children[i] = nil
	}
	n.isWord = false
	return freed + 1
}
