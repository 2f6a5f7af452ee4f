package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_NilIsEmpty(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Child('a'))
	assert.False(t, n.IsWord())
}

func TestNode_ChildRejectsNonLetters(t *testing.T) {
	n := &Node{}
	n.children[0] = &Node{isWord: true}

	assert.True(t, n.Child('a').IsWord())
	for _, ch := range []byte{'A', '`', '{', '0', ' ', 0xff} {
		assert.Nil(t, n.Child(ch), "%q", ch)
	}
}

func TestRelease_CountsEveryNode(t *testing.T) {
	tr := New()
	for _, w := range []string{"ab", "ac", "b", "abcd"} {
		assert.NoError(t, tr.Insert(w))
	}
	// root, a, b(under a), c(under a), b, c(under ab), d
	assert.Equal(t, 7, tr.size)
	assert.Equal(t, 7, release(tr.root))
	for _, child := range tr.root.children {
		assert.Nil(t, child)
	}
}
