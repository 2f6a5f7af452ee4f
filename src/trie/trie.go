// Package trie implements a prefix tree over the lowercase letters a-z. It supports inserting
// words, testing whether a string is a stored word or a prefix of one, and tearing the whole tree
// down. A Trie is not safe for concurrent use.
package trie

import "fmt"

// Mode selects what Search treats as a match.
type Mode uint8

const (
	// Word matches only strings that were inserted.
	Word Mode = iota
	// Prefix matches any string that begins some inserted word.
	Prefix
)

func (m Mode) String() string {
	switch m {
	case Word:
		return "word"
	case Prefix:
		return "prefix"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

type Trie struct {
	root  *Node
	size  int
	limit int
}

type Option func(*Trie)

// WithNodeLimit caps the number of nodes the trie may allocate, root included. An insert that
// would need more nodes than remain fails with ErrAllocationFailure. A limit <= 0 means no limit.
func WithNodeLimit(n int) Option {
	return func(t *Trie) {
		if n < 0 {
			n = 0
		}
		t.limit = n
	}
}

// New returns an empty trie. The root is allocated by the first successful Insert.
func New(opts ...Option) *Trie {
	t := &Trie{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert adds word to the trie. It fails without modifying the trie if word is empty, contains a
// byte outside a-z, or needs more nodes than the node limit allows.
func (t *Trie) Insert(word string) error {
	if t == nil {
		return ErrInvalidHandle
	}
	if len(word) == 0 {
		return ErrEmptyInput
	}
	for i := 0; i < len(word); i++ {
		if _, ok := index(word[i]); !ok {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, word[i], i)
		}
	}
	if t.limit > 0 {
		if need := t.missing(word); t.size+need > t.limit {
			return fmt.Errorf("%w: need %d nodes, %d of %d in use", ErrAllocationFailure, need, t.size, t.limit)
		}
	}

	if t.root == nil {
		t.root = &Node{}
		t.size++
	}
	curr := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if curr.children[idx] == nil {
			curr.children[idx] = &Node{}
			t.size++
		}
		curr = curr.children[idx]
	}
	curr.isWord = true
	return nil
}

// missing counts the nodes Insert would have to allocate for word. word must already be validated.
func (t *Trie) missing(word string) int {
	if t.root == nil {
		return len(word) + 1
	}
	curr := t.root
	for i := 0; i < len(word); i++ {
		next := curr.children[word[i]-'a']
		if next == nil {
			return len(word) - i
		}
		curr = next
	}
	return 0
}

// Search walks the path spelled by query. In Prefix mode it reports whether the path exists; in
// Word mode the path must also end on an inserted word. An empty query or an unknown mode is
// never found.
func (t *Trie) Search(query string, mode Mode) bool {
	if len(query) == 0 || (mode != Word && mode != Prefix) {
		return false
	}
	n := t.find(query)
	if n == nil {
		return false
	}
	if mode == Prefix {
		return true
	}
	return n.isWord
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	return t.Search(word, Word)
}

// HasPrefix reports whether some inserted word begins with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.Search(prefix, Prefix)
}

func (t *Trie) find(s string) *Node {
	curr := t.Root()
	for i := 0; i < len(s) && curr != nil; i++ {
		curr = curr.Child(s[i])
	}
	return curr
}

// Root returns the node for the empty prefix, or nil if nothing has been inserted.
func (t *Trie) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of nodes currently allocated, root included.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Destroy releases every node in the trie and returns how many were released. The trie is left
// empty and may be reused. Calling Destroy on an empty or nil trie does nothing.
func (t *Trie) Destroy() int {
	if t == nil || t.root == nil {
		return 0
	}
	freed := release(t.root)
	t.root = nil
	t.size = 0
	return freed
}
