package dict

import "github.com/kalexmills/lettertrie/src/trie"

// MaxSplitLen bounds the input accepted by Split.
const MaxSplitLen = 1000

// Split breaks s into a sequence of words stored in t, preferring the sequence with the fewest
// words. It reports false when no such sequence exists.
func Split(t *trie.Trie, s string) ([]string, bool) {
	if s == "" || len(s) > MaxSplitLen {
		return nil, false
	}
	sp := splitter{t: t, s: s, memo: make(map[int]split)}
	best := sp.from(0)
	return best.words, best.ok
}

type split struct {
	words []string
	ok    bool
}

type splitter struct {
	t    *trie.Trie
	s    string
	memo map[int]split
}

// from returns the best segmentation of s[start:]. Walking the trie one letter at a time finds
// every word that starts at start, and stops as soon as no stored word continues the prefix.
func (sp *splitter) from(start int) split {
	if start == len(sp.s) {
		return split{ok: true}
	}
	if result, ok := sp.memo[start]; ok {
		return result
	}
	var best split
	curr := sp.t.Root()
	for i := start; i < len(sp.s); i++ {
		curr = curr.Child(sp.s[i])
		if curr == nil {
			break
		}
		if !curr.IsWord() {
			continue
		}
		rest := sp.from(i + 1)
		if !rest.ok {
			continue
		}
		if !best.ok || len(rest.words)+1 < len(best.words) {
			words := make([]string, 0, len(rest.words)+1)
			words = append(words, sp.s[start:i+1])
			best = split{words: append(words, rest.words...), ok: true}
		}
	}
	sp.memo[start] = best
	return best
}
