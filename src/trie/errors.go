package trie

import "errors"

var (
	// ErrEmptyInput is returned when inserting a zero-length word.
	ErrEmptyInput = errors.New("trie: empty input")
	// ErrInvalidHandle is returned when operating on a nil *Trie.
	ErrInvalidHandle = errors.New("trie: invalid handle")
	// ErrAllocationFailure is returned when an insert would exceed the trie's node limit.
	ErrAllocationFailure = errors.New("trie: node allocation failed")
	// ErrInvalidSymbol is returned when a word contains a byte outside a-z.
	ErrInvalidSymbol     = errors.New("trie: symbol outside a-z")
)
