package datastructures

import "iter"

// TrieNode keys handler-like values by string prefixes. Routing tables are
// small, so no compression is attempted.
type TrieNode[T any] struct {
	children map[rune]*TrieNode[T]
	isLeaf   bool
	val      T
}

func NewTrieNode[T any]() TrieNode[T] {
	return TrieNode[T]{children: make(map[rune]*TrieNode[T], 27)}
}

func (node *TrieNode[T]) IsLeaf() bool {
	return node.isLeaf
}

func (node *TrieNode[T]) Val() T {
	return node.val
}

func (root *TrieNode[T]) Insert(key string, val T) {
	cur := root
	for _, char := range key {
		if cur.children[char] == nil {
			node := &TrieNode[T]{children: make(map[rune]*TrieNode[T], 26)}
			cur.children[char] = node
		}
		cur = cur.children[char]
	}
	cur.isLeaf = true
	cur.val = val
}

func (root *TrieNode[T]) SearchExact(key string) (T, bool) {
	var result T
	cur := root
	for _, char := range key {
		if cur.children[char] == nil {
			return result, false
		}
		cur = cur.children[char]
	}
	return cur.val, cur.isLeaf
}

// Search returns the value of the longest prefix of key present in the trie,
// or the zero value when nothing matches.
func (root *TrieNode[T]) Search(key string) T {
	var result T
	cur := root
	for _, char := range key {
		if cur.children[char] == nil {
			return result
		}
		cur = cur.children[char]
		result = cur.val
	}
	return result
}

// Iterate walks the nodes along the longest stored prefix of key.
func (root *TrieNode[T]) Iterate(key string) iter.Seq[*TrieNode[T]] {
	cur := root
	return func(yield func(*TrieNode[T]) bool) {
		if len(key) == 0 {
			yield(cur)
			return
		}
		for _, char := range key {
			if !yield(cur) {
				return
			}
			if cur.children[char] == nil {
				return
			}
			cur = cur.children[char]
		}
		yield(cur)
	}
}
