package phonefwd

import "strings"

// reverseNode is a node of the reverse trie: it is reachable from the
// root by the sequence of digit indices spelling the replacement prefix
// that rules redirect through.
//
// Fields:
//   - children: one slot per alphabet symbol, nil where no child exists.
//   - sources: a bag (duplicates permitted) of source prefixes that
//     redirect to a number having this node's path as a prefix.
//   - parent: a non-owning back-reference, mirroring forwardNode.
type reverseNode struct {
	children []*reverseNode
	sources  []string
	parent   *reverseNode
}

// newReverseNode allocates an empty node with no sources and no children.
func newReverseNode(alphabet Alphabet) *reverseNode {
	return &reverseNode{children: make([]*reverseNode, alphabet.size())}
}

// walkCreate descends the trie along key, creating empty children as
// needed, and returns the node at the end of the path.
//
// Time Complexity: O(len(key))
func (n *reverseNode) walkCreate(alphabet Alphabet, key string) *reverseNode {
	current := n
	for i := 0; i < len(key); i++ {
		idx := alphabet.toIndex(key[i])
		if current.children[idx] == nil {
			child := newReverseNode(alphabet)
			child.parent = current
			current.children[idx] = child
		}
		current = current.children[idx]
	}
	return current
}

// addSource appends source to the bag at the node reached by walking
// targetPrefix, creating the path as needed.
//
// Appending is O(1) amortized; no deduplication happens at insert time —
// Reverse deduplicates lazily at query time (spec §4.D, §9).
//
// Time Complexity: O(len(targetPrefix)) amortized
func (n *reverseNode) addSource(alphabet Alphabet, targetPrefix, source string) {
	node := n.walkCreate(alphabet, targetPrefix)
	node.sources = append(node.sources, source)
}

// walkAlong returns the node reached by following key from n as far as
// existing children allow. depth is how many characters were consumed;
// an empty key returns n itself with depth 0.
//
// Time Complexity: O(len(key))
func (n *reverseNode) walkAlong(alphabet Alphabet, key string) (node *reverseNode, depth int) {
	current := n
	i := 0
	for i < len(key) {
		idx := alphabet.toIndex(key[i])
		if current.children[idx] == nil {
			break
		}
		current = current.children[idx]
		i++
	}
	return current, i
}

// removeSourceExact removes exactly one bag entry equal to source from the
// node reached by walking targetPrefix. It is a no-op if the path or the
// entry does not exist.
//
// This implements the overwrite-eviction half of the resolved remove_cell
// ambiguity in spec §9: on overwrite, evict exactly one bag entry equal to
// the overwritten source.
//
// Time Complexity: O(len(targetPrefix) + bag size at that node)
func (n *reverseNode) removeSourceExact(alphabet Alphabet, targetPrefix, source string) {
	node := n
	for i := 0; i < len(targetPrefix); i++ {
		idx := alphabet.toIndex(targetPrefix[i])
		if node.children[idx] == nil {
			return
		}
		node = node.children[idx]
	}
	for i, s := range node.sources {
		if s == source {
			node.sources = append(node.sources[:i], node.sources[i+1:]...)
			return
		}
	}
}

// removeSourcesWithPrefix walks every node of the subtree rooted at n and,
// at each, removes from its bag every entry that has removedPrefix as a
// prefix.
//
// This implements the Remove-eviction half of the resolved remove_cell
// ambiguity in spec §9: removing a rule's whole subtree in the forward
// trie must also evict every bag entry anywhere in the reverse trie whose
// rule was just destroyed.
//
// The traversal is an explicit-stack depth-first walk, not recursion: the
// reverse trie's depth tracks the length of installed replacement
// strings, which spec §1 calls out as unbounded, so unwinding by program
// stack is unsafe here for the same reason forwardNode.eraseSubtree
// avoids it.
//
// Time Complexity: O(size of the reverse trie + total bag size)
func (n *reverseNode) removeSourcesWithPrefix(removedPrefix string) {
	if n == nil {
		return
	}
	pending := []*reverseNode{n}
	for len(pending) > 0 {
		node := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if len(node.sources) > 0 {
			filtered := node.sources[:0]
			for _, s := range node.sources {
				if !strings.HasPrefix(s, removedPrefix) {
					filtered = append(filtered, s)
				}
			}
			node.sources = filtered
		}
		for _, child := range node.children {
			if child != nil {
				pending = append(pending, child)
			}
		}
	}
}
