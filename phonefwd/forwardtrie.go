package phonefwd

// forwardNode is a node of the forward trie: it is reachable from the
// root by the sequence of digit indices spelling its source prefix.
//
// Fields:
//   - children: one slot per alphabet symbol, nil where no child exists.
//   - replacement: the rule's target string, present iff a rule ends at
//     this exact node.
//   - parent: a non-owning back-reference used to unwind subtree deletion
//     iteratively, since a phone number (and therefore trie depth) can be
//     arbitrarily long.
type forwardNode struct {
	children    []*forwardNode
	replacement string
	hasRule     bool
	parent      *forwardNode
}

// newForwardNode allocates an empty node with no rule and no children.
func newForwardNode(alphabet Alphabet) *forwardNode {
	return &forwardNode{children: make([]*forwardNode, alphabet.size())}
}

// walkCreate descends the trie along key, creating empty children as
// needed, and returns the node at the end of the path.
//
// Algorithm Steps:
//   - Start at the root.
//   - For each character of key, create the child slot if empty, then
//     move into it.
//   - Return the node reached after the last character.
//
// Time Complexity: O(len(key))
func (n *forwardNode) walkCreate(alphabet Alphabet, key string) *forwardNode {
	current := n
	for i := 0; i < len(key); i++ {
		idx := alphabet.toIndex(key[i])
		if current.children[idx] == nil {
			child := newForwardNode(alphabet)
			child.parent = current
			current.children[idx] = child
		}
		current = current.children[idx]
	}
	return current
}

// findLongestRuleOnPath walks key from n and returns the deepest node
// along the path that carries a replacement, along with the depth (number
// of characters consumed) at which that node sits. ok is false if no node
// on the path carries a rule.
//
// Algorithm Steps:
//   - Track the deepest rule-bearing node seen so far while descending.
//   - A node is checked for a rule both before descending into its child
//     and, crucially, after the final character is consumed — a rule that
//     matches the query's full length still counts (spec §4.F).
//
// Time Complexity: O(len(key))
func (n *forwardNode) findLongestRuleOnPath(alphabet Alphabet, key string) (node *forwardNode, depth int, ok bool) {
	current := n
	i := 0
	for i < len(key) {
		if current.hasRule {
			node, depth, ok = current, i, true
		}
		idx := alphabet.toIndex(key[i])
		if current.children[idx] == nil {
			break
		}
		current = current.children[idx]
		i++
	}
	if i == len(key) && current.hasRule {
		node, depth, ok = current, i, true
	}
	return node, depth, ok
}

// eraseSubtree iteratively frees every node in the subtree rooted at n,
// including n itself, detaching n from its parent's children array along
// the way.
//
// Algorithm Steps:
//   - Remember n's parent as the boundary to stop at.
//   - Repeatedly descend into the first non-nil child of the current
//     node.
//   - When a node has no remaining children, unlink it from its parent's
//     children slot, clear it, and ascend to that parent.
//   - Stop once the current position reaches the boundary.
//
// This avoids recursion, whose stack depth would otherwise be proportional
// to key length, which spec §9 calls out as unbounded for phone numbers.
//
// Time Complexity: O(size of subtree rooted at n)
func (n *forwardNode) eraseSubtree() {
	if n == nil {
		return
	}

	boundary := n.parent
	current := n
	for current != boundary {
		descended := false
		for _, child := range current.children {
			if child != nil {
				current = child
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		parent := current.parent
		if parent != nil {
			for i, child := range parent.children {
				if child == current {
					parent.children[i] = nil
					break
				}
			}
		}
		current.children = nil
		current.replacement = ""
		current.hasRule = false
		current.parent = nil
		current = parent
	}
}
