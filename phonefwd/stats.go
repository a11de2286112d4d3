package phonefwd

import "github.com/Zubayear/phonefwd/queue"

// Size returns the number of rules currently installed in db, i.e. the
// number of forward-trie nodes with hasRule set. A nil Database has size 0.
//
// Algorithm Steps:
//   - Breadth-first traversal of the forward trie starting at the root,
//     using a FIFO queue rather than recursion so traversal depth never
//     depends on Go's call stack.
//   - Count every visited node that carries a rule.
//
// Time Complexity: O(number of trie nodes)
func (db *Database) Size() int {
	if db == nil {
		return 0
	}

	count := 0
	pending := queue.NewQueue[*forwardNode]()
	pending.Enqueue(db.forward)
	for !pending.IsEmpty() {
		node, err := pending.Dequeue()
		if err != nil {
			break
		}
		if node.hasRule {
			count++
		}
		for _, child := range node.children {
			if child != nil {
				pending.Enqueue(child)
			}
		}
	}
	return count
}

// IsEmpty reports whether db has no installed rules. A nil Database is
// empty.
func (db *Database) IsEmpty() bool {
	return db.Size() == 0
}
