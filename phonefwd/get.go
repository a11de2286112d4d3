package phonefwd

import "strings"

// Get applies the longest-matching redirection rule to num and returns a
// singleton NumberList holding the result.
//
// Edge cases (spec §4.F):
//   - A nil Database returns nil.
//   - An empty, nil-equivalent, or invalid num returns an empty singleton.
//   - If no rule's source is a prefix of num, the singleton holds num
//     itself unchanged (spec §8 property 1).
//   - Otherwise the singleton holds the longest matching rule's
//     replacement, followed by the unmatched remainder of num (spec §8
//     property 2).
//
// Time Complexity: O(len(num))
func (db *Database) Get(num string) *NumberList {
	if db == nil {
		return nil
	}
	if !db.alphabet.IsValidNumber(num) {
		return newEmptySingleton()
	}

	node, depth, ok := db.forward.findLongestRuleOnPath(db.alphabet, num)
	if !ok {
		return newSingleton(num)
	}

	var b strings.Builder
	b.WriteString(node.replacement)
	b.WriteString(num[depth:])
	return newSingleton(b.String())
}
