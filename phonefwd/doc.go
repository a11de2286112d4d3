/*
Package phonefwd implements a phone-number forwarding database: a pair of
coupled prefix tries (tries keyed digit-by-digit) over a closed digit
alphabet that answer two dual queries:

  - Get: given an original number, what is it forwarded to?
  - Reverse / GetReverse: given a target number, which originals could
    have produced it?

A forward trie maps a source prefix to a replacement string (at most one
per node). A reverse trie, keyed by the replacement prefix, holds a bag of
the source prefixes that redirect through it. The two tries are kept
mutually consistent by Database across Add and Remove.

Two alphabet variants are supported:

  - Decimal: the ten symbols '0'..'9'.
  - Extended: the same ten digits plus '*' and '#', mapped to indices 10
    and 11 respectively.

Example usage:

	db := phonefwd.New()
	db.Add("11", "113")
	list := db.Get("114")
	s, _ := list.Get(0) // "1134"

Use Cases:
  - Telephone exchange redirection tables.
  - Any longest-prefix-match replacement rule set over a small alphabet.

Implementation Details:
  - Each trie node carries a parent back-reference (not an ownership edge)
    so that subtree deletion can unwind iteratively instead of recursing
    to a depth proportional to key length.
  - The reverse trie's bag permits duplicate inserts; Reverse deduplicates
    adjacent equal candidates after sorting.

Time Complexity:
  - Add: O(L), where L is the length of the longer of the two numbers.
  - Get: O(L), where L is the length of the query.
  - Remove: O(|subtree| + |D|) amortized, bounded by total bag size.
  - Reverse: O(L * (S + L)), where S is the number of sources visited.
  - GetReverse: O(Reverse) + O(|Reverse output| * Get).

Space Complexity: O(total length of all installed rules).

Concurrency: phonefwd provides no internal synchronization. Callers must
serialize their own access to a Database the same way they would for any
plain Go map: concurrent writers, or a writer racing readers, are not
supported.
*/
package phonefwd
