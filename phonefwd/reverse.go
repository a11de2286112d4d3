package phonefwd

// Reverse enumerates every number that could have been redirected to num
// by some installed rule, plus num itself, sorted under the alphabet's
// index ordering and deduplicated.
//
// Edge cases (spec §4.G):
//   - A nil Database returns nil.
//   - An empty, nil-equivalent, or invalid num returns an empty singleton.
//
// Algorithm Steps:
//  1. Walk the reverse trie along num. At each node visited, for every
//     source s in that node's bag, emit the candidate s + num[depth:],
//     where depth is the number of characters consumed to reach the node.
//  2. Also include num itself (identity; spec §8 property 3).
//  3. Sort all candidates by db.alphabet's index ordering, not raw
//     character ordering — '*' and '#' sort after every digit under the
//     Extended alphabet (spec §4.G, §9).
//  4. Deduplicate adjacent equal candidates.
//
// Time Complexity: O(L * (S + L)), where L = len(num) and S is the number
// of sources visited.
func (db *Database) Reverse(num string) *NumberList {
	if db == nil {
		return nil
	}
	if !db.alphabet.IsValidNumber(num) {
		return newEmptySingleton()
	}

	candidates := make([]string, 0, 1)
	candidates = append(candidates, num)

	current := db.reverse
	for depth := 0; depth < len(num); depth++ {
		idx := db.alphabet.toIndex(num[depth])
		current = current.children[idx]
		if current == nil {
			break
		}
		for _, source := range current.sources {
			candidates = append(candidates, source+num[depth+1:])
		}
	}

	db.alphabet.bubbleSort(candidates)
	candidates = dedupAdjacent(candidates)
	return newFromSlice(candidates)
}

// bubbleSort sorts ss in place into strict lexicographic order under a's
// index ordering (spec §4.G, §9): characters compare by a.toIndex, not by
// byte value, so that '*' (10) and '#' (11) sort after every digit. A
// string that is a proper prefix of another sorts before it (is the
// lesser), as decided by compare's END-vs-continuing-string case.
//
// This is a literal bubble sort, not sort.Slice: the comparator's
// direction and the sort's stability under it are domain behavior spelled
// out by spec §4.G/§9, ported from the original source's compare and
// bubble_sort, not ambient infrastructure a generic sort would transparently
// replace.
//
// Time Complexity: O(n^2) comparisons, each O(min(len(a), len(b))).
func (a Alphabet) bubbleSort(ss []string) {
	settled := false
	for !settled {
		settled = true
		for i := 1; i < len(ss); i++ {
			if a.compare(ss[i-1], ss[i]) == -1 {
				ss[i-1], ss[i] = ss[i], ss[i-1]
				settled = false
			}
		}
	}
}

// compare orders a1 against a2 under a's alphabet-index ordering.
// Returns 1 if a2 > a1, -1 if a1 > a2, 0 if equal. A string that ends
// while the other continues is the lesser string (matching the original
// comparator: ending first means "1, b > a").
//
// Time Complexity: O(min(len(s1), len(s2)))
func (a Alphabet) compare(s1, s2 string) int {
	i := 0
	for i < len(s1) && i < len(s2) {
		v1, v2 := a.toIndex(s1[i]), a.toIndex(s2[i])
		if v2 > v1 {
			return 1
		}
		if v1 > v2 {
			return -1
		}
		i++
	}
	switch {
	case i < len(s1):
		return -1
	case i < len(s2):
		return 1
	default:
		return 0
	}
}

// dedupAdjacent returns ss with adjacent equal strings collapsed to one,
// assuming ss is already sorted.
//
// Time Complexity: O(n)
func dedupAdjacent(ss []string) []string {
	if len(ss) == 0 {
		return ss
	}
	out := ss[:1]
	for _, s := range ss[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
