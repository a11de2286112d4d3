package phonefwd

// GetReverse returns the subset of Reverse(num)'s candidates x for which
// Get(x) yields exactly num, preserving Reverse's sorted, deduplicated
// order (spec §4.H, §8 properties 4 and 5).
//
// Edge cases mirror Reverse: a nil Database returns nil; an empty,
// nil-equivalent, or invalid num returns an empty singleton.
//
// Time Complexity: O(Reverse(num)) + O(len(candidates) * Get)
func (db *Database) GetReverse(num string) *NumberList {
	if db == nil {
		return nil
	}
	if !db.alphabet.IsValidNumber(num) {
		return newEmptySingleton()
	}

	candidates := db.Reverse(num)
	filtered := make([]string, 0, candidates.Len())
	for i := 0; i < candidates.Len(); i++ {
		x, _ := candidates.Get(i)
		got := db.Get(x)
		if first, ok := got.Get(0); ok && first == num {
			filtered = append(filtered, x)
		}
	}
	return newFromSlice(filtered)
}
