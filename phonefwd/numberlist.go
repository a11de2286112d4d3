package phonefwd

// NumberList is an ordered, owning collection of number strings returned
// by Database's query operations. It is read-only to callers: nothing in
// this package mutates a NumberList after it is returned.
//
// A "singleton" NumberList of length 1 with no value set (Get(0) reports
// ok == false) is the query result for invalid or missing input, mirroring
// spec §4.B's "empty singleton" slot.
type NumberList struct {
	values []string
	valid  []bool
}

// newEmptySingleton returns a NumberList of length 1 whose single slot
// carries no value.
func newEmptySingleton() *NumberList {
	return &NumberList{values: make([]string, 1), valid: make([]bool, 1)}
}

// newSingleton returns a NumberList of length 1 holding s.
func newSingleton(s string) *NumberList {
	return &NumberList{values: []string{s}, valid: []bool{true}}
}

// newFromSlice returns a NumberList that owns the given strings, in order.
func newFromSlice(ss []string) *NumberList {
	valid := make([]bool, len(ss))
	for i := range valid {
		valid[i] = true
	}
	return &NumberList{values: ss, valid: valid}
}

// Len returns the number of slots in the list.
//
// Time Complexity: O(1)
func (nl *NumberList) Len() int {
	if nl == nil {
		return 0
	}
	return len(nl.values)
}

// Get returns the i-th string in the list. ok is false if i is out of
// range or the slot carries no value (an empty-singleton slot).
//
// Time Complexity: O(1)
func (nl *NumberList) Get(i int) (value string, ok bool) {
	if nl == nil || i < 0 || i >= len(nl.values) {
		return "", false
	}
	return nl.values[i], nl.valid[i]
}

// Close releases nl. Go's garbage collector reclaims the backing slice and
// strings once nl is unreferenced; Close exists only so callers of an API
// that used to pair every query with an explicit destroy call have a
// direct, null-safe counterpart to call. It is always safe to call Close
// on a nil NumberList.
func (nl *NumberList) Close() {}
