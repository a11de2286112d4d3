package phonefwd

// Database owns a forward trie and a reverse trie and keeps them mutually
// consistent across Add and Remove (spec §3 invariant 2, §4.E).
//
// Database provides no internal synchronization (spec §5): callers must
// serialize their own access, exactly as they would for a plain Go map.
type Database struct {
	alphabet Alphabet
	forward  *forwardNode
	reverse  *reverseNode
}

// New returns an empty Database over the ten-digit decimal alphabet.
func New() *Database {
	return newDatabase(Decimal)
}

// NewExtended returns an empty Database over the twelve-symbol extended
// alphabet ('0'..'9', '*', '#').
func NewExtended() *Database {
	return newDatabase(Extended)
}

func newDatabase(alphabet Alphabet) *Database {
	return &Database{
		alphabet: alphabet,
		forward:  newForwardNode(alphabet),
		reverse:  newReverseNode(alphabet),
	}
}

// Close releases db. Go's garbage collector reclaims every trie node and
// string once db is unreferenced; Close exists only to give callers of a
// destroy-based API (spec §6's Delete) a direct, null-safe counterpart.
// It is always safe to call Close on a nil Database.
func (db *Database) Close() {}

// Add installs a rule redirecting numbers beginning with src to begin
// with tgt instead, overwriting any existing rule for the exact prefix
// src. It returns false, installing nothing, if src or tgt is not a valid
// number under db's alphabet, if src equals tgt, or if db is nil.
//
// Algorithm Steps (spec §4.E):
//  1. Reject invalid input (covers self-mapping rejection, spec §3
//     invariant 4 and §8 property 8).
//  2. Walk/create the path src in the forward trie to node n, and the
//     path tgt in the reverse trie to node m, before committing either
//     side — both paths exist before any bag or replacement is mutated.
//  3. If n already carries a replacement, evict the matching bag entry
//     from the reverse trie before it is overwritten — found while the
//     old replacement string is still readable, then evicted.
//  4. Append src to m's bag.
//  5. Install n's new replacement last, once the reverse-side bookkeeping
//     has committed (see SPEC_FULL.md's resolution of the partial-failure
//     Open Question: a prior Add's accepted result must mean both tries
//     agree).
//
// Time Complexity: O(len(src) + len(tgt))
func (db *Database) Add(src, tgt string) bool {
	if db == nil {
		return false
	}
	if !db.alphabet.IsValidNumber(src) || !db.alphabet.IsValidNumber(tgt) {
		return false
	}
	if db.alphabet.Equal(src, tgt) {
		return false
	}

	node := db.forward.walkCreate(db.alphabet, src)
	reverseTarget := db.reverse.walkCreate(db.alphabet, tgt)

	if node.hasRule {
		db.reverse.removeSourceExact(db.alphabet, node.replacement, src)
	}
	reverseTarget.sources = append(reverseTarget.sources, src)
	node.replacement = tgt
	node.hasRule = true
	return true
}

// Remove deletes every rule whose source has prefix as a prefix. It is a
// no-op if prefix is invalid, db is nil, or no stored source begins with
// prefix (spec §8 property 9).
//
// Algorithm Steps (spec §4.E):
//  1. Reject invalid input.
//  2. Descend the forward trie along prefix; if the path does not fully
//     exist, do nothing.
//  3. Erase the entire subtree rooted at the node reached, iteratively.
//  4. Walk every node of the reverse trie and evict every bag entry that
//     has prefix as a prefix.
//
// Time Complexity: O(size of the erased forward subtree + size of the
// reverse trie + total bag size)
func (db *Database) Remove(prefix string) {
	if db == nil || !db.alphabet.IsValidNumber(prefix) {
		return
	}

	node := db.forward
	for i := 0; i < len(prefix); i++ {
		idx := db.alphabet.toIndex(prefix[i])
		if node.children[idx] == nil {
			return
		}
		node = node.children[idx]
	}

	node.eraseSubtree()
	db.reverse.removeSourcesWithPrefix(prefix)
}
