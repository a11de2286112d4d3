package phonefwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func firstOf(t *testing.T, nl *NumberList) string {
	t.Helper()
	s, ok := nl.Get(0)
	if !ok {
		t.Fatalf("expected a value at index 0")
	}
	return s
}

// TestScenarioS1S2S3 ports the decimal-variant scenarios of spec.md §8.
func TestScenarioS1S2S3(t *testing.T) {
	db := New()

	assert.True(t, db.Add("11", "113"))
	assert.Equal(t, "1134", firstOf(t, db.Get("114")))

	assert.True(t, db.Add("119", "1"))
	assert.True(t, db.Add("113", "19"))
	assert.True(t, db.Add("1197", "191"))

	assert.Equal(t, "18", firstOf(t, db.Get("1198")))
	assert.Equal(t, "113", firstOf(t, db.Get("11")))

	db.Remove("119")
	assert.Equal(t, "11397", firstOf(t, db.Get("1197")))
}

func TestScenarioS4(t *testing.T) {
	db := New()
	assert.True(t, db.Add("123", "1"))
	assert.Equal(t, "1123", firstOf(t, db.Get("123123")))
	assert.Equal(t, "12089", firstOf(t, db.Get("12089")))
}

func TestScenarioS5(t *testing.T) {
	db := New()
	assert.True(t, db.Add("431", "432"))
	assert.True(t, db.Add("432", "433"))

	assert.Equal(t, "432", firstOf(t, db.Get("431")))
	assert.Equal(t, "433", firstOf(t, db.Get("432")))

	rev := db.Reverse("433")
	var values []string
	for i := 0; i < rev.Len(); i++ {
		v, _ := rev.Get(i)
		values = append(values, v)
	}
	assert.Contains(t, values, "432")
	assert.Contains(t, values, "433")
	assert.IsIncreasing(t, values)
}

func TestScenarioS6Extended(t *testing.T) {
	db := NewExtended()
	assert.True(t, db.Add("*", "#"))
	assert.Equal(t, "#9", firstOf(t, db.Get("*9")))

	rev := db.Reverse("#9")
	var values []string
	for i := 0; i < rev.Len(); i++ {
		v, _ := rev.Get(i)
		values = append(values, v)
	}
	assert.Contains(t, values, "*9")
	assert.Contains(t, values, "#9")

	idxStar, idxHash := -1, -1
	for i, v := range values {
		if v == "*9" {
			idxStar = i
		}
		if v == "#9" {
			idxHash = i
		}
	}
	assert.Less(t, idxStar, idxHash, "'#9' must sort after '*9' since '#' (11) > '*' (10)")
}

// TestPropertyIdentityWhenUnmapped is property 1 of spec.md §8.
func TestPropertyIdentityWhenUnmapped(t *testing.T) {
	db := New()
	db.Add("555", "1")
	assert.Equal(t, "999999", firstOf(t, db.Get("999999")))
}

// TestPropertyRoundTripContainment is property 3 of spec.md §8.
func TestPropertyRoundTripContainment(t *testing.T) {
	db := New()
	db.Add("11", "113")
	db.Add("119", "1")

	for _, n := range []string{"1198", "113", "999"} {
		rev := db.Reverse(n)
		found := false
		for i := 0; i < rev.Len(); i++ {
			if v, _ := rev.Get(i); v == n {
				found = true
			}
		}
		assert.True(t, found, "expected %q to be contained in its own Reverse result", n)
	}
}

// TestPropertyReverseSoundnessAndExactness covers properties 4 and 5 of
// spec.md §8.
func TestPropertyReverseSoundnessAndExactness(t *testing.T) {
	db := New()
	db.Add("431", "432")
	db.Add("432", "433")

	rev := db.Reverse("433")
	getRev := db.GetReverse("433")

	revSet := map[string]bool{}
	for i := 0; i < rev.Len(); i++ {
		v, _ := rev.Get(i)
		revSet[v] = true
	}

	for i := 0; i < getRev.Len(); i++ {
		x, _ := getRev.Get(i)
		assert.True(t, revSet[x], "GetReverse result %q must be a subset of Reverse", x)
		assert.Equal(t, "433", firstOf(t, db.Get(x)))
	}
}

// TestPropertyAddRemoveSymmetry is property 7 of spec.md §8.
func TestPropertyAddRemoveSymmetry(t *testing.T) {
	db := New()
	before := firstOf(t, db.Get("5551234"))

	db.Add("555", "1")
	db.Remove("555")

	after := firstOf(t, db.Get("5551234"))
	assert.Equal(t, before, after)
}

// TestPropertyRejection is property 8 of spec.md §8.
func TestPropertyRejection(t *testing.T) {
	db := New()
	assert.False(t, db.Add("123", "123"), "self-mapping rules must be rejected")
	assert.False(t, db.Add("12a", "456"), "invalid source digit must be rejected")
	assert.False(t, db.Add("123", "45b"), "invalid target digit must be rejected")
}

// TestPropertyNoOpRemoval is property 9 of spec.md §8.
func TestPropertyNoOpRemoval(t *testing.T) {
	db := New()
	db.Add("123", "456")
	before := firstOf(t, db.Get("123999"))

	db.Remove("999") // no rule has this prefix

	after := firstOf(t, db.Get("123999"))
	assert.Equal(t, before, after)
}

// TestNullSafety is property 10 of spec.md §8.
func TestNullSafety(t *testing.T) {
	var db *Database
	assert.False(t, db.Add("1", "2"))
	assert.NotPanics(t, func() { db.Remove("1") })
	assert.NotPanics(t, func() { db.Close() })
	assert.Nil(t, db.Get("1"))
	assert.Nil(t, db.Reverse("1"))
	assert.Nil(t, db.GetReverse("1"))

	var nl *NumberList
	assert.NotPanics(t, func() { nl.Close() })
	_, ok := nl.Get(0)
	assert.False(t, ok)
}

func TestAddOverwriteEvictsOldReverseEntry(t *testing.T) {
	db := New()
	db.Add("11", "200")
	db.Add("11", "300") // overwrite: must evict the "11" bag entry under "200"

	rev := db.Reverse("200")
	for i := 0; i < rev.Len(); i++ {
		v, _ := rev.Get(i)
		assert.NotEqual(t, "11", v, "overwritten rule's source must no longer reverse through the old target")
	}
}
