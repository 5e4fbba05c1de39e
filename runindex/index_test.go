package runindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupdesign/runindex"
)

func strp(s string) *string { return &s }

// TestIndex_SetGetExact verifies exact-key storage and retrieval.
func TestIndex_SetGetExact(t *testing.T) {
	ix := runindex.New[string]()
	ix.Set("01", "run-1", "faces", "a.nii")
	ix.Set("01", "run-2", "faces", "b.nii")

	v, ok := ix.Get("01", "run-1", "faces")
	require.True(t, ok)
	assert.Equal(t, "a.nii", v)

	_, ok = ix.Get("02", "run-1", "faces")
	assert.False(t, ok)
	assert.Equal(t, 2, ix.Len())
}

// TestIndex_UnscopedFallback verifies that an entry stored unscoped at a
// level answers concrete queries when no concrete entry exists, and that
// concrete entries win over unscoped ones.
func TestIndex_UnscopedFallback(t *testing.T) {
	ix := runindex.New[string]()
	ix.Set("01", runindex.Unscoped, "faces", "pooled")

	v, ok := ix.Get("01", "run-7", "faces")
	require.True(t, ok, "unscoped run entry must answer any run query")
	assert.Equal(t, "pooled", v)

	ix.Set("01", "run-7", "faces", "specific")
	v, _ = ix.Get("01", "run-7", "faces")
	assert.Equal(t, "specific", v, "concrete entry wins over unscoped")

	v, _ = ix.Get("01", "run-8", "faces")
	assert.Equal(t, "pooled", v)
}

// TestIndex_Overwrite verifies that overwriting keeps the original
// insertion position.
func TestIndex_Overwrite(t *testing.T) {
	ix := runindex.New[int]()
	ix.Set("a", "1", "x", 1)
	ix.Set("b", "1", "x", 2)
	ix.Set("a", "1", "x", 3)

	assert.Equal(t, 2, ix.Len())
	keys := ix.Keys()
	assert.Equal(t, "a", keys[0].Subject)
	v, _ := ix.Get("a", "1", "x")
	assert.Equal(t, 3, v)
}

// TestIndex_Lookup verifies filtered sub-index extraction: nil accepts
// every key, unscoped stored keys match any filter, insertion order is
// preserved.
func TestIndex_Lookup(t *testing.T) {
	ix := runindex.New[string]()
	ix.Set("01", "run-1", "faces", "a")
	ix.Set("01", "run-2", "faces", "b")
	ix.Set("02", "run-1", "faces", "c")
	ix.Set("03", runindex.Unscoped, "faces", "d")

	sub := ix.Lookup(strp("01"), nil, nil)
	assert.Equal(t, 2, sub.Len())

	runs := ix.Lookup(nil, strp("run-1"), nil)
	require.Equal(t, 3, runs.Len(), "unscoped run entry matches the run filter")
	keys := runs.Keys()
	assert.Equal(t, "01", keys[0].Subject)
	assert.Equal(t, "02", keys[1].Subject)
	assert.Equal(t, "03", keys[2].Subject)
}

// TestIndex_Transpose verifies the subject/run swap.
func TestIndex_Transpose(t *testing.T) {
	ix := runindex.New[string]()
	ix.Set("01", "run-1", "faces", "a")
	ix.Set("02", "run-1", "houses", "b")

	tr := ix.Transpose()
	v, ok := tr.Get("run-1", "01", "faces")
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, tr.Len())
}

// TestIndex_Collapse verifies that collapsing is explicit and only
// succeeds on a single-entry index.
func TestIndex_Collapse(t *testing.T) {
	ix := runindex.New[string]()
	_, ok := ix.Collapse()
	assert.False(t, ok)

	ix.Set("01", runindex.Unscoped, runindex.Unscoped, "only")
	v, ok := ix.Collapse()
	require.True(t, ok)
	assert.Equal(t, "only", v)

	ix.Set("02", runindex.Unscoped, runindex.Unscoped, "second")
	_, ok = ix.Collapse()
	assert.False(t, ok)
}

// TestIndex_Delete verifies exact-key removal and order maintenance.
func TestIndex_Delete(t *testing.T) {
	ix := runindex.New[int]()
	ix.Set("a", "1", "x", 1)
	ix.Set("b", "1", "x", 2)
	ix.Set("c", "1", "x", 3)

	ix.Delete("b", "1", "x")
	assert.Equal(t, 2, ix.Len())
	keys := ix.Keys()
	assert.Equal(t, "a", keys[0].Subject)
	assert.Equal(t, "c", keys[1].Subject)

	ix.Delete("zz", "1", "x") // absent keys are a no-op
	assert.Equal(t, 2, ix.Len())
}
