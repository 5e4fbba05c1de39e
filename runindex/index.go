package runindex

// Unscoped is the empty key component: an entry stored with Unscoped at
// some level answers queries for any concrete key at that level when no
// concrete entry matches.
const Unscoped = ""

// Key addresses one entry of the index.
type Key struct {
	Subject   string
	Run       string
	Condition string
}

// Index is a three-level keyed map with insertion-order iteration.
// The zero value is not usable; call New.
type Index[V any] struct {
	entries map[Key]V
	order   []Key
}

// New returns an empty index.
func New[V any]() *Index[V] {
	return &Index[V]{entries: make(map[Key]V)}
}

// Len returns the number of stored entries.
func (ix *Index[V]) Len() int { return len(ix.order) }

// Keys returns the stored keys in insertion order.
func (ix *Index[V]) Keys() []Key {
	out := make([]Key, len(ix.order))
	copy(out, ix.order)

	return out
}

// Set stores v under (subject, run, condition). Overwriting an existing
// key keeps its original position.
func (ix *Index[V]) Set(subject, run, condition string, v V) {
	k := Key{Subject: subject, Run: run, Condition: condition}
	if _, ok := ix.entries[k]; !ok {
		ix.order = append(ix.order, k)
	}
	ix.entries[k] = v
}

// Get resolves (subject, run, condition) with unscoped fallback: the
// exact key wins; otherwise candidates with Unscoped substituted at one
// or more levels are tried in decreasing specificity, subject level most
// significant.
func (ix *Index[V]) Get(subject, run, condition string) (V, bool) {
	for _, s := range fallback(subject) {
		for _, r := range fallback(run) {
			for _, c := range fallback(condition) {
				if v, ok := ix.entries[Key{Subject: s, Run: r, Condition: c}]; ok {
					return v, true
				}
			}
		}
	}
	var zero V

	return zero, false
}

// Delete removes the exact key, if present.
func (ix *Index[V]) Delete(subject, run, condition string) {
	k := Key{Subject: subject, Run: run, Condition: condition}
	if _, ok := ix.entries[k]; !ok {
		return
	}
	delete(ix.entries, k)
	for i, o := range ix.order {
		if o == k {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the sub-index of entries matching the given filters. A
// nil filter accepts every key at that level; an Unscoped stored key
// matches any requested filter. Insertion order is preserved.
func (ix *Index[V]) Lookup(subject, run, condition *string) *Index[V] {
	out := New[V]()
	for _, k := range ix.order {
		if !levelMatch(k.Subject, subject) ||
			!levelMatch(k.Run, run) ||
			!levelMatch(k.Condition, condition) {
			continue
		}
		out.Set(k.Subject, k.Run, k.Condition, ix.entries[k])
	}

	return out
}

// Transpose returns a new index with the subject and run levels swapped,
// in insertion order.
func (ix *Index[V]) Transpose() *Index[V] {
	out := New[V]()
	for _, k := range ix.order {
		out.Set(k.Run, k.Subject, k.Condition, ix.entries[k])
	}

	return out
}

// Collapse returns the value when the index holds exactly one entry.
func (ix *Index[V]) Collapse() (V, bool) {
	if len(ix.order) != 1 {
		var zero V

		return zero, false
	}

	return ix.entries[ix.order[0]], true
}

// fallback lists the key components Get may match at one level: the
// concrete key, then Unscoped.
func fallback(k string) []string {
	if k == Unscoped {
		return []string{Unscoped}
	}

	return []string{k, Unscoped}
}

// levelMatch reports whether a stored key component satisfies a filter.
func levelMatch(stored string, filter *string) bool {
	return filter == nil || stored == *filter || stored == Unscoped
}
