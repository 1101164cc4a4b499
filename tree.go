package jsontree

// Clone returns a deep copy of the tree.  The copy owns all of its
// children, so it can be handed to a container independently of the
// original.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	clone := &Value{kind: v.kind, b: v.b, n: v.n, s: v.s}
	switch v.kind {
	case Array:
		clone.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			clone.items[i] = item.Clone()
		}
	case Object:
		clone.members = make([]member, len(v.members))
		for i := range v.members {
			clone.members[i] = member{
				key:   v.members[i].key,
				value: v.members[i].value.Clone(),
			}
		}
	}
	return clone
}

// Equal reports whether two trees are structurally equal: same
// variant, same scalar value, same array order and same object key set
// with recursively equal values.  Object member order is not
// significant.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == nil && w == nil
	}
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == w.b
	case Number:
		return v.n == w.n
	case String:
		return v.s == w.s
	case Array:
		if len(v.items) != len(w.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(w.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.members) != len(w.members) {
			return false
		}
		for i := range v.members {
			other, err := w.Get(v.members[i].key)
			if err != nil || !v.members[i].value.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// Merge returns a new object holding a's members overlaid with b's:
// keys present in both take b's value.  Both arguments must be
// objects; neither is modified.
func Merge(a, b *Value) (*Value, error) {
	if a == nil || b == nil {
		return nil, opError(ErrNilValue, "cannot merge nil values")
	}
	if a.kind != Object || b.kind != Object {
		return nil, opError(ErrInvalidType, "can only merge objects")
	}
	merged := a.Clone()
	for i := range b.members {
		merged.Set(b.members[i].key, b.members[i].value.Clone())
	}
	return merged, nil
}
