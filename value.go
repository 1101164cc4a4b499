package jsontree

import "math"

// A Kind identifies the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid kind"
}

type member struct {
	key   string
	value *Value
}

// A Value is a node in a JSON tree: null, a boolean, a number, a
// string, an array or an object.  A Value exclusively owns its
// children: appending a Value to an array or setting it on an object
// hands it over to that container, and the caller must not give it to
// another container afterwards.  Strings are byte strings with an
// explicit length, so contents decoded from \u0000 escapes are
// preserved.
//
// A Value tree is not safe for concurrent mutation.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []*Value
	members []member
}

// NewNull returns a new null Value.
func NewNull() *Value {
	return &Value{kind: Null}
}

// NewBool returns a new boolean Value.
func NewBool(b bool) *Value {
	return &Value{kind: Bool, b: b}
}

// NewNumber returns a new number Value.  NaN and infinities have no
// JSON representation and are rejected with ErrInvalidNumber.
func NewNumber(x float64) (*Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, opError(ErrInvalidNumber, "number is NaN or infinity")
	}
	return &Value{kind: Number, n: x}, nil
}

// NewString returns a new string Value holding s.
func NewString(s string) *Value {
	return &Value{kind: String, s: s}
}

// NewArray returns a new empty array Value.
func NewArray() *Value {
	return &Value{kind: Array}
}

// NewObject returns a new empty object Value.
func NewObject() *Value {
	return &Value{kind: Object}
}

// Kind returns the variant of the Value.
func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) IsNull() bool   { return v != nil && v.kind == Null }
func (v *Value) IsBool() bool   { return v != nil && v.kind == Bool }
func (v *Value) IsNumber() bool { return v != nil && v.kind == Number }
func (v *Value) IsString() bool { return v != nil && v.kind == String }
func (v *Value) IsArray() bool  { return v != nil && v.kind == Array }
func (v *Value) IsObject() bool { return v != nil && v.kind == Object }

// Bool returns the boolean held by the Value, or false if it is not a
// boolean.
func (v *Value) Bool() bool {
	return v != nil && v.kind == Bool && v.b
}

// Number returns the number held by the Value, or 0 if it is not a
// number.
func (v *Value) Number() float64 {
	if v == nil || v.kind != Number {
		return 0
	}
	return v.n
}

// Str returns the string held by the Value, or "" if it is not a
// string.
func (v *Value) Str() string {
	if v == nil || v.kind != String {
		return ""
	}
	return v.s
}

// Len returns the number of elements of an array or the number of
// members of an object, and 0 for any other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Append adds item at the end of an array, transferring ownership of
// item to the array.
func (v *Value) Append(item *Value) error {
	if v == nil || item == nil {
		return opError(ErrNilValue, "array or item is nil")
	}
	if v.kind != Array {
		return opError(ErrInvalidType, "not an array")
	}
	v.items = append(v.items, item)
	return nil
}

// At returns the array element at index i.
func (v *Value) At(i int) (*Value, error) {
	if v == nil {
		return nil, opError(ErrNilValue, "array is nil")
	}
	if v.kind != Array {
		return nil, opError(ErrInvalidType, "not an array")
	}
	if i < 0 || i >= len(v.items) {
		return nil, opError(ErrIndexOutOfBounds, "index %d out of bounds (array has %d elements)", i, len(v.items))
	}
	return v.items[i], nil
}

// RemoveAt removes the array element at index i, shifting the
// remaining elements down.
func (v *Value) RemoveAt(i int) error {
	if v == nil {
		return opError(ErrNilValue, "array is nil")
	}
	if v.kind != Array {
		return opError(ErrInvalidType, "not an array")
	}
	if i < 0 || i >= len(v.items) {
		return opError(ErrIndexOutOfBounds, "index %d out of bounds (array has %d elements)", i, len(v.items))
	}
	copy(v.items[i:], v.items[i+1:])
	v.items[len(v.items)-1] = nil
	v.items = v.items[:len(v.items)-1]
	return nil
}

// Set associates key with item in an object, transferring ownership
// of item to the object.  Setting an existing key replaces its value
// in place: the member keeps its position in insertion order.
func (v *Value) Set(key string, item *Value) error {
	if v == nil || item == nil {
		return opError(ErrNilValue, "object or item is nil")
	}
	if v.kind != Object {
		return opError(ErrInvalidType, "not an object")
	}
	for i := range v.members {
		if v.members[i].key == key {
			v.members[i].value = item
			return nil
		}
	}
	v.members = append(v.members, member{key: key, value: item})
	return nil
}

// Get returns the value associated with key in an object.
func (v *Value) Get(key string) (*Value, error) {
	if v == nil {
		return nil, opError(ErrNilValue, "object is nil")
	}
	if v.kind != Object {
		return nil, opError(ErrInvalidType, "not an object")
	}
	for i := range v.members {
		if v.members[i].key == key {
			return v.members[i].value, nil
		}
	}
	return nil, opError(ErrKeyNotFound, "%q", key)
}

// Has reports whether an object has a member with the given key.
func (v *Value) Has(key string) bool {
	if v == nil || v.kind != Object {
		return false
	}
	for i := range v.members {
		if v.members[i].key == key {
			return true
		}
	}
	return false
}

// Remove deletes the member with the given key from an object,
// preserving the order of the remaining members.
func (v *Value) Remove(key string) error {
	if v == nil {
		return opError(ErrNilValue, "object is nil")
	}
	if v.kind != Object {
		return opError(ErrInvalidType, "not an object")
	}
	for i := range v.members {
		if v.members[i].key == key {
			copy(v.members[i:], v.members[i+1:])
			v.members[len(v.members)-1] = member{}
			v.members = v.members[:len(v.members)-1]
			return nil
		}
	}
	return opError(ErrKeyNotFound, "%q", key)
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.members))
	for i := range v.members {
		keys[i] = v.members[i].key
	}
	return keys
}

// ToGo converts the tree to plain Go values: nil, bool, float64,
// string, []any and map[string]any.  Object insertion order is lost
// in the map representation.
func (v *Value) ToGo() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.b
	case Number:
		return v.n
	case String:
		return v.s
	case Array:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.ToGo()
		}
		return items
	case Object:
		obj := make(map[string]any, len(v.members))
		for i := range v.members {
			obj[v.members[i].key] = v.members[i].value.ToGo()
		}
		return obj
	}
	return nil
}
