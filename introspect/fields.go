package introspect

import (
	"reflect"
	"sort"
)

// Field describes one field reachable from a struct type, including fields
// promoted through anonymous (embedded) struct fields. It is the Go
// realization of the spec's "field descriptor": name, declared type, and an
// init-only flag (§3 Type descriptor, §4.A fields_of).
type Field struct {
	Name string
	Type reflect.Type
	Tag  reflect.StructTag
	// Index is the promotion path from the root struct, as used by
	// reflect.Value.FieldByIndex: len(Index) == 1 for a direct field,
	// longer for a field promoted through one or more embedded structs.
	Index []int
	// Anonymous is true when the field itself is an embedded (anonymous)
	// field, not a field reached through one.
	Anonymous bool
	// Declaring is the struct type that actually declares this field —
	// the root type for a direct field, or the innermost embedded type for
	// a promoted one.
	Declaring reflect.Type
}

// Exported reports whether the field is accessible outside its package.
func (f Field) Exported() bool {
	return f.Name != "" && f.Name[0] >= 'A' && f.Name[0] <= 'Z'
}

// ReadOnly reports whether the field is init-only: assignable only through
// a constructor, per the `induct:"readonly"` struct tag convention (Go has
// no init-only field modifier the way the source platform does; a struct
// tag is the idiomatic stand-in, matching how the pack's own field
// descriptors carry tag-driven metadata, e.g. `types.Field`'s `Tag` in the
// teacher's types/concrete_types.go).
func (f Field) ReadOnly() bool {
	_, ok := f.Tag.Lookup("induct")
	if !ok {
		return false
	}
	for _, part := range splitTag(f.Tag.Get("induct")) {
		if part == "readonly" {
			return true
		}
	}
	return false
}

// Ignored reports whether the field is excluded from every derivation via
// `induct:"-"`, mirroring the `deep:"-"` tag honored by
// other_examples/brunoga-deep__equal.go.
func (f Field) Ignored() bool {
	for _, part := range splitTag(f.Tag.Get("induct")) {
		if part == "-" {
			return true
		}
	}
	return false
}

func splitTag(s string) []string {
	if s == "" {
		return nil
	}
	var parts []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				parts = append(parts, s[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// FieldsOf returns the ordered field set of t, exported and unexported,
// including fields promoted through embedded structs, declaring
// (base/embedded) types first, matching declaration order within each
// declaring type — the same ordering rule as spec §4.A's fields_of.
// Non-struct types (including pointers to struct) have no fields of their
// own here; callers dereference pointers before calling FieldsOf.
func FieldsOf(t reflect.Type) []Field {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	visible := reflect.VisibleFields(t)
	fields := make([]Field, 0, len(visible))
	for _, sf := range visible {
		if sf.Anonymous && isPromotingEmbed(sf.Type) {
			// The embedded struct/interface itself is not a data field —
			// its own fields already appear in this list (with a longer
			// Index path) or, for an interface embed, it contributes
			// methods, not storage.
			continue
		}
		index := append([]int(nil), sf.Index...)
		declaring := t
		if len(index) > 1 {
			declaring = declaringType(t, index[:len(index)-1])
		}
		fields = append(fields, Field{
			Name:      sf.Name,
			Type:      sf.Type,
			Tag:       sf.Tag,
			Index:     index,
			Anonymous: sf.Anonymous,
			Declaring: declaring,
		})
	}
	// VisibleFields lists promoted fields at the position of their embed;
	// move more deeply embedded fields ahead so base types come first, the
	// stable sort keeping declaration order within each depth.
	sort.SliceStable(fields, func(i, j int) bool {
		return len(fields[i].Index) > len(fields[j].Index)
	})
	return fields
}

// isPromotingEmbed reports whether an anonymous field of type t promotes
// its own fields/methods rather than being itself the meaningful data —
// true for embedded structs (fields promoted separately), embedded
// pointers-to-struct (same), and embedded interfaces (methods only, no
// storage). An embedded scalar, slice, map, or pointer-to-non-struct has no
// separate promoted-field entries, so it is kept as a field in its own
// right.
func isPromotingEmbed(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return true
	}
	if t.Kind() == reflect.Struct {
		return true
	}
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		return true
	}
	return false
}

func declaringType(root reflect.Type, path []int) reflect.Type {
	cur := root
	for _, i := range path {
		if cur.Kind() == reflect.Pointer {
			cur = cur.Elem()
		}
		cur = cur.Field(i).Type
	}
	if cur.Kind() == reflect.Pointer {
		cur = cur.Elem()
	}
	return cur
}
