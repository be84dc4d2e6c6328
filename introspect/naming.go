package introspect

import (
	"reflect"
	"strings"
)

// NormalizeFieldName lower-cases f and strips the pack's backing-field
// underscore convention (`_name` backing a `Name()` getter), the closest Go
// idiom to the source platform's compiler-generated
// `<Name>k__BackingField` naming convention. The deep copier's
// constructor binding (copy/construct.go's matchByName) also compares a
// parameter name and a read-only field name through NormalizeFieldName, so
// they match regardless of casing convention.
func NormalizeFieldName(name string) string {
	name = strings.TrimPrefix(name, "_")
	return strings.ToLower(name)
}

// IsBackingField reports whether f looks like a hand-written backing field
// for an exported getter on owner: unexported, with owner declaring a
// zero-argument method whose normalized name matches f's normalized name
// and whose return type matches f's type.
//
// This is brittle by nature (spec §9 flags the equivalent compiler-marker
// convention as acceptable "only when paired with a presence check for the
// auto-property marker attribute"); Go has no such marker attribute to pair
// it with, so IsBackingField is a naming-convention fallback only, never
// load-bearing for a derivation's correctness — the mutability analyzer
// reasons about declared field types directly, never about whether a field
// "looks like" a backing field.
func IsBackingField(owner reflect.Type, f Field) bool {
	if f.Exported() {
		return false
	}
	normalized := NormalizeFieldName(f.Name)
	getterName := capitalize(normalized)
	m, ok := owner.MethodByName(getterName)
	if !ok {
		return false
	}
	mt := m.Func.Type()
	return mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0) == f.Type
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
