package introspect

import (
	"reflect"
	"strings"
	"sync"
)

var (
	pureMu      sync.RWMutex
	pureTypes   = map[reflect.Type]bool{}
	pureMethods = map[reflect.Type]map[string]bool{}
)

// RegisterPure marks t as carrying a purity attribute (spec §4.B whitelist:
// "any type explicitly marked with a purity attribute"). Go has no
// attribute system reflect can see at runtime, so purity is opt-in via this
// registration call instead of a `[Pure]`-style annotation — callers
// typically do this from an init() beside the type declaration.
func RegisterPure(t reflect.Type) {
	pureMu.Lock()
	defer pureMu.Unlock()
	pureTypes[t] = true
}

// RegisterPureMethod marks a single method of t as pure without marking the
// whole type immutable.
func RegisterPureMethod(t reflect.Type, method string) {
	pureMu.Lock()
	defer pureMu.Unlock()
	if pureMethods[t] == nil {
		pureMethods[t] = map[string]bool{}
	}
	pureMethods[t][method] = true
}

// IsPureType reports whether t was registered as pure.
func IsPureType(t reflect.Type) bool {
	pureMu.RLock()
	defer pureMu.RUnlock()
	return pureTypes[t]
}

func isPureMethodRegistered(t reflect.Type, method string) bool {
	pureMu.RLock()
	defer pureMu.RUnlock()
	return pureMethods[t] != nil && pureMethods[t][method]
}

// IsPureMethod reports whether method m of type t is pure under spec
// §4.B's rule set:
//
//	(a) inherited from a curated observation-only interface,
//	(b) explicitly registered via RegisterPureMethod,
//	(c) an auto-generated property getter,
//	(d) a private auto-generated property setter,
//	(e) a static method not accepting T as any parameter.
//
// Go has no properties, so (c)/(d) are realized against the pack's own
// getter/setter naming convention (naming.go): a zero-argument exported
// method returning exactly the type of an unexported field with the same
// normalized name is a getter; an unexported method named "set<Field>"
// taking exactly that field's type and returning nothing is a setter.
// Rule (e) is unrealizable in Go — every method carries T as its receiver
// by construction — and is dropped; dropping it only shrinks the set of
// methods considered pure, which is conservative in the direction the spec
// prefers (see DESIGN.md).
func IsPureMethod(t reflect.Type, m reflect.Method) bool {
	if implementsCuratedMethod(t, m.Name) {
		return true
	}
	if isPureMethodRegistered(t, m.Name) {
		return true
	}
	if isAutoGetter(t, m) || isAutoSetter(t, m) {
		return true
	}
	return false
}

// isAutoGetter matches `func (T) Name() FieldType` where an unexported
// field with the normalized name `name` exists on T with the same type.
func isAutoGetter(t reflect.Type, m reflect.Method) bool {
	mt := m.Func.Type()
	// mt.In(0) is the receiver; a getter takes no further args and returns
	// exactly one value.
	if mt.NumIn() != 1 || mt.NumOut() != 1 {
		return false
	}
	fieldName := NormalizeFieldName(m.Name)
	structType := derefStruct(t)
	if structType == nil {
		return false
	}
	f, ok := structType.FieldByName(fieldName)
	if !ok {
		return false
	}
	return !f.IsExported() && f.Type == mt.Out(0)
}

// isAutoSetter matches an unexported `func (T) setName(FieldType)` with no
// return values.
func isAutoSetter(t reflect.Type, m reflect.Method) bool {
	if len(m.Name) == 0 || m.Name[0] < 'a' || m.Name[0] > 'z' {
		return false
	}
	if !strings.HasPrefix(m.Name, "set") || len(m.Name) <= len("set") {
		return false
	}
	mt := m.Func.Type()
	if mt.NumIn() != 2 || mt.NumOut() != 0 {
		return false
	}
	fieldName := NormalizeFieldName(strings.TrimPrefix(m.Name, "set"))
	structType := derefStruct(t)
	if structType == nil {
		return false
	}
	f, ok := structType.FieldByName(fieldName)
	if !ok {
		return false
	}
	return !f.IsExported() && f.Type == mt.In(1)
}

func derefStruct(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// MethodsAllPure reports whether every method declared on t (or *t) is pure
// under IsPureMethod — the precondition spec §4.B uses, alongside "not
// init-only and publicly exposed", to decide whether a non-final type's
// field can be treated as effectively read-only.
//
// reflect.Type.NumMethod/Method only ever exposes a concrete type's
// exported methods (unexported ones are visible only through an interface
// value), so rule (d) — a private setter is pure — can never actually
// trigger for a struct type reached this way. isAutoSetter only matches
// methods of a struct or pointer-to-struct t, so rule (d) does not apply to
// an interface-typed t either; it is kept for direct callers of
// IsPureMethod.
func MethodsAllPure(t reflect.Type) bool {
	seen := map[string]bool{}
	candidates := []reflect.Type{t}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		candidates = append(candidates, reflect.PointerTo(t))
	}
	for _, candidate := range candidates {
		for i := 0; i < candidate.NumMethod(); i++ {
			m := candidate.Method(i)
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			if !IsPureMethod(t, m) {
				return false
			}
		}
	}
	return true
}
