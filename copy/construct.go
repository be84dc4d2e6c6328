package copy

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pablor21/typeinduct/internal/unsafefield"
	"github.com/pablor21/typeinduct/introspect"
)

// boundConstructor is the "best fit" outcome for a struct type's read-only
// fields (spec §4.D "Best-fit constructor selection"), computed once at
// synthesis time — the binding only depends on field names/types, not on
// any particular instance, so it is safe to compute during build() rather
// than per call.
type boundConstructor struct {
	ctor introspect.Constructor
	// paramSource[i] is the index into the read-only field slice supplying
	// constructor parameter i's value.
	paramSource []int
}

// structWalker synthesizes the constructor-driven walker for a struct type
// (spec §4.D step 6). Fields tagged `induct:"readonly"` must be threaded
// through a bindable constructor; every other field is assigned directly
// after allocation via reflect.New, which is always available in Go
// regardless of whether the package also exposes a New/NewT function
// (introspect.HasNoArgConstructor is true for every struct kind for this
// reason — see its doc comment), so the source platform's "T has no
// zero-argument constructor" fallback into the initializer map is
// unreachable here and is not modeled.
func structWalker(t reflect.Type) (walkerFunc, error) {
	fields := introspect.FieldsOf(t)

	var readOnly []introspect.Field
	for _, f := range fields {
		if f.Ignored() {
			continue
		}
		if f.ReadOnly() {
			readOnly = append(readOnly, f)
		}
	}

	var ctor *boundConstructor
	if len(readOnly) > 0 {
		bc, err := bestFitConstructor(t, readOnly)
		if err != nil {
			return nil, err
		}
		ctor = bc
	}

	return func(v reflect.Value, refs *RefMap) (reflect.Value, error) {
		return copyStruct(t, v, refs, fields, readOnly, ctor)
	}, nil
}

func copyStruct(
	t reflect.Type,
	v reflect.Value,
	refs *RefMap,
	fields, readOnly []introspect.Field,
	ctor *boundConstructor,
) (reflect.Value, error) {
	roPos := make(map[string]int, len(readOnly))
	for i, f := range readOnly {
		roPos[indexKey(f.Index)] = i
	}

	roValues := make([]reflect.Value, len(readOnly))
	type pendingField struct {
		field introspect.Field
		value reflect.Value
	}
	var pending []pendingField

	for _, f := range fields {
		if f.Ignored() {
			continue
		}
		fv := unsafefield.Readable(v.FieldByIndex(f.Index))
		copied, err := CopyValue(fv, refs)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("copy: field %s.%s: %w", t, f.Name, err)
		}
		if pos, ok := roPos[indexKey(f.Index)]; ok {
			roValues[pos] = copied
			continue
		}
		pending = append(pending, pendingField{field: f, value: copied})
	}

	y := reflect.New(t).Elem()
	if ctor != nil {
		args := make([]reflect.Value, len(ctor.ctor.Params))
		for pi, fi := range ctor.paramSource {
			args[pi] = roValues[fi]
		}
		built := ctor.ctor.New(args)
		if built.Kind() == reflect.Pointer && built.Type().Elem() == t {
			built = built.Elem()
		}
		y.Set(built)
	}

	for _, pf := range pending {
		dst := unsafefield.Writable(y.FieldByIndex(pf.field.Index))
		dst.Set(pf.value)
	}

	return y, nil
}

// bestFitConstructor implements spec §4.D's deterministic tie-break rule:
// match each parameter by lowercase-normalized name first, then by type
// against any still-unused field, and require every read-only field to be
// consumed — a constructor that only partially absorbs the read-only set is
// rejected rather than used to build a silently incomplete copy (spec §9
// open question, resolved in favor of failing).
func bestFitConstructor(t reflect.Type, fields []introspect.Field) (*boundConstructor, error) {
	for _, c := range introspect.ConstructorsOf(t) {
		used := make([]bool, len(fields))
		paramSource := make([]int, len(c.Params))
		ok := true

		for pi, p := range c.Params {
			match := matchByName(fields, used, p)
			if match == -1 {
				match = matchByType(fields, used, p)
			}
			if match == -1 {
				ok = false
				break
			}
			used[match] = true
			paramSource[pi] = match
		}
		if !ok {
			continue
		}
		if !allTrue(used) {
			continue
		}
		return &boundConstructor{ctor: c, paramSource: paramSource}, nil
	}
	return nil, fmt.Errorf("%w: %s has %d read-only field(s): %s",
		ErrNoBindableConstructor, t, len(fields), fieldNames(fields))
}

func matchByName(fields []introspect.Field, used []bool, p introspect.Param) int {
	target := introspect.NormalizeFieldName(p.Name)
	for i, f := range fields {
		if used[i] {
			continue
		}
		if introspect.NormalizeFieldName(f.Name) == target && f.Type == p.Type {
			return i
		}
	}
	return -1
}

func matchByType(fields []introspect.Field, used []bool, p introspect.Param) int {
	for i, f := range fields {
		if used[i] {
			continue
		}
		if f.Type == p.Type {
			return i
		}
	}
	return -1
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

func fieldNames(fields []introspect.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

func indexKey(idx []int) string {
	var b strings.Builder
	for i, n := range idx {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
