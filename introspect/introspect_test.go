package introspect

import (
	"reflect"
	"testing"
)

type embeddedBase struct {
	ID int
}

type withEmbed struct {
	embeddedBase
	Name    string
	private string `induct:"readonly"`
}

func (w withEmbed) String() string { return w.Name }

func TestFieldsOfIncludesPromotedFieldsBaseFirst(t *testing.T) {
	fields := FieldsOf(reflect.TypeOf(withEmbed{}))

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}

	want := []string{"ID", "Name", "private"}
	if len(names) != len(want) {
		t.Fatalf("got fields %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got fields %v, want %v", names, want)
		}
	}
}

func TestFieldReadOnlyTag(t *testing.T) {
	fields := FieldsOf(reflect.TypeOf(withEmbed{}))
	for _, f := range fields {
		if f.Name == "private" && !f.ReadOnly() {
			t.Fatal("expected private field to be read-only via induct tag")
		}
		if f.Name == "Name" && f.ReadOnly() {
			t.Fatal("expected Name field to not be read-only")
		}
	}
}

func TestClassifyKind(t *testing.T) {
	cases := []struct {
		name string
		t    reflect.Type
		want Kind
	}{
		{"int", reflect.TypeOf(0), KindPlain},
		{"pointer", reflect.TypeOf(new(int)), KindPointer},
		{"slice", reflect.TypeOf([]int{}), KindReference},
		{"map", reflect.TypeOf(map[string]int{}), KindReference},
		{"chan", reflect.TypeOf(make(chan int)), KindReference},
		{"struct", reflect.TypeOf(withEmbed{}), KindPlain},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyKind(c.t); got != c.want {
				t.Fatalf("ClassifyKind(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestSubtypes(t *testing.T) {
	stringerType := reflect.TypeOf((*interface{ String() string })(nil)).Elem()
	if !Subtypes(reflect.TypeOf(withEmbed{}), stringerType) {
		t.Fatal("withEmbed should satisfy an inline String() interface")
	}
	if !Subtypes(reflect.TypeOf(0), reflect.TypeOf(0)) {
		t.Fatal("a type is always its own subtype")
	}
	if IsStrictSubtype(reflect.TypeOf(0), reflect.TypeOf(0)) {
		t.Fatal("a type is never a strict subtype of itself")
	}
}

func TestNormalizeFieldName(t *testing.T) {
	cases := map[string]string{
		"_name": "name",
		"Name":  "name",
		"name":  "name",
	}
	for in, want := range cases {
		if got := NormalizeFieldName(in); got != want {
			t.Fatalf("NormalizeFieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

type getterOwner struct {
	name string
}

func (g getterOwner) Name() string { return g.name }

func TestIsBackingField(t *testing.T) {
	owner := reflect.TypeOf(getterOwner{})
	fields := FieldsOf(owner)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if !IsBackingField(owner, fields[0]) {
		t.Fatal("expected `name` to be recognized as backing field for Name()")
	}
}

type withCtor struct {
	x int
}

func TestConstructorsOf(t *testing.T) {
	typ := reflect.TypeOf(withCtor{})
	RegisterConstructor(typ, Constructor{
		Params: []Param{{Name: "x", Type: reflect.TypeOf(0)}},
		New: func(args []reflect.Value) reflect.Value {
			return reflect.ValueOf(withCtor{x: int(args[0].Int())})
		},
	})

	if HasNoArgConstructor(typ) {
		// struct kind always has an implicit zero-value constructor
	} else {
		t.Fatal("struct types always have a no-arg (zero value) constructor")
	}

	cs := ConstructorsOf(typ)
	if len(cs) != 1 || len(cs[0].Params) != 1 {
		t.Fatalf("expected 1 registered 1-arg constructor, got %+v", cs)
	}
}

func TestDescriptorOfIsCached(t *testing.T) {
	d1 := Of(reflect.TypeOf(withEmbed{}))
	d2 := Of(reflect.TypeOf(withEmbed{}))
	if d1 != d2 {
		t.Fatal("expected Of to return the cached descriptor pointer")
	}
	if len(d1.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(d1.Fields))
	}
}

type pureMarked struct{}

func TestPurityRegistration(t *testing.T) {
	typ := reflect.TypeOf(pureMarked{})
	if IsPureType(typ) {
		t.Fatal("should not be pure before registration")
	}
	RegisterPure(typ)
	if !IsPureType(typ) {
		t.Fatal("should be pure after registration")
	}
}

func TestMethodsAllPureCuratedInterface(t *testing.T) {
	// withEmbed implements fmt.Stringer via String(); Stringer is curated
	// observation-only, so its sole method should be considered pure.
	typ := reflect.TypeOf(withEmbed{})
	if !MethodsAllPure(typ) {
		t.Fatal("expected withEmbed's only method (String, via fmt.Stringer) to be pure")
	}
}

type mutator struct{ n int }

func (m *mutator) Bump() { m.n++ }

func TestMethodsAllPureRejectsUncuratedMethod(t *testing.T) {
	if MethodsAllPure(reflect.TypeOf(mutator{})) {
		t.Fatal("Bump is not a curated/getter/setter method and should not be pure")
	}
}
