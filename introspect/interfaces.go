package introspect

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// equatable, comparer, and cloneable are marker interfaces standing in for
// the source platform's IEquatable<T>, IComparer<T>, and ICloneable — Go has
// no generic self-referential built-in equivalent, so the pack's own
// convention (an Equal/Compare/Clone method taking/returning `any`) is used
// instead. A type opts into the curated observation-only set by
// implementing one of these with any signature reflect can see.
type equatable interface{ Equal(any) bool }
type comparer interface{ Compare(any) int }
type cloneable interface{ Clone() any }

// curatedObservationOnly mirrors spec §4.B(a)'s list of interfaces whose
// methods never mutate the receiver: Formattable -> fmt.Stringer,
// Convertible -> json.Marshaler/encoding.TextMarshaler, Cloneable ->
// cloneable, Comparable/Equatable -> equatable, Comparer -> comparer,
// OrderedEnumerable/OrderedQueryable/Queryable have no faithful Go analogue
// that is also guaranteed observation-only (sort.Interface's Swap mutates
// the receiver, so it is deliberately excluded) — they, along with the
// source platform's Reflect, ServiceProvider, platform root, value-type
// root, and tuple interface, are omitted (documented in DESIGN.md);
// dropping members only makes the purity check more conservative, never
// less, which is the safe direction for a classifier that defaults to
// Mutable/Maybe on uncertainty.
var curatedObservationOnly = []reflect.Type{
	reflect.TypeOf((*fmt.Stringer)(nil)).Elem(),
	reflect.TypeOf((*error)(nil)).Elem(),
	reflect.TypeOf((*json.Marshaler)(nil)).Elem(),
	reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem(),
	reflect.TypeOf((*equatable)(nil)).Elem(),
	reflect.TypeOf((*comparer)(nil)).Elem(),
	reflect.TypeOf((*cloneable)(nil)).Elem(),
}

var (
	extraInterfacesMu sync.RWMutex
	extraInterfaces   []reflect.Type
)

// RegisterInterface extends the curated observation-only interface set used
// by the mutability analyzer's purity check. Intended for startup-time
// configuration only (see Options.PureInterfaces) — like OverrideCopier and
// OverrideCreate, concurrent registration races with concurrent readers are
// not synchronized against (spec §5).
func RegisterInterface(iface reflect.Type) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return
	}
	extraInterfacesMu.Lock()
	defer extraInterfacesMu.Unlock()
	extraInterfaces = append(extraInterfaces, iface)
}

func allCuratedInterfaces() []reflect.Type {
	extraInterfacesMu.RLock()
	defer extraInterfacesMu.RUnlock()
	out := make([]reflect.Type, 0, len(curatedObservationOnly)+len(extraInterfaces))
	out = append(out, curatedObservationOnly...)
	out = append(out, extraInterfaces...)
	return out
}

// InterfacesOf returns the set of interfaces t implements, drawn from the
// curated observation-only table plus anything registered via
// RegisterInterface (spec §4.A interfaces_of). It is not a general-purpose
// "every interface in the program t implements" query — Go's reflect
// package has no way to enumerate interface declarations, only to test
// whether a given interface is satisfied — so InterfacesOf is necessarily
// scoped to interfaces the caller (or the purity analyzer) already knows
// about.
func InterfacesOf(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}
	var out []reflect.Type
	for _, iface := range allCuratedInterfaces() {
		if t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface)) {
			out = append(out, iface)
		}
	}
	return out
}

// implementsCuratedMethod reports whether method name on t belongs to one
// of the curated observation-only interfaces implemented by t or *t.
func implementsCuratedMethod(t reflect.Type, methodName string) bool {
	for _, iface := range allCuratedInterfaces() {
		if !(t.Implements(iface) || reflect.PointerTo(t).Implements(iface)) {
			continue
		}
		for i := 0; i < iface.NumMethod(); i++ {
			if iface.Method(i).Name == methodName {
				return true
			}
		}
	}
	return false
}
