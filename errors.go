package typeinduct

import "github.com/pablor21/typeinduct/copy"

// ErrNoBindableConstructor is returned when a type's read-only fields
// cannot be absorbed by any of its registered constructors (spec §7 "No
// bindable constructor"). Defined in the copy package (see
// copy.ErrNoBindableConstructor's doc comment) and re-exported here so
// callers only need to import this package's error sentinels — the alias
// avoids a circular import between copy and typeinduct.
//
// The other two failure kinds spec §7 names do not carry a distinct Go
// sentinel:
//
//   - "Missing catch-all" (equality on a type with no declared fields)
//     never actually fails here — spec §4.E already states equality never
//     fails, and a zero-field struct's field-by-field predicate is
//     vacuously true, which is exactly the "null-aware reference equality"
//     fallback the spec describes, so no error path exists to name.
//   - "Mutability dispatch missing" describes a *static*-type system
//     needing a runtime dispatch thunk when an instance's concrete type
//     outruns its declared type's specialization. reflect.Type is always
//     the instance's concrete runtime type, so IsMutableValue classifies
//     it directly — there is no declared/runtime type gap to synthesize a
//     thunk for, and therefore nothing that can fail this way.
var ErrNoBindableConstructor = copy.ErrNoBindableConstructor
