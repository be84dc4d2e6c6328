package copy

import "reflect"

// arrayWalker binds the generic array copier (spec §4.D step 3): Go fixed
// arrays are value types, so there is no identity to record in refs — a
// cycle can never pass purely through array indices without a pointer/
// slice/map indirection somewhere on the path (see cycles.dfs).
func arrayWalker(t reflect.Type) walkerFunc {
	return func(v reflect.Value, refs *RefMap) (reflect.Value, error) {
		y := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			elemCopy, err := CopyValue(v.Index(i), refs)
			if err != nil {
				return reflect.Value{}, err
			}
			y.Index(i).Set(elemCopy)
		}
		return y, nil
	}
}

// sliceWalker is the well-known copier for slices (spec §4.D step 5): a
// fresh backing array, sharing/cycle preservation recorded before elements
// are copied so a slice that (through an interface element) holds a
// reference back to itself resolves correctly.
func sliceWalker(t reflect.Type) walkerFunc {
	return func(v reflect.Value, refs *RefMap) (reflect.Value, error) {
		y := reflect.MakeSlice(t, v.Len(), v.Len())
		refs.Set(v, y)
		for i := 0; i < v.Len(); i++ {
			elemCopy, err := CopyValue(v.Index(i), refs)
			if err != nil {
				return reflect.Value{}, err
			}
			y.Index(i).Set(elemCopy)
		}
		return y, nil
	}
}

// mapWalker is the well-known copier for maps (spec §4.D step 5).
func mapWalker(t reflect.Type) walkerFunc {
	return func(v reflect.Value, refs *RefMap) (reflect.Value, error) {
		y := reflect.MakeMapWithSize(t, v.Len())
		refs.Set(v, y)
		iter := v.MapRange()
		for iter.Next() {
			key, err := CopyValue(iter.Key(), refs)
			if err != nil {
				return reflect.Value{}, err
			}
			val, err := CopyValue(iter.Value(), refs)
			if err != nil {
				return reflect.Value{}, err
			}
			y.SetMapIndex(key, val)
		}
		return y, nil
	}
}
