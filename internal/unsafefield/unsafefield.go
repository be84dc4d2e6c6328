// Package unsafefield lets the copy and equality walkers reach unexported
// struct fields the same way reflect.DeepEqual and encoding/json's own
// internals do: by rebuilding a reflect.Value at the same address with its
// read-only flag cleared. Grounded on the pack's own
// other_examples/brunoga-deep__equal.go, which does the identical thing
// through its internal/unsafe.DisableRO helper before comparing two struct
// fields that fail CanInterface.
package unsafefield

import (
	"reflect"
	"unsafe"
)

// Writable returns a reflect.Value for the same field addressed by v, but
// with the unexported-field restriction lifted, so it can be read via
// Interface() or written via Set(). v must be addressable — struct fields
// reached from an addressable struct (one allocated via reflect.New, not a
// bare reflect.ValueOf(x)) always are.
func Writable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// Readable returns a value equivalent to v that can safely be passed to
// Interface(), lifting the read-only restriction on an unexported field
// without requiring the caller to also want write access.
func Readable(v reflect.Value) reflect.Value {
	if v.CanInterface() {
		return v
	}
	return Writable(v)
}
