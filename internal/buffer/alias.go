package buffer

import "reflect"

// Aliased reports whether two handles are backed by the same object.
// Using one object as both the input and the output of an operation is
// a borrow conflict: the write side would mutate bytes the read side
// is still consuming.
func Aliased(a, b Handle) bool {
	if a == b {
		return true
	}
	ka, kb := backingKey(a), backingKey(b)
	return ka != 0 && ka == kb
}

// backingKey identifies the storage behind a handle. Zero means no
// stable identity (streams, empty views); such handles never alias.
func backingKey(h Handle) uintptr {
	switch t := h.(type) {
	case *Memory:
		return reflect.ValueOf(t).Pointer()
	case *Fixed:
		return sliceKey(t.buf)
	case *Slice:
		if k := sliceKey(*t.ptr); k != 0 {
			return k
		}
		return reflect.ValueOf(t.ptr).Pointer()
	case *Foreign:
		return sliceKey(t.bytes())
	case *File:
		return reflect.ValueOf(t.f).Pointer()
	default:
		return 0
	}
}

// sliceKey returns the address of a slice's first element. Empty
// slices carry no identity.
func sliceKey(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return reflect.ValueOf(b).Pointer()
}
