package freelist

import "reflect"

// Dropper is implemented by element types that own resources which must be
// released when the list discards a value.
//
// The list calls Drop exactly once for every value it discards: a value
// offered to Alloc on a full list, and every live value at Clear or
// Release. Values returned by Free belong to the caller and are not
// dropped by the list.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// implementsDropper reports whether T or *T implements Dropper.
func implementsDropper[T any]() bool {
	t := reflect.TypeFor[T]()
	return t.Implements(dropperType) || reflect.PointerTo(t).Implements(dropperType)
}

// dropValue calls Drop on *p. Pointer receivers are tried first so that
// Drop can mutate the stored value.
func dropValue[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
}

// hasPointers reports whether values of T reference memory the garbage
// collector tracks, in which case removed values are zeroed.
func hasPointers[T any]() bool {
	return typeHasPointers(reflect.TypeFor[T]())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
