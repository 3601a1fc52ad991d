package format

import "reflect"

// cyclic reports whether v reaches itself again through a pointer, map,
// slice or interface. %v never terminates on such a value.
func cyclic(v any) bool {
	w := walker{
		onPath: map[node]bool{},
		done:   map[node]bool{},
	}

	return w.visit(reflect.ValueOf(v))
}

type node struct {
	ptr uintptr
	typ reflect.Type
}

type walker struct {
	onPath map[node]bool
	done   map[node]bool
}

func (w *walker) visit(val reflect.Value) bool {
	switch val.Kind() { //nolint:exhaustive
	case reflect.Interface:
		if val.IsNil() {
			return false
		}

		return w.visit(val.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return false
		}

		key := node{ptr: val.Pointer(), typ: val.Type()}

		if w.onPath[key] {
			return true
		}

		if w.done[key] {
			return false
		}

		w.onPath[key] = true
		found := w.children(val)

		delete(w.onPath, key)
		w.done[key] = true

		return found
	case reflect.Struct, reflect.Array:
		return w.children(val)
	default:
		return false
	}
}

func (w *walker) children(val reflect.Value) bool {
	switch val.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		return w.visit(val.Elem())
	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			if w.visit(iter.Key()) || w.visit(iter.Value()) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range val.Len() {
			if w.visit(val.Index(i)) {
				return true
			}
		}
	case reflect.Struct:
		for i := range val.NumField() {
			if w.visit(val.Field(i)) {
				return true
			}
		}
	}

	return false
}
