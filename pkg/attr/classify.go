package attr

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// From converts an arbitrary Go value into a Value.
//
// Recognised inputs:
//   - nil, nil pointers and false become Absent; true becomes Present
//   - strings, Symbol, integers and floats become scalars; byte slices
//     become String
//   - ToText and fmt.Stringer implementations become Coercible
//   - slices and arrays become List
//   - map[K]struct{} becomes Set
//   - other maps with string keys become Map, keys sorted; a Symbol key type
//     makes the keys identifier-style. map[string]bool is a Map of
//     presence flags, so true keys emit bare flattened names
//   - a Value is returned unchanged
//
// Anything else fails with a *CoercionError.
func From(v any) (Value, error) {
	return defaultNormalizer.classify("", v, 0)
}

// From converts v into a Value using the Normalizer's depth limit.
func (n *Normalizer) From(v any) (Value, error) {
	return n.classify("", v, 0)
}

var (
	symbolType = reflect.TypeOf(Symbol(""))
	emptyType  = reflect.TypeOf(struct{}{})
)

func (n *Normalizer) classify(name string, v any, depth int) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Absent{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case []byte:
		if val == nil {
			return Absent{}, nil
		}
		return String(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return Uint(val), nil
	case uint8:
		return Uint(val), nil
	case uint16:
		return Uint(val), nil
	case uint32:
		return Uint(val), nil
	case uint64:
		return Uint(val), nil
	case float32:
		return float32Value(val), nil
	case float64:
		return Float(val), nil
	case ToText:
		if isNilPointer(val) {
			return Absent{}, nil
		}
		return Coercible{V: val}, nil
	case fmt.Stringer:
		if isNilPointer(val) {
			return Absent{}, nil
		}
		return Coercible{V: stringerText{s: val}}, nil
	}

	if depth >= n.maxDepth {
		return nil, shapeErr(name, KindAbsent, ErrTooDeep, "nesting exceeds %d levels", n.maxDepth)
	}
	return n.classifyReflect(name, reflect.ValueOf(v), depth)
}

// classifyReflect handles named types and containers.
func (n *Normalizer) classifyReflect(name string, rv reflect.Value, depth int) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Absent{}, nil
		}
		return n.classify(name, rv.Elem().Interface(), depth+1)

	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		if rv.Type() == symbolType {
			return Symbol(rv.String()), nil
		}
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return float32Value(float32(rv.Float())), nil
	case reflect.Float64:
		return Float(rv.Float()), nil

	case reflect.Slice:
		if rv.IsNil() {
			return Absent{}, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(rv.Bytes()), nil
		}
		fallthrough
	case reflect.Array:
		list := make(List, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el, err := n.classify(name, rv.Index(i).Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, el)
		}
		return list, nil

	case reflect.Map:
		if rv.IsNil() {
			return Absent{}, nil
		}
		return n.classifyMap(name, rv, depth)
	}

	return nil, coercionErr(name, rv.Interface())
}

// classifyMap turns Go maps into a Set or a Map with sorted keys.
func (n *Normalizer) classifyMap(name string, rv reflect.Value, depth int) (Value, error) {
	typ := rv.Type()

	if typ.Elem() == emptyType {
		set := make(Set, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			el, err := n.classify(name, iter.Key().Interface(), depth+1)
			if err != nil {
				return nil, err
			}
			set = append(set, el)
		}
		return set, nil
	}

	if typ.Key().Kind() != reflect.String {
		return nil, coercionErr(name, rv.Interface())
	}
	symbolic := typ.Key() == symbolType

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)

	m := make(Map, 0, len(keys))
	for _, k := range keys {
		key := Key{Name: k, Symbolic: symbolic}
		child := key.Segment()
		if name != "" {
			child = name + "-" + child
		}
		val, err := n.classify(child, rv.MapIndex(reflect.ValueOf(k).Convert(typ.Key())).Interface(), depth+1)
		if err != nil {
			return nil, err
		}
		m = append(m, Field{Key: key, Value: val})
	}
	return m, nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// float32Value keeps the shortest float32 text so 0.1 stays 0.1 after widening.
func float32Value(f float32) Float {
	wide, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return Float(f)
	}
	return Float(wide)
}
