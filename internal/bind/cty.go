package bind

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ToCty converts a native Go value into a cty.Value. Values whose type gocty can
// infer are converted directly; string-keyed maps and slices holding mixed
// values become objects and tuples. NaN has no cty representation and is
// reported as an error.
func ToCty(v any) (val cty.Value, err error) {
	// cty panics on NaN, wherever it sits inside v.
	defer func() {
		if r := recover(); r != nil {
			val, err = cty.NilVal, fmt.Errorf("no cty representation for %T: %v", v, r)
		}
	}()
	return toCty(v)
}

func toCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return t, nil
	case *big.Float:
		if t == nil {
			return cty.NullVal(cty.Number), nil
		}
		return cty.NumberVal(new(big.Float).Copy(t)), nil
	}

	if ty, err := gocty.ImpliedType(v); err == nil {
		return gocty.ToCtyValue(v, ty)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return cty.NilVal, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		if rv.Len() == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			val, err := toCty(iter.Value().Interface())
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute '%s': %w", key, err)
			}
			attrs[key] = val
		}
		return cty.ObjectVal(attrs), nil

	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := toCty(rv.Index(i).Interface())
			if err != nil {
				return cty.NilVal, fmt.Errorf("in element %d: %w", i, err)
			}
			elems[i] = val
		}
		return cty.TupleVal(elems), nil

	default:
		return cty.NilVal, fmt.Errorf("no cty representation for Go type %T", v)
	}
}

// ToNative converts a cty.Value into its generic Go form: string, bool,
// []any, map[string]any or a number. Whole numbers become int64, or *big.Float
// when they do not fit; other numbers become float64. Null and unknown values
// become nil.
func ToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return nativeNumber(v.AsBigFloat()), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ToNative(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			keyStr := key.AsString()
			native, err := ToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = native
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported cty type for native conversion: %s", ty.FriendlyName())
	}
}

func nativeNumber(f *big.Float) any {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return i
		}
		return f
	}
	n, _ := f.Float64()
	return n
}

// ImpliedType returns the cty type gocty infers for the Go type t. Fields of
// type cty.Value accept anything and report cty.DynamicPseudoType; interface
// types and types without a cty equivalent report an error.
func ImpliedType(t reflect.Type) (cty.Type, error) {
	if t == ctyValueType {
		return cty.DynamicPseudoType, nil
	}
	if t.Kind() == reflect.Interface {
		return cty.NilType, fmt.Errorf("no cty.Type for interface type %s", t)
	}
	return gocty.ImpliedType(reflect.Zero(t).Interface())
}
