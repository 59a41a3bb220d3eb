package bind

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var ctyValueType = reflect.TypeOf(cty.Value{})

// Assign stores src into dst, which must be settable. A nil src resets dst to
// its zero value.
func Assign(ctx context.Context, src any, dst reflect.Value) error {
	if !dst.CanSet() {
		return fmt.Errorf("destination of type %s is not settable", dst.Type())
	}
	logger := ctxlog.FromContext(ctx).With("go_type", dst.Type().String())

	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	// Targets declared as cty.Value take the value as-is, converting natives first.
	if dst.Type() == ctyValueType {
		val, err := ToCty(src)
		if err != nil {
			return err
		}
		logger.Debug("Target is cty.Value, performing direct assignment.")
		dst.Set(reflect.ValueOf(val))
		return nil
	}

	if val, ok := src.(cty.Value); ok {
		return assignCty(ctx, val, dst)
	}

	srcVal := reflect.ValueOf(src)
	if srcVal.Type().AssignableTo(dst.Type()) {
		logger.Debug("Assigning value directly.", "source_type", srcVal.Type().String())
		dst.Set(srcVal)
		return nil
	}

	val, err := ToCty(src)
	if err != nil {
		return err
	}
	return assignCty(ctx, val, dst)
}

func assignCty(ctx context.Context, val cty.Value, dst reflect.Value) error {
	logger := ctxlog.FromContext(ctx)

	if val.IsNull() || !val.IsKnown() {
		logger.Debug("Skipping decode for null or unknown value.")
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	if dst.Kind() == reflect.Interface {
		return assignNative(val, dst)
	}

	impliedType, err := ImpliedType(dst.Type())
	if err != nil {
		// Types such as map[string]any have no cty equivalent; they can still
		// take the generic native form.
		logger.Debug("Could not imply cty.Type from Go type, attempting native assignment.", "go_type", dst.Type().String(), "error", err)
		if nerr := assignNative(val, dst); nerr != nil {
			return fmt.Errorf("cannot decode %s into Go type %s: %w", val.Type().FriendlyName(), dst.Type(), err)
		}
		return nil
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	target := reflect.New(dst.Type())
	if err := gocty.FromCtyValue(converted, target.Interface()); err != nil {
		return err
	}
	dst.Set(target.Elem())
	return nil
}

func assignNative(val cty.Value, dst reflect.Value) error {
	native, err := ToNative(val)
	if err != nil {
		return err
	}
	if native == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	nativeVal := reflect.ValueOf(native)
	if !nativeVal.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("cannot assign %s to Go type %s", nativeVal.Type(), dst.Type())
	}
	dst.Set(nativeVal)
	return nil
}
