package app

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/componentgo/internal/bind"
)

// formatValue renders v as an HCL literal when it is plain data, and as its Go
// type otherwise.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	if !isPlainData(reflect.TypeOf(v)) {
		return fmt.Sprintf("<%T>", v)
	}
	val, err := bind.ToCty(v)
	if err != nil {
		return fmt.Sprintf("<%T>", v)
	}
	return string(hclwrite.Format(hclwrite.TokensForValue(val).Bytes()))
}

func isPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice, reflect.Array:
		return isPlainData(t.Elem())
	case reflect.Map:
		return t.Key().Kind() == reflect.String && isPlainData(t.Elem())
	case reflect.Interface:
		return true
	default:
		return false
	}
}
