package abiargs

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	bigIntType  = reflect.TypeOf(&big.Int{})
	addressType = reflect.TypeOf(common.Address{})
)

// Render turns decoded contract outputs into values that marshal cleanly to JSON: integers
// wider than 32 bits become decimal strings, byte arrays become 0x-hex and tuples become
// objects keyed by their json tag.
func Render(v any) any {
	if v == nil {
		return nil
	}
	return render(reflect.ValueOf(v))
}

// RenderAll renders every value of an output list.
func RenderAll(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Render(v)
	}
	return out
}

func render(v reflect.Value) any {
	switch {
	case v.Type() == bigIntType:
		if v.IsNil() {
			return nil
		}
		return v.Interface().(*big.Int).String()
	case v.Type() == addressType:
		return v.Interface().(common.Address).Hex()
	}

	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return v.Uint()
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return v.Int()
	case reflect.Uint64, reflect.Uint:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Int64, reflect.Int:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	case reflect.Array, reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			for i := range b {
				b[i] = byte(v.Index(i).Uint())
			}
			return hexutil.Encode(b)
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = render(v.Index(i))
		}
		return out
	case reflect.Struct:
		out := make(map[string]any, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			out[fieldName(field)] = render(v.Field(i))
		}
		return out
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return render(v.Elem())
	}
	return v.Interface()
}

func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:]
}
