// Package abiargs converts loosely typed JSON values into the Go values go-ethereum packs for
// an ABI type, and renders decoded outputs back into JSON-friendly values.
package abiargs

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/utils"
)

// Coerce converts raw arguments for method, in order.
func Coerce(method abi.Method, raw []any) ([]any, error) {
	if len(raw) != len(method.Inputs) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", entity.ErrInvalidArgument, method.Name, len(method.Inputs), len(raw))
	}
	out := make([]any, len(raw))
	for i, input := range method.Inputs {
		v, err := Value(input.Type, raw[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, fmt.Errorf("%w: argument %s of %s: %v", entity.ErrInvalidArgument, name, method.Name, err)
		}
		out[i] = v
	}
	return out, nil
}

// Value converts one raw value to the Go type go-ethereum uses for t.
func Value(t abi.Type, raw any) (any, error) {
	v, err := value(t, raw)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func value(t abi.Type, raw any) (reflect.Value, error) {
	switch t.T {
	case abi.AddressTy:
		s, ok := raw.(string)
		if !ok || !common.IsHexAddress(s) {
			return reflect.Value{}, fmt.Errorf("expected an address, got %v", raw)
		}
		return reflect.ValueOf(common.HexToAddress(s)), nil

	case abi.UintTy, abi.IntTy:
		return integer(t, raw)

	case abi.BoolTy:
		switch b := raw.(type) {
		case bool:
			return reflect.ValueOf(b), nil
		case string:
			parsed, err := strconv.ParseBool(b)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("expected a bool, got %q", b)
			}
			return reflect.ValueOf(parsed), nil
		}
		return reflect.Value{}, fmt.Errorf("expected a bool, got %v", raw)

	case abi.StringTy:
		s, ok := raw.(string)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected a string, got %v", raw)
		}
		return reflect.ValueOf(s), nil

	case abi.BytesTy:
		s, ok := raw.(string)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected 0x-prefixed bytes, got %v", raw)
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("expected 0x-prefixed bytes: %w", err)
		}
		return reflect.ValueOf(b), nil

	case abi.FixedBytesTy:
		return fixedBytes(t, raw)

	case abi.SliceTy, abi.ArrayTy:
		items, ok := raw.([]any)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected a list, got %v", raw)
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return reflect.Value{}, fmt.Errorf("expected %d items, got %d", t.Size, len(items))
		}
		var out reflect.Value
		if t.T == abi.SliceTy {
			out = reflect.MakeSlice(t.GetType(), len(items), len(items))
		} else {
			out = reflect.New(t.GetType()).Elem()
		}
		for i, item := range items {
			elem, err := value(*t.Elem, item)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("item %d: %w", i, err)
			}
			out.Index(i).Set(elem)
		}
		return out, nil

	case abi.TupleTy:
		return tuple(t, raw)
	}
	return reflect.Value{}, fmt.Errorf("unsupported abi type %s", t.String())
}

func integer(t abi.Type, raw any) (reflect.Value, error) {
	var text string
	switch n := raw.(type) {
	case json.Number:
		text = n.String()
	case string:
		text = n
	case float64:
		if n != float64(int64(n)) {
			return reflect.Value{}, fmt.Errorf("expected an integer, got %v", n)
		}
		text = strconv.FormatInt(int64(n), 10)
	case int:
		text = strconv.Itoa(n)
	case int64:
		text = strconv.FormatInt(n, 10)
	case uint64:
		text = strconv.FormatUint(n, 10)
	default:
		return reflect.Value{}, fmt.Errorf("expected an integer, got %v", raw)
	}

	v, err := utils.ParseBigInt(text)
	if err != nil {
		return reflect.Value{}, err
	}
	if err := checkRange(t, v); err != nil {
		return reflect.Value{}, err
	}

	goType := t.GetType()
	if goType == reflect.TypeOf(&big.Int{}) {
		return reflect.ValueOf(v), nil
	}
	out := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		out.SetUint(v.Uint64())
	} else {
		out.SetInt(v.Int64())
	}
	return out, nil
}

func checkRange(t abi.Type, v *big.Int) error {
	if t.T == abi.UintTy {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size))
		if v.Sign() < 0 || v.Cmp(limit) >= 0 {
			return fmt.Errorf("%s out of range for uint%d", v, t.Size)
		}
		return nil
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if v.Cmp(limit) >= 0 || v.Cmp(new(big.Int).Neg(limit)) < 0 {
		return fmt.Errorf("%s out of range for int%d", v, t.Size)
	}
	return nil
}

// fixedBytes accepts 0x-hex of exactly t.Size bytes, or a short plain string that is
// right-padded with zeros.
func fixedBytes(t abi.Type, raw any) (reflect.Value, error) {
	s, ok := raw.(string)
	if !ok {
		return reflect.Value{}, fmt.Errorf("expected bytes%d, got %v", t.Size, raw)
	}
	b, err := decodeFixed(s, t.Size)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(t.GetType()).Elem()
	reflect.Copy(out, reflect.ValueOf(b))
	return out, nil
}

// Bytes32 converts s the same way a bytes32 argument is converted.
func Bytes32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := decodeFixed(s, len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func decodeFixed(s string, size int) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		decoded, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("expected bytes%d: %w", size, err)
		}
		if len(decoded) != size {
			return nil, fmt.Errorf("expected %d bytes, got %d", size, len(decoded))
		}
		return decoded, nil
	}
	if len(s) > size {
		return nil, fmt.Errorf("%q does not fit in bytes%d", s, size)
	}
	return []byte(s), nil
}

// tuple accepts an object keyed by component name or a positional list.
func tuple(t abi.Type, raw any) (reflect.Value, error) {
	out := reflect.New(t.GetType()).Elem()
	switch fields := raw.(type) {
	case map[string]any:
		for i, name := range t.TupleRawNames {
			item, ok := fields[name]
			if !ok {
				return reflect.Value{}, fmt.Errorf("missing tuple field %q", name)
			}
			elem, err := value(*t.TupleElems[i], item)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %s: %w", name, err)
			}
			out.Field(i).Set(elem)
		}
	case []any:
		if len(fields) != len(t.TupleElems) {
			return reflect.Value{}, fmt.Errorf("expected %d tuple fields, got %d", len(t.TupleElems), len(fields))
		}
		for i, item := range fields {
			elem, err := value(*t.TupleElems[i], item)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %d: %w", i, err)
			}
			out.Field(i).Set(elem)
		}
	default:
		return reflect.Value{}, fmt.Errorf("expected a tuple object, got %v", raw)
	}
	return out, nil
}
