// Package canonical turns ledger fields into a deterministic byte form and hashes it.
//
// The encoding is compact JSON with lexicographically sorted object keys, integers in
// base 10 and floats in their shortest round-trip decimal form. Two field sets that are
// semantically equal always encode to the same bytes, whatever order they were built in.
package canonical

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

// ErrSerialization reports a value outside the supported structured-value model.
var ErrSerialization = errors.New("canonical serialization failed")

// Normalize validates v and returns a deep copy built only from map[string]any, []any,
// json.Number (integers only), float64, string, bool and nil.
func Normalize(v any) (any, error) {
	return normalize(v, "$")
}

// Encode serializes fields canonically.
func Encode(fields map[string]any) ([]byte, error) {
	return EncodeValue(fields)
}

// EncodeValue serializes any supported value canonically.
func EncodeValue(v any) ([]byte, error) {
	normalized, err := Normalize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrSerialization, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Hash returns the lowercase hex SHA-256 of the canonical encoding of fields.
func Hash(fields map[string]any) (string, error) {
	data, err := Encode(fields)
	if err != nil {
		return "", err
	}
	sum := chainhash.HashH(data)
	return hex.EncodeToString(sum[:]), nil
}

// BlockHash hashes every field of b except the hash itself.
func BlockHash(b model.Block) (string, error) {
	return Hash(b.Fields())
}

func normalize(v any, path string) (any, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return value, nil
	case float64:
		return finite(value, path)
	case float32:
		return finite(float64(value), path)
	case json.Number:
		return normalizeNumber(value, path)
	case int:
		return json.Number(strconv.FormatInt(int64(value), 10)), nil
	case int64:
		return json.Number(strconv.FormatInt(value, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(value, 10)), nil
	case map[string]any:
		if value == nil {
			return nil, nil
		}
		out := make(map[string]any, len(value))
		for k, item := range value {
			n, err := normalize(item, path+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case []any:
		if value == nil {
			return nil, nil
		}
		out := make([]any, len(value))
		for i, item := range value {
			n, err := normalize(item, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	return normalizeReflect(reflect.ValueOf(v), path)
}

func normalizeReflect(rv reflect.Value, path string) (any, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return json.Number(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return json.Number(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float(), path)
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface(), path)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %s has non-string map key %s", ErrSerialization, path, rv.Type().Key())
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			n, err := normalize(iter.Value().Interface(), path+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := normalize(rv.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has unsupported type %s", ErrSerialization, path, rv.Type())
	}
}

// normalizeNumber rewrites a decoded number into one form: base-10 integer when it is
// exactly an int64 or uint64, the shortest float otherwise. 3.40, 34e-1 and 3.4 all
// encode as 3.4.
func normalizeNumber(n json.Number, path string) (any, error) {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return json.Number(strconv.FormatInt(i, 10)), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return json.Number(strconv.FormatUint(u, 10)), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a finite number: %q", ErrSerialization, path, s)
	}
	return finite(f, path)
}

func finite(f float64, path string) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s is not a finite number", ErrSerialization, path)
	}
	return f, nil
}
