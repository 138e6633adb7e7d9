/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package codec

import (
	"fmt"
	"reflect"

	"fortio.org/safecast"

	"dirpx.dev/rmx"
	uref "dirpx.dev/rmx/utils/reflect"
)

// number spans the numeric kinds coercion can target.
type number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// coerce adapts a decoded wire value to the role value type t.
//
// Exact matches and interface-satisfying values pass through untouched.
// Numeric values are converted with overflow checking while the global
// configuration has CoerceNumbers enabled; a conversion that would
// change the value fails. Everything else must match exactly.
func coerce(t reflect.Type, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("value is nil")
	}
	rt := reflect.TypeOf(v)
	if rt == t || rt.AssignableTo(t) {
		return v, nil
	}
	if !rmx.Config().CoerceNumbers {
		return nil, fmt.Errorf("cannot assign %s to %s", uref.Describe(v), uref.TypeName(t))
	}

	w, ok := widen(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %s to %s", uref.Describe(v), uref.TypeName(t))
	}

	var out any
	var err error
	switch t.Kind() {
	case reflect.Int:
		out, err = convNum[int](w)
	case reflect.Int8:
		out, err = convNum[int8](w)
	case reflect.Int16:
		out, err = convNum[int16](w)
	case reflect.Int32:
		out, err = convNum[int32](w)
	case reflect.Int64:
		out, err = convNum[int64](w)
	case reflect.Uint:
		out, err = convNum[uint](w)
	case reflect.Uint8:
		out, err = convNum[uint8](w)
	case reflect.Uint16:
		out, err = convNum[uint16](w)
	case reflect.Uint32:
		out, err = convNum[uint32](w)
	case reflect.Uint64:
		out, err = convNum[uint64](w)
	case reflect.Float32:
		out, err = convNum[float32](w)
	case reflect.Float64:
		out, err = convNum[float64](w)
	default:
		return nil, fmt.Errorf("cannot convert %s to %s", uref.Describe(v), uref.TypeName(t))
	}
	if err != nil {
		return nil, fmt.Errorf("convert %s to %s: %w", uref.Describe(v), uref.TypeName(t), err)
	}

	// Defined numeric types keep their nominal identity.
	ov := reflect.ValueOf(out)
	if ov.Type() != t {
		ov = ov.Convert(t)
	}
	return ov.Interface(), nil
}

// widen normalizes a numeric value to int64, uint64 or float64. The
// widening itself is lossless; the checked narrowing to the target type
// happens in convNum.
func widen(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return nil, false
}

// convNum converts a widened numeric value to T, failing when the
// conversion would overflow, truncate or lose sign.
func convNum[T number](w any) (T, error) {
	switch s := w.(type) {
	case int64:
		return safecast.Convert[T](s)
	case uint64:
		return safecast.Convert[T](s)
	case float64:
		return safecast.Convert[T](s)
	}
	var zero T
	return zero, fmt.Errorf("not a numeric value")
}
