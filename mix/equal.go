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

package mix

import (
	"reflect"

	"dirpx.dev/rmx/apis"
)

// Equal reports whether two containers are equal: the same concrete
// run-time type carrying the same bindings with equal values.
//
// Binding order does not participate in equality; two containers built
// from the same parts in different orders compare equal. Values compare
// structurally: nested containers compare with the same rules
// recursively, slices compare element-wise, and everything else falls
// back to reflect.DeepEqual. Non-container inputs, including nils,
// compare unequal except that two nils are considered equal.
//
// Equality is deliberately a package function rather than a method on
// Mix: a method would be promoted onto embedding container types and
// could only see the embedded portion, misreporting across different
// outer types.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ca, ok := a.(apis.Carrier)
	if !ok {
		return false
	}
	cb, ok := b.(apis.Carrier)
	if !ok {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if ca.Len() != cb.Len() {
		return false
	}
	for _, name := range ca.Names() {
		va, _ := ca.Binding(name)
		vb, ok := cb.Binding(name)
		if !ok {
			return false
		}
		if !valueEqual(va, vb) {
			return false
		}
	}
	return true
}

// valueEqual compares two binding values structurally.
func valueEqual(a, b any) bool {
	if _, ok := a.(apis.Carrier); ok {
		return Equal(a, b)
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() == reflect.Slice && rb.Kind() == reflect.Slice {
		if ra.Type() != rb.Type() || ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !valueEqual(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
