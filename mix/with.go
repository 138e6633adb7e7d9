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

// With derives a new container from c with the given parts applied on
// top of its existing bindings.
//
// The base instance is never modified. The derivation re-runs the full
// construction pipeline with the base's parts first and the overrides
// last, so last-write-wins replaces overlapping bindings, an
// apis.Absent part removes one, and every validation rule of FromParts
// applies. The result has the same concrete type as c, and bindings the
// overrides did not touch are shared with the base by reference.
//
//	older, err := mix.With(emp, Age.Of(37))
//	smaller, err := mix.With(emp, apis.PartOf(HRInfo, apis.Absent))
func With[T apis.Carrier](c T, parts ...apis.Part) (T, error) {
	var zero T
	v, err := WithAny(c, parts...)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// WithAny is the erased form of With for callers that hold the
// container behind the apis.Carrier interface, such as the path
// evaluator. The returned instance still has c's concrete run-time
// type; only the static type is erased.
func WithAny(c apis.Carrier, parts ...apis.Part) (any, error) {
	return FromParts(reflect.TypeOf(c), append(PartsOf(c), parts...))
}
