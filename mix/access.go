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
	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
)

// Get returns the value bound to r in c.
//
// Absence is a normal outcome, not an error: when the role has no
// binding, Get returns the zero V with ok false and a nil error. When a
// binding exists, the stored value is validated against the role before
// it is returned; a stored value the role cannot hold yields a
// *errors.TypeMismatchError. This consumption-time check is what makes
// the erased storage safe: a binding written under a raw name or by a
// conflicting writer is caught at the first typed read.
func Get[V any](c apis.Carrier, r apis.Binder[V]) (V, bool, error) {
	var zero V
	v, ok := c.Binding(r.Name())
	if !ok {
		return zero, false, nil
	}
	if err := r.RequireCanHold(v); err != nil {
		return zero, false, err
	}
	return v.(V), true, nil
}

// Require returns the value bound to r in c, treating absence as an
// error.
//
// Require behaves like Get except that a missing binding yields a
// *errors.MissingRoleError naming the role and the container type. Use
// it for roles the caller cannot proceed without.
func Require[V any](c apis.Carrier, r apis.Binder[V]) (V, error) {
	v, ok, err := Get(c, r)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, &errors.MissingRoleError{
			Role:      r.Name(),
			Container: uref.Describe(c),
		}
	}
	return v, nil
}

// PartsOf decomposes a container back into its parts, in binding order.
//
// Each part carries the binding name and value; the part's role is
// resolved from the global registry when the name is interned there and
// left nil otherwise. The result round-trips: feeding the parts to
// FromParts with the container's own type reconstructs an equal
// instance sharing every binding value.
func PartsOf(c apis.Carrier) []apis.Part {
	names := c.Names()
	parts := make([]apis.Part, 0, len(names))
	for _, name := range names {
		v, _ := c.Binding(name)
		p := apis.Part{Name: name, Value: v}
		if r, ok := rmx.Lookup(name); ok {
			p.Role = r
		}
		parts = append(parts, p)
	}
	return parts
}
