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

package role

import (
	"fmt"
	"reflect"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
)

// Role is a typed attribute identifier holding a single value of type V.
//
// A Role is created with New, which fixes the role's name, value type
// and shape, and interns it in the global registry. Role values are
// immutable; all methods are safe for concurrent use.
//
// The shape is derived from V via apis.ShapeOf: a slice type yields a
// list shape, a container type yields a container shape, and everything
// else is opaque. For lists and nested containers prefer the dedicated
// NewList and NewNested constructors, which add bounds support and an
// eager container check respectively.
type Role[V any] struct {
	name  string
	vt    reflect.Type
	shape apis.Shape
}

// Compile-time check that Role implements the apis contracts.
var (
	_ apis.Binder[int] = (*Role[int])(nil)
	_ apis.Value       = (*Role[int])(nil)
	_ apis.Comparable  = (*Role[int])(nil)
)

// New creates the role named name holding values of type V and interns
// it in the global registry.
//
// Role names are unique per process. Declaring the same (name, V) pair
// again returns an equal role and leaves the registry untouched, so
// roles can safely be declared as package-level variables that multiple
// packages re-declare. Declaring an existing name with a different value
// type is a programming error and panics.
func New[V any](name string) Role[V] {
	vt := reflect.TypeOf((*V)(nil)).Elem()
	r := Role[V]{
		name:  name,
		vt:    vt,
		shape: apis.ShapeOf(vt),
	}
	if err := rmx.Register(r); err != nil {
		panic(fmt.Errorf("rmx(role): register %q: %w", name, err))
	}
	return r
}

// Name returns the role's unique name.
func (r Role[V]) Name() string {
	return r.name
}

// Shape returns the traversal classification of V, fixed at
// construction time.
func (r Role[V]) Shape() apis.Shape {
	return r.shape
}

// ValueType returns the reflected type of V.
func (r Role[V]) ValueType() reflect.Type {
	return r.vt
}

// CanHold reports whether v is an acceptable value for this role: a
// non-nil value whose dynamic type is exactly V.
func (r Role[V]) CanHold(v any) bool {
	return r.RequireCanHold(v) == nil
}

// RequireCanHold returns nil when v is acceptable for this role and a
// *errors.TypeMismatchError describing the rejection otherwise.
//
// Nil values are always rejected, including typed nils: absence is
// modeled by not binding the role, never by binding a nil.
func (r Role[V]) RequireCanHold(v any) error {
	if uref.IsNil(v) {
		return &errors.TypeMismatchError{
			Role:   r.name,
			Want:   uref.TypeName(r.vt),
			Got:    uref.Describe(v),
			Reason: "value must not be nil",
		}
	}
	if _, ok := v.(V); !ok {
		return &errors.TypeMismatchError{
			Role: r.name,
			Want: uref.TypeName(r.vt),
			Got:  uref.Describe(v),
		}
	}
	return nil
}

// Of binds v to this role, producing a Part for container construction.
func (r Role[V]) Of(v V) apis.Part {
	return apis.Part{Name: r.name, Role: r, Value: v}
}

// String returns the role's name.
func (r Role[V]) String() string {
	return r.name
}

// Redacted returns the same string representation as String().
// Role names are identifiers, not user data, so nothing is masked.
func (r Role[V]) Redacted() string {
	return r.name
}

// TypeName returns "Role", the name of the type for logging and debugging.
func (r Role[V]) TypeName() string {
	return "Role"
}

// IsZero reports whether the role is the zero value, which carries no
// name and was never interned.
func (r Role[V]) IsZero() bool {
	return r.name == "" && r.vt == nil
}

// Equal reports whether this role is equal to another value.
//
// The method accepts any type for other and uses type assertion to
// check if it is a Role[V] or *Role[V]. Two roles are equal if they
// carry the same name, value type and shape.
func (r Role[V]) Equal(other any) bool {
	switch v := other.(type) {
	case Role[V]:
		return r == v
	case *Role[V]:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks that the role carries a name and a value type.
// A zero role fails validation; roles built with New always pass.
func (r Role[V]) Validate() error {
	if r.name == "" {
		return &errors.ValidationError{
			Type:   "Role",
			Field:  "name",
			Reason: "must not be empty",
		}
	}
	if r.vt == nil {
		return &errors.ValidationError{
			Type:   "Role",
			Field:  "valueType",
			Reason: "must not be nil",
		}
	}
	return nil
}
