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

// Nested is a typed attribute identifier holding a container of type M,
// enabling container hierarchies.
//
// A Nested role is created with NewNested, which verifies at
// construction time that M actually is a container type, fixes the
// role's name, and interns it in the global registry. Nested values are
// immutable; all methods are safe for concurrent use.
//
// Functionally a Nested role behaves like New[M] for a container M; the
// dedicated constructor exists for the eager container check and so
// that builders can auto-vivify a child builder from the role alone.
type Nested[M any] struct {
	name string
	vt   reflect.Type
}

// Compile-time check that Nested implements the apis contracts.
var (
	_ apis.Binder[struct{}] = (*Nested[struct{}])(nil)
	_ apis.Value            = (*Nested[struct{}])(nil)
	_ apis.Comparable       = (*Nested[struct{}])(nil)
)

// NewNested creates the role named name holding containers of type M
// and interns it in the global registry.
//
// NewNested panics if M is not a container type, that is, if M does not
// implement apis.Carrier. The check runs eagerly so that a mistyped
// hierarchy fails at role declaration time rather than on first use.
//
// Name uniqueness follows the same rules as New: identical
// re-declaration is a no-op, a conflicting declaration panics.
func NewNested[M any](name string) Nested[M] {
	vt := reflect.TypeOf((*M)(nil)).Elem()
	if apis.ShapeOf(vt) != apis.ShapeContainer {
		panic(fmt.Errorf("rmx(role): nested role %q: %w", name,
			&errors.UnsupportedTypeError{
				Type:   uref.TypeName(vt),
				Reason: "not a container type",
			}))
	}
	r := Nested[M]{
		name: name,
		vt:   vt,
	}
	if err := rmx.Register(r); err != nil {
		panic(fmt.Errorf("rmx(role): register %q: %w", name, err))
	}
	return r
}

// Name returns the role's unique name.
func (r Nested[M]) Name() string {
	return r.name
}

// Shape returns apis.ShapeContainer. Nested roles always hold
// containers, so the shape never varies.
func (r Nested[M]) Shape() apis.Shape {
	return apis.ShapeContainer
}

// ValueType returns the reflected container type M.
func (r Nested[M]) ValueType() reflect.Type {
	return r.vt
}

// CanHold reports whether v is an acceptable value for this role: a
// non-nil value whose dynamic type is exactly M.
func (r Nested[M]) CanHold(v any) bool {
	return r.RequireCanHold(v) == nil
}

// RequireCanHold returns nil when v is acceptable for this role and a
// *errors.TypeMismatchError describing the rejection otherwise.
func (r Nested[M]) RequireCanHold(v any) error {
	if uref.IsNil(v) {
		return &errors.TypeMismatchError{
			Role:   r.name,
			Want:   uref.TypeName(r.vt),
			Got:    uref.Describe(v),
			Reason: "value must not be nil",
		}
	}
	if _, ok := v.(M); !ok {
		return &errors.TypeMismatchError{
			Role: r.name,
			Want: uref.TypeName(r.vt),
			Got:  uref.Describe(v),
		}
	}
	return nil
}

// Of binds v to this role, producing a Part for container construction.
func (r Nested[M]) Of(v M) apis.Part {
	return apis.Part{Name: r.name, Role: r, Value: v}
}

// String returns the role's name.
func (r Nested[M]) String() string {
	return r.name
}

// Redacted returns the same string representation as String().
// Role names are identifiers, not user data, so nothing is masked.
func (r Nested[M]) Redacted() string {
	return r.name
}

// TypeName returns "Nested", the name of the type for logging and debugging.
func (r Nested[M]) TypeName() string {
	return "Nested"
}

// IsZero reports whether the role is the zero value, which carries no
// name and was never interned.
func (r Nested[M]) IsZero() bool {
	return r.name == "" && r.vt == nil
}

// Equal reports whether this role is equal to another value.
//
// The method accepts any type for other and uses type assertion to
// check if it is a Nested[M] or *Nested[M]. Two nested roles are equal
// if they carry the same name and container type.
func (r Nested[M]) Equal(other any) bool {
	switch v := other.(type) {
	case Nested[M]:
		return r == v
	case *Nested[M]:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks that the role carries a name and a container value
// type. A zero nested role fails validation; roles built with NewNested
// always pass.
func (r Nested[M]) Validate() error {
	if r.name == "" {
		return &errors.ValidationError{
			Type:   "Nested",
			Field:  "name",
			Reason: "must not be empty",
		}
	}
	if r.vt == nil {
		return &errors.ValidationError{
			Type:   "Nested",
			Field:  "valueType",
			Reason: "must not be nil",
		}
	}
	if apis.ShapeOf(r.vt) != apis.ShapeContainer {
		return &errors.ValidationError{
			Type:   "Nested",
			Field:  "valueType",
			Reason: "not a container type",
		}
	}
	return nil
}
