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

// List is a typed attribute identifier holding a slice of E, optionally
// constrained by length bounds.
//
// A List is created with NewList, which fixes the role's name, element
// type and bounds, and interns it in the global registry. List values
// are immutable; all methods are safe for concurrent use.
//
// Length bounds are checked by RequireCanHold while the global
// configuration has EnforceListBounds enabled; with enforcement off they
// remain declarative and are surfaced only through introspection.
type List[E any] struct {
	name string
	vt   reflect.Type
	min  int
	max  int
}

// Compile-time check that List implements the apis contracts.
var (
	_ apis.Binder[[]int] = (*List[int])(nil)
	_ apis.Value         = (*List[int])(nil)
	_ apis.Comparable    = (*List[int])(nil)
)

// ListOption configures the bounds of a list role during construction.
type ListOption func(*listBounds)

// listBounds accumulates NewList options before the role is built.
type listBounds struct {
	min int
	max int
}

// WithMinLen sets the minimum number of elements a bound slice must
// carry. A negative value resets to zero, which imposes no minimum.
func WithMinLen(n int) ListOption {
	return func(b *listBounds) {
		if n < 0 {
			n = 0
		}
		b.min = n
	}
}

// WithMaxLen sets the maximum number of elements a bound slice may
// carry. A negative value resets to unbounded.
func WithMaxLen(n int) ListOption {
	return func(b *listBounds) {
		if n < 0 {
			n = -1
		}
		b.max = n
	}
}

// NewList creates the role named name holding slices of E and interns
// it in the global registry.
//
// Name uniqueness follows the same rules as New: identical
// re-declaration is a no-op, a conflicting declaration panics. Two list
// roles under the same name conflict unless their element types and
// bounds both match.
//
// NewList panics if the configured bounds are contradictory (a maximum
// below the minimum).
func NewList[E any](name string, opts ...ListOption) List[E] {
	b := listBounds{min: 0, max: -1}
	for _, opt := range opts {
		opt(&b)
	}
	if b.max >= 0 && b.max < b.min {
		panic(fmt.Errorf("rmx(role): list role %q: maximum length %d below minimum %d",
			name, b.max, b.min))
	}
	r := List[E]{
		name: name,
		vt:   reflect.TypeOf((*[]E)(nil)).Elem(),
		min:  b.min,
		max:  b.max,
	}
	if err := rmx.Register(r); err != nil {
		panic(fmt.Errorf("rmx(role): register %q: %w", name, err))
	}
	return r
}

// Name returns the role's unique name.
func (r List[E]) Name() string {
	return r.name
}

// Shape returns apis.ShapeList. List roles always hold slices, so the
// shape never varies.
func (r List[E]) Shape() apis.Shape {
	return apis.ShapeList
}

// ValueType returns the reflected slice type []E.
func (r List[E]) ValueType() reflect.Type {
	return r.vt
}

// MinLen returns the declared minimum element count. Zero imposes no
// minimum.
func (r List[E]) MinLen() int {
	return r.min
}

// MaxLen returns the declared maximum element count, or a negative
// value when the length is unbounded.
func (r List[E]) MaxLen() int {
	return r.max
}

// CanHold reports whether v is an acceptable value for this role: a
// non-nil []E within the declared bounds.
func (r List[E]) CanHold(v any) bool {
	return r.RequireCanHold(v) == nil
}

// RequireCanHold returns nil when v is acceptable for this role and a
// *errors.TypeMismatchError describing the rejection otherwise.
//
// Nil slices are rejected like every other nil: an empty list is
// spelled as a non-nil slice of length zero. Length bounds are checked
// only while the global configuration has EnforceListBounds enabled.
func (r List[E]) RequireCanHold(v any) error {
	if uref.IsNil(v) {
		return &errors.TypeMismatchError{
			Role:   r.name,
			Want:   uref.TypeName(r.vt),
			Got:    uref.Describe(v),
			Reason: "value must not be nil",
		}
	}
	s, ok := v.([]E)
	if !ok {
		return &errors.TypeMismatchError{
			Role: r.name,
			Want: uref.TypeName(r.vt),
			Got:  uref.Describe(v),
		}
	}
	if !rmx.Config().EnforceListBounds {
		return nil
	}
	if len(s) < r.min {
		return &errors.TypeMismatchError{
			Role:   r.name,
			Want:   uref.TypeName(r.vt),
			Got:    uref.Describe(v),
			Reason: fmt.Sprintf("length %d below minimum %d", len(s), r.min),
		}
	}
	if r.max >= 0 && len(s) > r.max {
		return &errors.TypeMismatchError{
			Role:   r.name,
			Want:   uref.TypeName(r.vt),
			Got:    uref.Describe(v),
			Reason: fmt.Sprintf("length %d exceeds maximum %d", len(s), r.max),
		}
	}
	return nil
}

// Of binds v to this role, producing a Part for container construction.
func (r List[E]) Of(v []E) apis.Part {
	return apis.Part{Name: r.name, Role: r, Value: v}
}

// String returns the role's name.
func (r List[E]) String() string {
	return r.name
}

// Redacted returns the same string representation as String().
// Role names are identifiers, not user data, so nothing is masked.
func (r List[E]) Redacted() string {
	return r.name
}

// TypeName returns "List", the name of the type for logging and debugging.
func (r List[E]) TypeName() string {
	return "List"
}

// IsZero reports whether the role is the zero value, which carries no
// name and was never interned.
func (r List[E]) IsZero() bool {
	return r.name == "" && r.vt == nil
}

// Equal reports whether this role is equal to another value.
//
// The method accepts any type for other and uses type assertion to
// check if it is a List[E] or *List[E]. Two list roles are equal if
// they carry the same name, element type and bounds.
func (r List[E]) Equal(other any) bool {
	switch v := other.(type) {
	case List[E]:
		return r == v
	case *List[E]:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks that the role carries a name, a value type, and
// consistent bounds. A zero list role fails validation; roles built
// with NewList always pass.
func (r List[E]) Validate() error {
	if r.name == "" {
		return &errors.ValidationError{
			Type:   "List",
			Field:  "name",
			Reason: "must not be empty",
		}
	}
	if r.vt == nil {
		return &errors.ValidationError{
			Type:   "List",
			Field:  "valueType",
			Reason: "must not be nil",
		}
	}
	if r.max >= 0 && r.max < r.min {
		return &errors.ValidationError{
			Type:   "List",
			Field:  "bounds",
			Reason: fmt.Sprintf("maximum length %d below minimum %d", r.max, r.min),
		}
	}
	return nil
}
