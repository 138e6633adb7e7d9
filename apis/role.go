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

package apis

import "reflect"

// Role is the erased view of a typed attribute identifier.
//
// A role names one attribute a container may carry and decides which
// values that attribute can hold. Concrete roles are created through the
// typed constructors in the role package and interned in the process-wide
// registry; two roles with the same name MUST describe the same value
// type, which the registry enforces at construction time.
//
// Implementations MUST be immutable after construction and safe for
// concurrent use. All methods MUST be cheap and side-effect free.
type Role interface {
	// Name returns the role's unique name.
	//
	// The name MUST be non-empty and stable for the lifetime of the
	// process. It is the key under which values are bound in containers
	// and the token used in rendered paths.
	Name() string

	// Shape returns the traversal classification of the role's value
	// type, fixed at construction time via ShapeOf.
	Shape() Shape

	// ValueType returns the Go type of the values this role can hold.
	ValueType() reflect.Type

	// CanHold reports whether v is an acceptable value for this role.
	//
	// Implementations MUST NOT mutate v and MUST return false rather
	// than panic for any input, including nil.
	CanHold(v any) bool

	// RequireCanHold returns nil when v is acceptable for this role and
	// a *errors.TypeMismatchError describing the rejection otherwise.
	//
	// The returned error MUST name the role, the wanted type, and the
	// type of v, so callers can surface it without further context.
	RequireCanHold(v any) error
}

// Binder is a Role whose value type is statically known.
//
// Binder is the compile-time bridge between Go's type system and the
// erased storage inside containers: typed accessors take a Binder[V] and
// return V, and Of packages a statically typed value into the erased
// Part used by container constructors.
type Binder[V any] interface {
	Role

	// Of binds v to this role, producing a Part ready to hand to a
	// container constructor or builder.
	Of(v V) Part
}
