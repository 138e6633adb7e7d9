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
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
)

// Remix is the mutable builder for containers.
//
// A Remix accumulates bindings under a target container type and
// produces the immutable instance with Freeze. Values are validated as
// they are set, so a builder that never reported an error freezes into
// a container that satisfies every role contract; declared-role
// enforcement still runs at freeze time because required roles can only
// be judged on the complete set.
//
// Nested hierarchies are assembled through Nested, which returns a
// child builder for a container-shaped role, creating it on first
// access. Child builders live inside the parent until Freeze resolves
// the tree bottom-up into nested immutable containers.
//
// A Remix is not safe for concurrent use. The containers it freezes
// are immutable and freely shareable.
type Remix struct {
	// target is the container type Freeze constructs.
	target reflect.Type
	// names holds the binding names in first-set order.
	names []string
	// values maps binding names to erased values or child builders.
	values map[string]any
}

// Compile-time check that Remix implements the apis contracts.
var _ apis.Value = (*Remix)(nil)

// NewRemix creates an empty builder targeting the container type T.
//
// The target is validated lazily: an unsupported T surfaces as a
// *errors.UnsupportedTypeError from Freeze, matching the general rule
// that containers are validated when they are produced, not when the
// builder is created.
func NewRemix[T any]() *Remix {
	return RemixOf(reflect.TypeOf((*T)(nil)).Elem())
}

// RemixOf creates an empty builder targeting the reflected container
// type t. It is the erased form of NewRemix, intended for callers that
// discover the target type at run time.
func RemixOf(t reflect.Type) *Remix {
	return &Remix{target: t}
}

// RemixFrom creates a builder seeded with all bindings of an existing
// container, targeting the container's own concrete type. The source is
// not modified; freezing the builder unchanged reproduces an equal
// container sharing every binding value.
func RemixFrom(c apis.Carrier) *Remix {
	b := RemixOf(reflect.TypeOf(c))
	for _, name := range c.Names() {
		v, _ := c.Binding(name)
		b.store(name, v)
	}
	return b
}

// Target returns the container type Freeze will construct.
func (b *Remix) Target() reflect.Type {
	return b.target
}

// Set binds v to role r, replacing any previous binding of the same
// name. Setting the apis.Absent sentinel removes the binding instead.
//
// The value is validated eagerly against the role, so an unacceptable
// value is reported at the call site rather than at freeze time.
func (b *Remix) Set(r apis.Role, v any) error {
	if r == nil {
		return &errors.ValidationError{
			Type:   "Remix",
			Reason: "role must not be nil",
		}
	}
	if apis.IsAbsent(v) {
		b.Unset(r.Name())
		return nil
	}
	if err := r.RequireCanHold(v); err != nil {
		return err
	}
	b.store(r.Name(), v)
	return nil
}

// Put applies a part to the builder, replacing any previous binding of
// the same name. A part with the apis.Absent value removes the binding.
//
// Parts carrying a role are validated like Set. Raw parts (nil role)
// are accepted without a type check, mirroring FromParts; the freeze
// still validates them against the target's declared roles.
func (b *Remix) Put(p apis.Part) error {
	if p.IsReflective() {
		return &errors.ValidationError{
			Type:   "Remix",
			Reason: "reflective marker is not accepted by builders",
		}
	}
	if apis.IsAbsent(p.Value) {
		b.Unset(p.Name)
		return nil
	}
	if p.Name == "" {
		return &errors.ValidationError{
			Type:   "Remix",
			Reason: "part has no name",
		}
	}
	if p.Role != nil && p.Role.Name() != p.Name {
		return &errors.ValidationError{
			Type:   "Remix",
			Field:  p.Name,
			Reason: "part name does not match its role " + p.Role.Name(),
		}
	}
	if uref.IsNil(p.Value) {
		return &errors.ValidationError{
			Type:   "Remix",
			Field:  p.Name,
			Reason: "binding must not be nil",
		}
	}
	if p.Role != nil {
		if err := p.Role.RequireCanHold(p.Value); err != nil {
			return err
		}
	}
	b.store(p.Name, p.Value)
	return nil
}

// Unset removes the binding under name, if any. Removing frees the
// name's position in the binding order; setting it again appends at
// the end.
func (b *Remix) Unset(name string) {
	if _, ok := b.values[name]; !ok {
		return
	}
	delete(b.values, name)
	b.names = removeName(b.names, name)
}

// Value returns the current value under name and whether it is set. A
// nested builder created through Nested appears as a *Remix until the
// tree is frozen.
func (b *Remix) Value(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Names returns the binding names in first-set order. The returned
// slice is a fresh copy.
func (b *Remix) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Len returns the number of bindings, nested builders included.
func (b *Remix) Len() int {
	return len(b.names)
}

// Nested returns the child builder for a container-shaped role,
// creating it on first access.
//
// The role's shape must be container; any other shape yields a
// *errors.ShapeMismatchError. When the binding is absent, a fresh child
// targeting the role's container type is created, stored, and returned:
// intermediate hierarchy levels materialize on demand. When the binding
// already holds a child builder, that same builder is returned, so
// repeated calls compose. When the binding holds a frozen container,
// it is thawed: a child seeded with the container's bindings replaces
// it, and further edits go to the thawed copy.
func (b *Remix) Nested(r apis.Role) (*Remix, error) {
	if r == nil {
		return nil, &errors.ValidationError{
			Type:   "Remix",
			Reason: "role must not be nil",
		}
	}
	if r.Shape() != apis.ShapeContainer {
		return nil, &errors.ShapeMismatchError{
			Want: apis.ShapeContainerStr,
			Got:  r.Shape().String(),
			Step: r.Name(),
		}
	}
	cur, ok := b.values[r.Name()]
	if !ok {
		child := RemixOf(r.ValueType())
		b.store(r.Name(), child)
		return child, nil
	}
	if child, ok := cur.(*Remix); ok {
		return child, nil
	}
	if c, ok := cur.(apis.Carrier); ok {
		child := RemixFrom(c)
		b.store(r.Name(), child)
		return child, nil
	}
	return nil, &errors.ShapeMismatchError{
		Want: apis.ShapeContainerStr,
		Got:  uref.Describe(cur),
		Step: r.Name(),
	}
}

// Freeze resolves the builder tree into immutable containers, bottom-up.
//
// Child builders freeze first; their results replace the builders in
// the parent's parts, and the parent then runs the full FromParts
// pipeline against its target type, declared-role enforcement included.
// Roles for the parts are resolved from the global registry by name, so
// bindings set through raw parts are still validated when their names
// are interned.
//
// The recursion depth is bounded by the configured MaxDepth; exceeding
// it yields a *errors.ValidationError rather than unbounded descent.
// The builder remains usable after Freeze, successful or not.
func (b *Remix) Freeze() (any, error) {
	return b.freeze(1)
}

// Freeze resolves the builder tree like (*Remix).Freeze and returns the
// result as T. A builder whose target is not T yields a
// *errors.ValidationError.
func Freeze[T any](b *Remix) (T, error) {
	var zero T
	v, err := b.Freeze()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &errors.ValidationError{
			Type:  "Remix",
			Field: "target",
			Reason: fmt.Sprintf("frozen %s does not match requested %s",
				uref.Describe(v), uref.TypeName(reflect.TypeOf((*T)(nil)).Elem())),
		}
	}
	return t, nil
}

// freeze is the depth-guarded recursion behind Freeze.
func (b *Remix) freeze(depth int) (any, error) {
	if max := rmx.Config().MaxDepth; depth > max {
		return nil, &errors.ValidationError{
			Type:   "Remix",
			Reason: fmt.Sprintf("freeze exceeded maximum depth %d", max),
		}
	}
	parts := make([]apis.Part, 0, len(b.names))
	for _, name := range b.names {
		v := b.values[name]
		if child, ok := v.(*Remix); ok {
			fv, err := child.freeze(depth + 1)
			if err != nil {
				return nil, err
			}
			v = fv
		}
		p := apis.Part{Name: name, Value: v}
		if r, ok := rmx.Lookup(name); ok {
			p.Role = r
		}
		parts = append(parts, p)
	}
	return FromParts(b.target, parts)
}

// store binds v under name, keeping first-set order and initializing
// the value map lazily so the zero Remix is usable.
func (b *Remix) store(name string, v any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
}

// String returns a rendering of the builder's target and bindings in
// first-set order, for example "Remix[main.Employee]{firstName:Ada}".
// Nested builders render recursively.
func (b *Remix) String() string {
	var sb strings.Builder
	sb.WriteString("Remix[")
	sb.WriteString(uref.TypeName(b.target))
	sb.WriteString("]{")
	for i, name := range b.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%v", name, b.values[name])
	}
	sb.WriteString("}")
	return sb.String()
}

// Redacted returns a log-safe rendering that keeps the target type and
// binding names but masks every value.
func (b *Remix) Redacted() string {
	var sb strings.Builder
	sb.WriteString("Remix[")
	sb.WriteString(uref.TypeName(b.target))
	sb.WriteString("]{")
	for i, name := range b.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(":[REDACTED]")
	}
	sb.WriteString("}")
	return sb.String()
}

// TypeName returns "Remix", the name of the type for logging and debugging.
func (b *Remix) TypeName() string {
	return "Remix"
}

// IsZero reports whether the builder holds no bindings.
func (b *Remix) IsZero() bool {
	return len(b.names) == 0
}

// Validate checks that the builder's target is a constructible
// container type and that the current bindings still satisfy their
// registered roles. Nested builders validate recursively. Freeze runs
// strictly stronger checks; Validate exists for early feedback while a
// builder is being assembled.
func (b *Remix) Validate() error {
	if err := checkTarget(b.target); err != nil {
		return err
	}
	for _, name := range b.names {
		v := b.values[name]
		if child, ok := v.(*Remix); ok {
			if err := child.Validate(); err != nil {
				return err
			}
			continue
		}
		if r, ok := rmx.Lookup(name); ok {
			if err := r.RequireCanHold(v); err != nil {
				return err
			}
		}
	}
	return nil
}
