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

package path

import (
	"reflect"
	"strings"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
)

// Path addresses a position of static type V inside a container
// hierarchy, as a sequence of field and index segments.
//
// A path is a pure description: building one touches no data, and the
// same path can be evaluated against any number of roots. Paths are
// immutable; every composition returns a new path and leaves its
// operands untouched, so paths are safe to share and reuse across
// goroutines.
//
// Composition is checked eagerly: a container-shaped terminal can only
// be extended by a field segment, a list-shaped terminal only by an
// index segment, and an opaque terminal not at all. Violations surface
// as *errors.InvalidPathError at composition time, never at evaluation
// time.
//
// The zero Path is the empty path, the identity of composition: it
// addresses the root itself.
type Path[V any] struct {
	segs []Segment
}

// Compile-time check that Path implements the apis contracts.
var (
	_ apis.Value      = (*Path[int])(nil)
	_ apis.Comparable = (*Path[int])(nil)
)

// Empty returns the empty path addressing a root of type V. It is the
// identity for composition and evaluates to the root itself.
func Empty[V any]() Path[V] {
	return Path[V]{}
}

// For returns the single-segment path addressing the binding of r in a
// root container.
func For[V any](r apis.Binder[V]) Path[V] {
	return Path[V]{segs: []Segment{fieldSegment(r)}}
}

// At extends a list-addressing path by an index segment, addressing the
// element at position idx.
//
// The static types make this extension always legal: p's terminal holds
// a []E, which is list-shaped by construction, so no error is possible
// at composition time. An out-of-range idx, including a negative one,
// is reported by evaluation against a concrete root.
func At[E any](p Path[[]E], idx int) Path[E] {
	segs := make([]Segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	segs = append(segs, indexSegment(idx, reflect.TypeOf((*E)(nil)).Elem()))
	return Path[E]{segs: segs}
}

// Join extends a container-addressing path by a field segment,
// addressing the binding of r inside the container p selects.
//
// p's terminal must be container-shaped; joining onto a list or opaque
// terminal yields a *errors.InvalidPathError. Joining onto the empty
// path is equivalent to For(r).
func Join[V any, U any](p Path[U], r apis.Binder[V]) (Path[V], error) {
	if len(p.segs) > 0 {
		if err := extendByField(p.segs[len(p.segs)-1], p.String(), r.Name()); err != nil {
			return Path[V]{}, err
		}
	}
	segs := make([]Segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	segs = append(segs, fieldSegment(r))
	return Path[V]{segs: segs}, nil
}

// Concat appends path b to path a, addressing what b selects inside
// the position a selects.
//
// The empty path is the identity: concatenating onto or with an empty
// operand returns the other operand's segments unchanged. For non-empty
// operands the junction must be legal, following the same rules as Join
// and At: b's leading field segment requires a container-shaped
// terminal in a, b's leading index segment requires a list-shaped
// terminal. Violations yield a *errors.InvalidPathError naming both
// operands.
//
// Concatenating an empty b onto a non-empty a additionally requires U
// and V to be the same type, since the result re-types a's terminal as
// V.
func Concat[V any, U any](a Path[U], b Path[V]) (Path[V], error) {
	if len(a.segs) == 0 {
		return Path[V]{segs: b.Segments()}, nil
	}
	if len(b.segs) == 0 {
		ut := reflect.TypeOf((*U)(nil)).Elem()
		vt := reflect.TypeOf((*V)(nil)).Elem()
		if ut != vt {
			return Path[V]{}, &errors.InvalidPathError{
				Left:   a.String(),
				Right:  b.String(),
				Reason: "empty path of type " + uref.TypeName(vt) + " cannot re-type terminal " + uref.TypeName(ut),
			}
		}
		return Path[V]{segs: a.Segments()}, nil
	}

	last := a.segs[len(a.segs)-1]
	first := b.segs[0]
	switch first.Kind() {
	case KindField:
		if err := extendByField(last, a.String(), b.String()); err != nil {
			return Path[V]{}, err
		}
	case KindIndex:
		if err := extendByIndex(last, a.String(), b.String()); err != nil {
			return Path[V]{}, err
		}
	}

	segs := make([]Segment, 0, len(a.segs)+len(b.segs))
	segs = append(segs, a.segs...)
	segs = append(segs, b.segs...)
	return Path[V]{segs: segs}, nil
}

// As re-types a path whose terminal value type is statically lost, for
// example after Parse. The terminal's value type must be exactly V; an
// empty path re-types freely because it addresses whatever root it is
// evaluated against.
func As[V any, U any](p Path[U]) (Path[V], error) {
	if len(p.segs) == 0 {
		return Path[V]{}, nil
	}
	vt := reflect.TypeOf((*V)(nil)).Elem()
	term := p.segs[len(p.segs)-1]
	if term.ValueType() != vt {
		return Path[V]{}, &errors.InvalidPathError{
			Left:   p.String(),
			Reason: "terminal type " + uref.TypeName(term.ValueType()) + " does not match " + uref.TypeName(vt),
		}
	}
	return Path[V]{segs: p.Segments()}, nil
}

// extendByField checks that a field segment may follow last.
func extendByField(last Segment, left, right string) error {
	if last.Shape() == apis.ShapeContainer {
		return nil
	}
	return &errors.InvalidPathError{
		Left:   left,
		Right:  right,
		Reason: extendReason(last.Shape(), KindField),
	}
}

// extendByIndex checks that an index segment may follow last.
func extendByIndex(last Segment, left, right string) error {
	if last.Shape() == apis.ShapeList {
		return nil
	}
	return &errors.InvalidPathError{
		Left:   left,
		Right:  right,
		Reason: extendReason(last.Shape(), KindIndex),
	}
}

// extendReason renders why a segment of kind next cannot follow a
// terminal of the given shape.
func extendReason(terminal apis.Shape, next Kind) string {
	switch terminal {
	case apis.ShapeList:
		return "list step requires an index segment"
	case apis.ShapeContainer:
		return "container step requires a field segment"
	default:
		if next == KindIndex {
			return "opaque step cannot be indexed"
		}
		return "opaque step cannot be extended"
	}
}

// Segments returns the path's segments in order. The returned slice is
// a fresh copy the caller may retain or mutate.
func (p Path[V]) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len returns the number of segments.
func (p Path[V]) Len() int {
	return len(p.segs)
}

// String returns the rendered form of the path: role names joined with
// " + " and index segments attached to their term, for example
// "reports[1] + firstName". The empty path renders as "".
func (p Path[V]) String() string {
	return render(p.segs)
}

// render is the shared segment renderer used by String and by the
// evaluator's error contexts.
func render(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.Kind() != KindIndex && sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Redacted returns the same string representation as String().
// Paths carry role names and indexes, not user data, so nothing is
// masked.
func (p Path[V]) Redacted() string {
	return p.String()
}

// TypeName returns "Path", the name of the type for logging and debugging.
func (p Path[V]) TypeName() string {
	return "Path"
}

// IsZero reports whether this is the empty path.
func (p Path[V]) IsZero() bool {
	return len(p.segs) == 0
}

// Equal reports whether this path is equal to another value.
//
// The method accepts any type for other and uses type assertion to
// check if it is a Path[V] or *Path[V]. Two paths are equal if their
// segment sequences select the same positions: same kinds, same role
// names, same indexes.
func (p Path[V]) Equal(other any) bool {
	switch v := other.(type) {
	case Path[V]:
		return segmentsEqual(p.segs, v.segs)
	case *Path[V]:
		if v == nil {
			return false
		}
		return segmentsEqual(p.segs, v.segs)
	default:
		return false
	}
}

// segmentsEqual compares two segment sequences position by position.
func segmentsEqual(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind() != b[i].Kind() {
			return false
		}
		switch a[i].Kind() {
		case KindIndex:
			if a[i].Index() != b[i].Index() {
				return false
			}
		default:
			ra, rb := a[i].Role(), b[i].Role()
			if (ra == nil) != (rb == nil) {
				return false
			}
			if ra != nil && ra.Name() != rb.Name() {
				return false
			}
		}
		if a[i].ValueType() != b[i].ValueType() {
			return false
		}
	}
	return true
}

// Validate checks that every field segment carries a usable role: one
// with a non-empty name and a value type. Paths built through For,
// Join, At and Concat from proper roles always pass; the check exists
// for paths assembled around zero-value roles.
func (p Path[V]) Validate() error {
	for _, s := range p.segs {
		if s.Kind() != KindField {
			continue
		}
		r := s.Role()
		if r == nil || r.Name() == "" {
			return &errors.ValidationError{
				Type:   "Path",
				Reason: "field segment has no role",
			}
		}
		if r.ValueType() == nil {
			return &errors.ValidationError{
				Type:   "Path",
				Field:  r.Name(),
				Reason: "field segment role has no value type",
			}
		}
	}
	return nil
}
