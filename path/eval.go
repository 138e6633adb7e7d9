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

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/mix"
	uref "dirpx.dev/rmx/utils/reflect"
)

// Get reads the value p addresses inside root.
//
// The walk is strict about everything except terminal absence: a
// non-final field segment whose binding is missing yields a
// *errors.MissingRoleError, a segment applied to a value of the wrong
// shape yields a *errors.ShapeMismatchError, and an index outside its
// list yields a *errors.IndexOutOfRangeError. Only the final segment
// may come up empty, which is reported as (zero, false, nil): absence
// of the addressed leaf is a normal outcome, the path to it not
// existing is not.
//
// A present leaf is returned as V; a stored value of a different type
// yields a *errors.TypeMismatchError. The empty path returns the root
// itself.
func Get[V any](root any, p Path[V]) (V, bool, error) {
	var zero V
	cur := root
	for i, seg := range p.segs {
		final := i == len(p.segs)-1
		switch seg.Kind() {
		case KindIndex:
			rv := reflect.ValueOf(cur)
			if cur == nil || rv.Kind() != reflect.Slice {
				return zero, false, &errors.ShapeMismatchError{
					Want: apis.ShapeListStr,
					Got:  uref.Describe(cur),
					Step: render(p.segs[:i+1]),
				}
			}
			if seg.Index() < 0 || seg.Index() >= rv.Len() {
				return zero, false, &errors.IndexOutOfRangeError{
					Index: seg.Index(),
					Len:   rv.Len(),
					Step:  render(p.segs[:i+1]),
				}
			}
			cur = rv.Index(seg.Index()).Interface()

		default: // KindField
			c, ok := cur.(apis.Carrier)
			if !ok {
				return zero, false, &errors.ShapeMismatchError{
					Want: apis.ShapeContainerStr,
					Got:  uref.Describe(cur),
					Step: render(p.segs[:i+1]),
				}
			}
			v, present := c.Binding(seg.Role().Name())
			if !present {
				if final {
					return zero, false, nil
				}
				return zero, false, &errors.MissingRoleError{
					Role:      seg.Role().Name(),
					Container: render(p.segs[:i]),
				}
			}
			cur = v
		}
	}

	out, ok := cur.(V)
	if !ok {
		leafName := render(p.segs)
		if n := len(p.segs); n > 0 && p.segs[n-1].Kind() == KindField {
			leafName = p.segs[n-1].Role().Name()
		}
		if leafName == "" {
			leafName = "root"
		}
		return zero, false, &errors.TypeMismatchError{
			Role: leafName,
			Want: uref.TypeName(reflect.TypeOf((*V)(nil)).Elem()),
			Got:  uref.Describe(cur),
		}
	}
	return out, true, nil
}

// MapAt rewrites the value p addresses inside root by applying f to it,
// reconstructing every container and list along the way and leaving
// root itself untouched.
//
// f receives the current leaf and whether it is present; a missing
// final binding is passed as (zero, false), so f can insert. f returns
// the replacement value, whether to write it, and an error. Returning
// write false makes the whole call a no-op: root is returned unchanged
// (and unreconstructed) after the traversal has been validated.
// Returning an error aborts the rewrite and surfaces that error
// directly.
//
// A written leaf is validated like any other construction: field leaves
// run through the role's RequireCanHold inside the container rebuild,
// and index leaves must be assignable to the list's element type. The
// rebuild preserves every concrete type on the spine, replaced lists
// keep their untouched elements by reference, and rebuilt containers
// share all unaffected bindings with their originals.
//
// The traversal rules match Get: only the final segment may address an
// absent binding; everything else must resolve. The empty path applies
// f to root directly, with the same write and no-op semantics.
func MapAt[R any, V any](root R, p Path[V], f func(V, bool) (V, bool, error)) (R, error) {
	var zero R
	vt := reflect.TypeOf((*V)(nil)).Elem()

	if len(p.segs) == 0 {
		tv, ok := any(root).(V)
		if !ok {
			return zero, &errors.TypeMismatchError{
				Role: "root",
				Want: uref.TypeName(vt),
				Got:  uref.Describe(root),
			}
		}
		nv, write, err := f(tv, true)
		if err != nil {
			return zero, err
		}
		if !write {
			return root, nil
		}
		out, ok := any(nv).(R)
		if !ok {
			return zero, &errors.TypeMismatchError{
				Role: "root",
				Want: uref.TypeName(reflect.TypeOf((*R)(nil)).Elem()),
				Got:  uref.Describe(nv),
			}
		}
		return out, nil
	}

	term := p.segs[len(p.segs)-1]
	leafName := render(p.segs)
	if term.Kind() == KindField && term.Role() != nil {
		leafName = term.Role().Name()
	}

	leaf := func(old any, present bool) (any, bool, error) {
		var ov V
		if present {
			tv, ok := old.(V)
			if !ok {
				return nil, false, &errors.TypeMismatchError{
					Role: leafName,
					Want: uref.TypeName(vt),
					Got:  uref.Describe(old),
				}
			}
			ov = tv
		}
		nv, write, err := f(ov, present)
		if err != nil {
			return nil, false, err
		}
		if !write {
			return nil, false, nil
		}
		return nv, true, nil
	}

	out, changed, err := applySegs(root, p.segs, 0, leaf)
	if err != nil {
		return zero, err
	}
	if !changed {
		return root, nil
	}
	rt, ok := out.(R)
	if !ok {
		return zero, &errors.TypeMismatchError{
			Role: "root",
			Want: uref.TypeName(reflect.TypeOf((*R)(nil)).Elem()),
			Got:  uref.Describe(out),
		}
	}
	return rt, nil
}

// WithAt rewrites the value p addresses inside root to v,
// unconditionally. It is MapAt with a leaf function that always writes;
// see there for the traversal and reconstruction semantics.
func WithAt[R any, V any](root R, p Path[V], v V) (R, error) {
	return MapAt(root, p, func(V, bool) (V, bool, error) {
		return v, true, nil
	})
}

// applySegs descends segs[at:] below cur and rebuilds the spine on the
// way back up. It returns the rebuilt value, whether anything was
// written, and an error. When nothing was written, cur is returned
// untouched so ancestors are not reconstructed either.
func applySegs(cur any, segs []Segment, at int, leaf func(any, bool) (any, bool, error)) (any, bool, error) {
	seg := segs[at]
	final := at == len(segs)-1

	switch seg.Kind() {
	case KindIndex:
		rv := reflect.ValueOf(cur)
		if cur == nil || rv.Kind() != reflect.Slice {
			return nil, false, &errors.ShapeMismatchError{
				Want: apis.ShapeListStr,
				Got:  uref.Describe(cur),
				Step: render(segs[:at+1]),
			}
		}
		idx := seg.Index()
		if idx < 0 || idx >= rv.Len() {
			return nil, false, &errors.IndexOutOfRangeError{
				Index: idx,
				Len:   rv.Len(),
				Step:  render(segs[:at+1]),
			}
		}
		old := rv.Index(idx).Interface()

		var nv any
		var write bool
		var err error
		if final {
			nv, write, err = leaf(old, true)
		} else {
			nv, write, err = applySegs(old, segs, at+1, leaf)
		}
		if err != nil {
			return nil, false, err
		}
		if !write {
			return cur, false, nil
		}

		if uref.IsNil(nv) {
			return nil, false, &errors.TypeMismatchError{
				Role:   render(segs[:at+1]),
				Want:   uref.TypeName(rv.Type().Elem()),
				Got:    uref.Describe(nv),
				Reason: "value must not be nil",
			}
		}
		nvv := reflect.ValueOf(nv)
		if !nvv.Type().AssignableTo(rv.Type().Elem()) {
			return nil, false, &errors.TypeMismatchError{
				Role: render(segs[:at+1]),
				Want: uref.TypeName(rv.Type().Elem()),
				Got:  uref.Describe(nv),
			}
		}
		// Rebuild the slice with the same concrete type; untouched
		// elements are carried over as-is.
		ns := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(ns, rv)
		ns.Index(idx).Set(nvv)
		return ns.Interface(), true, nil

	default: // KindField
		c, ok := cur.(apis.Carrier)
		if !ok {
			return nil, false, &errors.ShapeMismatchError{
				Want: apis.ShapeContainerStr,
				Got:  uref.Describe(cur),
				Step: render(segs[:at+1]),
			}
		}
		name := seg.Role().Name()
		old, present := c.Binding(name)
		if !final && !present {
			return nil, false, &errors.MissingRoleError{
				Role:      name,
				Container: render(segs[:at]),
			}
		}

		var nv any
		var write bool
		var err error
		if final {
			nv, write, err = leaf(old, present)
		} else {
			nv, write, err = applySegs(old, segs, at+1, leaf)
		}
		if err != nil {
			return nil, false, err
		}
		if !write {
			return cur, false, nil
		}

		// Rebuild through the canonical constructor so the concrete
		// container type survives and the new value is validated
		// against the segment's role.
		rebuilt, err := mix.WithAny(c, apis.Part{Name: name, Role: seg.Role(), Value: nv})
		if err != nil {
			return nil, false, err
		}
		return rebuilt, true, nil
	}
}
