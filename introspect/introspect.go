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

// Package introspect reads container type declarations without real
// instances.
//
// A container type's declared roles are reported by its DeclaredRoles
// method, which needs a receiver. Codecs and schema tooling have only a
// reflect.Type in hand, so this package constructs a blank instance in
// skip-validation mode, reads its declarations once, and caches the
// result per type. Declarations are a property of the type, so the
// cache never needs invalidation; Reset exists for tests.
package introspect

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/mix"
)

// cache maps reflect.Type to []apis.Declaration. Only successful
// computations are stored; failures are recomputed on the next call.
var cache sync.Map

// flight deduplicates concurrent first computations for the same type
// so DeclaredRoles runs at most once per type even under racing
// callers.
var flight singleflight.Group

// Instance constructs a blank instance of the container type t in
// skip-validation mode: declared roles are not enforced and no values
// are bound. The result is suitable only for reading type-level
// properties such as declarations; it is not a valid container value.
//
// Returns a *errors.UnsupportedTypeError when t is not a container
// type.
func Instance(t reflect.Type) (any, error) {
	return mix.FromParts(t, []apis.Part{apis.Reflective()})
}

// Declarations returns the declared roles of the container type t, in
// declaration order.
//
// The first call for a type constructs a blank instance and reads its
// DeclaredRoles; subsequent calls are served from the per-type cache.
// Concurrent first calls for the same type compute once and share the
// result. A container type that does not implement apis.Declarer has
// no declarations and yields an empty, non-nil slice.
//
// The returned slice is a fresh copy the caller may retain or mutate.
// Returns a *errors.UnsupportedTypeError when t is not a container
// type.
func Declarations(t reflect.Type) ([]apis.Declaration, error) {
	if t == nil {
		return nil, &errors.UnsupportedTypeError{
			Type:   "nil",
			Reason: "no type information",
		}
	}
	if decls, ok := cache.Load(t); ok {
		return copyDecls(decls.([]apis.Declaration)), nil
	}

	v, err, _ := flight.Do(flightKey(t), func() (any, error) {
		// Re-check under the flight; a previous winner may have
		// stored the result already.
		if decls, ok := cache.Load(t); ok {
			return decls.([]apis.Declaration), nil
		}
		decls, err := compute(t)
		if err != nil {
			return nil, err
		}
		cache.Store(t, decls)
		return decls, nil
	})
	if err != nil {
		return nil, err
	}
	return copyDecls(v.([]apis.Declaration)), nil
}

// Roles returns the roles declared by the container type t, in
// declaration order, dropping declarations without a role. See
// Declarations for caching and error behavior.
func Roles(t reflect.Type) ([]apis.Role, error) {
	decls, err := Declarations(t)
	if err != nil {
		return nil, err
	}
	out := make([]apis.Role, 0, len(decls))
	for _, d := range decls {
		if d.Role == nil {
			continue
		}
		out = append(out, d.Role)
	}
	return out, nil
}

// Reset discards every cached declaration. Intended for tests.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}

// compute constructs a blank instance of t and reads its declarations,
// honoring both value and pointer receiver implementations of
// apis.Declarer.
func compute(t reflect.Type) ([]apis.Declaration, error) {
	inst, err := Instance(t)
	if err != nil {
		return nil, err
	}
	d, ok := inst.(apis.Declarer)
	if !ok {
		pv := reflect.New(t)
		pv.Elem().Set(reflect.ValueOf(inst))
		if pd, pok := pv.Interface().(apis.Declarer); pok {
			d, ok = pd, true
		}
	}
	if !ok {
		return []apis.Declaration{}, nil
	}
	return copyDecls(d.DeclaredRoles()), nil
}

// copyDecls returns a fresh copy of decls so cached slices are never
// shared with callers.
func copyDecls(decls []apis.Declaration) []apis.Declaration {
	out := make([]apis.Declaration, len(decls))
	copy(out, decls)
	return out
}

// flightKey renders a stable string key for t. The cache itself is
// keyed by the reflect.Type; the string key only scopes the
// deduplication of in-flight computations.
func flightKey(t reflect.Type) string {
	return t.PkgPath() + "/" + t.String()
}
