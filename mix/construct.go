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
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
	"dirpx.dev/rxmerr"
)

// mixType is the reflected Mix type, used for anchor detection.
var mixType = reflect.TypeOf(Mix{})

// anchorField returns the index of the container anchor in t: the
// anonymous Mix field embedded at depth one. Deeper embeddings do not
// count; the anchor must sit directly in the container struct.
func anchorField(t reflect.Type) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == mixType {
			return i, true
		}
	}
	return -1, false
}

// checkTarget verifies that t is a constructible container type: the
// Mix type itself, or a struct embedding Mix at depth one.
func checkTarget(t reflect.Type) error {
	if t == nil {
		return &errors.UnsupportedTypeError{
			Type:   "nil",
			Reason: "no type information",
		}
	}
	if t == mixType {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return &errors.UnsupportedTypeError{
			Type:   uref.TypeName(t),
			Reason: "pointer container types are not supported; construct the value type",
		}
	}
	if t.Kind() != reflect.Struct {
		return &errors.UnsupportedTypeError{
			Type:   uref.TypeName(t),
			Reason: "not a struct type",
		}
	}
	if _, ok := anchorField(t); !ok {
		return &errors.UnsupportedTypeError{
			Type:   uref.TypeName(t),
			Reason: "no container anchor field",
		}
	}
	return nil
}

// FromParts constructs a container of the reflected type t from parts.
//
// This is the canonical parts constructor: every way of producing a
// container instance (New, With, Remix.Freeze, path rewrites, codecs)
// funnels through it, which is what keeps the concrete run-time type
// intact across derivations.
//
// The parts list is folded front to back with last-write-wins
// semantics: a later part for an already seen name replaces the value
// while keeping the name's original position, and a part whose value is
// the apis.Absent sentinel removes the accumulated binding entirely.
// The apis.Reflective marker part switches the construction into
// skip-validation mode and is never stored.
//
// Each surviving part is validated as it is folded: the name must be
// non-empty, the value must not be nil (typed nils included), the name
// must match the part's role when one is attached, and the value must
// satisfy the role's RequireCanHold. When t implements apis.Declarer
// and no reflective marker was given, the constructed instance is then
// checked against its declared roles: required roles must be bound, and
// every declared binding must satisfy its declared role even when the
// part carried no role of its own.
//
// All violations are collected and returned together via
// rxmerr.Collector rather than stopping at the first, so a single
// construction attempt reports its complete diagnosis. On any error the
// returned instance is nil and must not be used.
//
// FromParts returns a *errors.UnsupportedTypeError when t is not a
// container type: t must be mix.Mix itself or a struct embedding Mix at
// depth one.
func FromParts(t reflect.Type, parts []apis.Part) (any, error) {
	if err := checkTarget(t); err != nil {
		return nil, err
	}
	tname := uref.TypeName(t)

	// Fold the parts, last write wins.
	names := make([]string, 0, len(parts))
	values := make(map[string]any, len(parts))
	reflective := false
	col := rxmerr.NewCollector()

	for _, p := range parts {
		if p.IsReflective() {
			reflective = true
			continue
		}
		if apis.IsAbsent(p.Value) {
			if _, ok := values[p.Name]; ok {
				delete(values, p.Name)
				names = removeName(names, p.Name)
			}
			continue
		}
		if p.Name == "" {
			col.Append(&errors.ValidationError{
				Type:   tname,
				Reason: "part has no name",
			})
			continue
		}
		if p.Role != nil && p.Role.Name() != p.Name {
			col.Append(&errors.ValidationError{
				Type:   tname,
				Field:  p.Name,
				Reason: "part name does not match its role " + p.Role.Name(),
			})
			continue
		}
		if uref.IsNil(p.Value) {
			col.Append(&errors.ValidationError{
				Type:   tname,
				Field:  p.Name,
				Reason: "binding must not be nil",
			})
			continue
		}
		if p.Role != nil {
			if err := p.Role.RequireCanHold(p.Value); err != nil {
				col.Append(err)
				continue
			}
		}
		if _, ok := values[p.Name]; !ok {
			names = append(names, p.Name)
		}
		values[p.Name] = p.Value
	}

	if err := col.Err(); err != nil {
		return nil, err
	}

	// Assemble the instance around its anchor.
	rv := reflect.New(t).Elem()
	m := Mix{names: names, values: values}
	if t == mixType {
		rv.Set(reflect.ValueOf(m))
	} else {
		idx, _ := anchorField(t)
		rv.Field(idx).Set(reflect.ValueOf(m))
	}

	// Enforce declared roles unless constructing reflectively.
	if !reflective {
		if err := validateDeclared(rv, m, tname); err != nil {
			return nil, err
		}
	}

	return rv.Interface(), nil
}

// New constructs a container of type T from parts.
//
// This is the typed entry point over FromParts; see there for the full
// construction semantics. On error the returned T is its zero value and
// must not be used.
func New[T any](parts ...apis.Part) (T, error) {
	var zero T
	v, err := FromParts(reflect.TypeOf((*T)(nil)).Elem(), parts)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// validateDeclared checks the constructed instance against its declared
// roles, honoring both value and pointer receiver implementations of
// apis.Declarer. rv must be the addressable instance value.
func validateDeclared(rv reflect.Value, m Mix, tname string) error {
	d, ok := rv.Interface().(apis.Declarer)
	if !ok {
		if pd, pok := rv.Addr().Interface().(apis.Declarer); pok {
			d, ok = pd, true
		}
	}
	if !ok {
		return nil
	}

	col := rxmerr.NewCollector()
	for _, decl := range d.DeclaredRoles() {
		if decl.Role == nil {
			continue
		}
		name := decl.Role.Name()
		v, bound := m.values[name]
		if !bound {
			if !decl.Optional {
				col.Append(&errors.MissingRoleError{Role: name, Container: tname})
			}
			continue
		}
		if err := decl.Role.RequireCanHold(v); err != nil {
			col.Append(err)
		}
	}
	return col.Err()
}

// removeName drops the first occurrence of name, preserving the order
// of the remaining entries.
func removeName(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i], names[i+1:]...)
		}
	}
	return names
}
