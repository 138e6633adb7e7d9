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

// Package rmx is a heterogeneous, schema-flexible attribute map for Go.
//
// rmx stores values of different types in a single container, addressed
// by roles: typed, process-unique named identifiers that decide which
// values their binding can hold. Containers come in two flavors, an
// immutable Mix and a mutable Remix builder, and nested structures are
// addressed by composable paths that read and rewrite deep values while
// sharing every untouched branch.
//
// # Components
//
//   - apis: the contracts shared by every component.
//   - errors: the error types surfaced across the rmx API.
//   - role: typed role constructors (scalar, list, nested container).
//   - mix: the immutable container, its builder, and their accessors.
//   - path: composable paths and their evaluation against containers.
//   - introspect: declared-role discovery with a process-wide cache.
//   - codec: YAML and binary round-trips for containers.
//   - config, registry: the knobs and the role interning table behind
//     the facade in this package.
//
// This root package holds the global state those components share: the
// active configuration and the process-wide role registry. The zero
// configuration installed at init time is fully usable; programs only
// touch this package to tune knobs or to inspect registered roles.
//
// # Quick Start
//
// Declare roles as package-level variables, define a container type
// around an embedded mix.Mix, and construct instances from role-bound
// parts:
//
//	var (
//	    FirstName = role.New[string]("firstName")
//	    Age       = role.New[int]("age")
//	)
//
//	type Employee struct {
//	    mix.Mix
//	}
//
//	emp, err := mix.New[Employee](FirstName.Of("Ada"), Age.Of(36))
//	if err != nil { ... }
//
//	age, ok, err := mix.Get(emp, Age) // 36, true, nil
//
// Derived instances share unchanged bindings with their base:
//
//	older, err := mix.With(emp, Age.Of(37))
//
// Deep access goes through paths:
//
//	second, err := path.Join(path.At(path.For(Reports), 1), FirstName)
//	name, ok, err := path.Get[string](org, second)
package rmx
