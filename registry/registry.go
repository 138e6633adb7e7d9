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

// Package registry implements the process-wide role interning table.
//
// Roles are interned by name. The first registration under a name wins,
// an identical re-registration is a silent no-op, and a conflicting
// registration is rejected with ErrConflictingRegistration. Reads are
// lock-free; writes take a mutex to keep the entry counter consistent.
package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/rmx/apis"
)

var (
	// ErrNilRole is returned when a nil role is provided.
	ErrNilRole = errors.New("rmx(registry): nil role provided")
	// ErrEmptyName is returned when a role with an empty name is provided.
	ErrEmptyName = errors.New("rmx(registry): empty role name provided")
	// ErrConflictingRegistration indicates an attempt to register a
	// different role under an already interned name.
	ErrConflictingRegistration = errors.New("rmx(registry): conflicting role registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps role name to apis.Role.
	m sync.Map // map[string]apis.Role
	// count tracks the number of interned roles.
	count int
}

// Register interns r under its name.
// It is idempotent for an identical role under the same name.
func (r *registry) Register(role apis.Role) error {
	// Validate inputs early.
	if role == nil {
		return ErrNilRole
	}
	name := role.Name()
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if sameRole(old.(apis.Role), role) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if sameRole(old.(apis.Role), role) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, role)
	r.count++
	return nil
}

// Lookup returns the role interned under name if present.
func (r *registry) Lookup(name string) (apis.Role, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Role), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Role {
	entries := make([]apis.Role, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Role))
		return true
	})
	return entries
}

// Count returns the number of interned roles.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all interned roles.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// sameRole reports whether two roles are interchangeable for interning
// purposes. DeepEqual tolerates role implementations carrying
// uncomparable fields, where == would panic.
func sameRole(a, b apis.Role) bool {
	return reflect.DeepEqual(a, b)
}
