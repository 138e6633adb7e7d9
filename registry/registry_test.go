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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/registry"
)

// testRole implements apis.Role over a fixed name and value type, so the
// registry can be exercised without pulling in the role package and its
// process-global interning.
type testRole struct {
	name string
	vt   reflect.Type
}

func roleOf(name string, proto any) testRole {
	return testRole{name: name, vt: reflect.TypeOf(proto)}
}

func (r testRole) Name() string            { return r.name }
func (r testRole) Shape() apis.Shape       { return apis.ShapeOf(r.vt) }
func (r testRole) ValueType() reflect.Type { return r.vt }

func (r testRole) CanHold(v any) bool {
	return v != nil && reflect.TypeOf(v) == r.vt
}

func (r testRole) RequireCanHold(v any) error {
	if r.CanHold(v) {
		return nil
	}
	got := "nil"
	if v != nil {
		got = reflect.TypeOf(v).String()
	}
	return &errors.TypeMismatchError{Role: r.name, Want: r.vt.String(), Got: got}
}

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	age := roleOf("age", 0)
	if err := reg.Register(age); err != nil {
		t.Fatalf("Register(age): unexpected error: %v", err)
	}
	// idempotent re-register with an equal role
	if err := reg.Register(roleOf("age", 0)); err != nil {
		t.Fatalf("Register(age) idempotent: unexpected error: %v", err)
	}

	got, ok := reg.Lookup("age")
	if !ok {
		t.Fatalf("Lookup(age): got (_,%v), want (_,true)", ok)
	}
	if got.Name() != "age" || got.ValueType() != reflect.TypeOf(0) {
		t.Fatalf("Lookup(age): got role (%q,%v), want (age,int)", got.Name(), got.ValueType())
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Conflict(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(roleOf("age", 0)); err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	// Same name, different value type -> conflict
	err := reg.Register(roleOf("age", ""))
	if err == nil || err != registry.ErrConflictingRegistration {
		t.Fatalf("expected ErrConflictingRegistration, got: %v", err)
	}
	// The first registration must survive the rejected one.
	if got, ok := reg.Lookup("age"); !ok || got.ValueType() != reflect.TypeOf(0) {
		t.Fatalf("Lookup(age) after conflict: got (%v,%v), want int role", got, ok)
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(nil); err != registry.ErrNilRole {
		t.Fatalf("nil role: want ErrNilRole, got %v", err)
	}
	if err := reg.Register(roleOf("", 0)); err != registry.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() after rejected registrations = %d, want 0", reg.Count())
	}
}

func TestLookup_Missing(t *testing.T) {
	reg := registry.New()

	if _, ok := reg.Lookup("age"); ok {
		t.Fatalf("Lookup(age) on empty registry: got ok=true, want false")
	}
	if _, ok := reg.Lookup(""); ok {
		t.Fatalf("Lookup(\"\"): got ok=true, want false")
	}
}

func TestEntries(t *testing.T) {
	reg := registry.New()

	_ = reg.Register(roleOf("age", 0))
	_ = reg.Register(roleOf("firstName", ""))
	_ = reg.Register(roleOf("tags", []string{}))

	entries := reg.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() length = %d, want 3", len(entries))
	}

	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Name()] = true
	}
	for _, name := range []string{"age", "firstName", "tags"} {
		if !seen[name] {
			t.Errorf("Entries() missing role %q", name)
		}
	}
}
