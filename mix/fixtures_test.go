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

package mix_test

import (
	"testing"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/mix"
	"dirpx.dev/rmx/role"
)

// Role fixtures shared by the whole test binary. Roles are
// process-unique, so each is declared exactly once here.
var (
	firstName = role.New[string]("firstName")
	age       = role.New[int]("age")
	tags      = role.NewList[string]("tags")
	grade     = role.New[int]("grade")
	unit      = role.New[string]("unit")
	hrInfo    = role.NewNested[HRRecord]("hrInfo")
	reports   = role.NewList[Employee]("reports")
	badge     = role.New[*BadgeCard]("badge")
)

// BadgeCard is carried by pointer, so derivation tests can assert that
// untouched bindings are shared by reference rather than copied.
type BadgeCard struct {
	ID string
}

// HRRecord is a declared personnel sub-record.
type HRRecord struct {
	mix.Mix
}

// DeclaredRoles declares the grade as required and the unit as optional.
func (HRRecord) DeclaredRoles() []apis.Declaration {
	return []apis.Declaration{
		{Role: grade},
		{Role: unit, Optional: true},
	}
}

// Grade returns the required pay grade.
func (h HRRecord) Grade() (int, error) {
	return mix.Require(h, grade)
}

// Unit returns the organizational unit, if one is bound.
func (h HRRecord) Unit() (string, bool, error) {
	return mix.Get(h, unit)
}

// Employee is the primary declared container fixture.
type Employee struct {
	mix.Mix
}

// DeclaredRoles declares the name and age as required; everything else
// is optional.
func (Employee) DeclaredRoles() []apis.Declaration {
	return []apis.Declaration{
		{Role: firstName},
		{Role: age},
		{Role: tags, Optional: true},
		{Role: hrInfo, Optional: true},
		{Role: reports, Optional: true},
		{Role: badge, Optional: true},
	}
}

// FirstName returns the required first name.
func (e Employee) FirstName() (string, error) {
	return mix.Require(e, firstName)
}

// Age returns the required age.
func (e Employee) Age() (int, error) {
	return mix.Require(e, age)
}

// Tags returns the tag list, if one is bound.
func (e Employee) Tags() ([]string, bool, error) {
	return mix.Get(e, tags)
}

// HR returns the nested personnel record, if one is bound.
func (e Employee) HR() (HRRecord, bool, error) {
	return mix.Get(e, hrInfo)
}

// Contractor is a freeform container: no declared roles, any
// registered binding goes.
type Contractor struct {
	mix.Mix
}

// Plain is a struct without a container anchor; construction must
// reject it.
type Plain struct {
	X int
}

// newEmployee builds a valid fixture instance or fails the test.
func newEmployee(tb testing.TB, parts ...apis.Part) Employee {
	tb.Helper()
	base := []apis.Part{firstName.Of("Ada"), age.Of(36)}
	emp, err := mix.New[Employee](append(base, parts...)...)
	if err != nil {
		tb.Fatalf("mix.New[Employee]: unexpected error: %v", err)
	}
	return emp
}

// This ensures the interfaces are satisfied; not a test but a compile-time check.
var (
	_ apis.Carrier  = Employee{}
	_ apis.Declarer = Employee{}
	_ apis.Carrier  = HRRecord{}
	_ apis.Declarer = HRRecord{}
	_ apis.Carrier  = Contractor{}
)
