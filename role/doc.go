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

// Package role provides the typed role constructors.
//
// A role is a named, typed attribute identifier. Roles are the only keys
// containers accept: every binding in a container is addressed by a
// role's name and constrained by the role's value type. Three flavors
// cover the supported value classes:
//
//   - New creates a role for a single value of any Go type.
//   - NewList creates a role for a slice value, optionally with length
//     bounds.
//   - NewNested creates a role whose value is itself a container,
//     enabling hierarchies.
//
// Roles are process-unique: each constructor interns the new role in the
// global registry and panics if the name is already taken by a different
// role. Re-declaring an identical role is harmless, so roles are safe to
// declare as package-level variables in any number of packages:
//
//	var (
//	    FirstName = role.New[string]("firstName")
//	    Age       = role.New[int]("age")
//	    Reports   = role.NewList[Employee]("reports")
//	    HRInfo    = role.NewNested[HRRecord]("hrInfo")
//	)
//
// A role value is immutable and freely copyable. Its Of method packages
// a statically typed value into the erased Part consumed by container
// constructors; its CanHold and RequireCanHold methods are the single
// source of truth for what the binding may hold.
package role
