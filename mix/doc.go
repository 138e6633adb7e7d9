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

// Package mix implements the heterogeneous attribute containers.
//
// A container is a Go struct that embeds Mix, the immutable binding
// store. The embedded Mix supplies the entire read surface (the
// apis.Carrier contract), so a container type is usually nothing more
// than a name for a particular schema:
//
//	type Employee struct {
//	    mix.Mix
//	}
//
// Instances are created from role-bound parts and never change
// afterwards:
//
//	emp, err := mix.New[Employee](FirstName.Of("Ada"), Age.Of(36))
//
// Construction is last-write-wins over the parts list, validates every
// role-bound value, and enforces the container's declared roles when the
// type implements apis.Declarer. Reads go through the typed accessors:
//
//	age, ok, err := mix.Get(emp, Age)     // absence is not an error
//	age, err      := mix.Require(emp, Age) // absence is an error
//
// Updates derive new instances instead of mutating, preserving the
// concrete container type and sharing every untouched binding with the
// base instance:
//
//	older, err := mix.With(emp, Age.Of(37))
//
// For incremental assembly the package provides Remix, a mutable
// builder with set and remove operations, auto-vivified nested builders,
// and a recursive Freeze that produces the final immutable containers
// bottom-up. A Remix is not safe for concurrent use; the containers it
// freezes are.
package mix
