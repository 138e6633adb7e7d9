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

// Package path composes and evaluates typed paths into container
// hierarchies.
//
// A path is an immutable description of a position inside nested
// containers and lists: a sequence of field segments, each selecting a
// role's binding, and index segments, each selecting a list element.
// Building a path touches no data, and the same path evaluates against
// any number of roots:
//
//	pReports, _ := path.Join(path.For(HRInfo), Reports)
//	pName, _    := path.Join(path.At(pReports, 1), FirstName)
//
//	name, ok, err := path.Get(emp, pName)
//
// Composition is eagerly checked against each segment's static shape:
// fields extend containers, indexes extend lists, and nothing extends
// opaque values. An illegal extension fails at composition time with
// *errors.InvalidPathError, so a path that exists is structurally
// sound; evaluation only reports data-dependent failures such as
// missing bindings or out-of-range indexes.
//
// Besides reading, paths rewrite. WithAt and MapAt replace the
// addressed leaf and reconstruct only the containers and lists on the
// way back to the root, preserving every concrete type and sharing all
// untouched bindings and elements with the original:
//
//	older, err := path.WithAt(emp, pAge, 37)
//
// The empty path is the identity of composition and addresses the root
// itself. Rendered paths round-trip through String and Parse once the
// roles on them are registered.
package path
