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

package apis

// Declaration is one entry in a container type's declared role set.
type Declaration struct {
	// Role is the declared role.
	Role Role

	// Optional marks the role as permitted but not required. Required
	// declarations (Optional false) MUST be bound for construction to
	// succeed outside reflective mode.
	Optional bool
}

// Declarer is implemented by container types that declare which roles
// they carry.
//
// DeclaredRoles MUST return the same declarations for every value of the
// type, independent of the receiver's state, so that it can be invoked on
// a reflectively constructed blank instance. Implementations SHOULD
// return the declarations in a stable order; the order is surfaced by
// introspection but carries no semantics.
//
// Declaring roles is optional. A container type that does not implement
// Declarer accepts any registered binding and requires none.
type Declarer interface {
	DeclaredRoles() []Declaration
}
