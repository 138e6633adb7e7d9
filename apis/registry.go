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

// Registry is the process-wide interning table for roles.
//
// Role names are unique per process: the first registration under a name
// wins, an exact re-registration of the same role is accepted silently,
// and a conflicting registration under an existing name is rejected.
// Implementations MUST be safe for concurrent use; Lookup sits on the hot
// path of every name-directed access and SHOULD be lock-free.
type Registry interface {
	// Register interns r under its name. Re-registering an identical
	// role is a no-op; registering a different role under an existing
	// name returns an error naming the conflict.
	Register(r Role) error

	// Lookup returns the role interned under name, if any.
	Lookup(name string) (Role, bool)

	// Entries returns a snapshot of all interned roles in no
	// particular order. The returned slice is a fresh copy.
	Entries() []Role

	// Count returns the number of interned roles.
	Count() int

	// Reset removes all interned roles. Intended for tests.
	Reset()
}
