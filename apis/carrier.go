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

// Carrier is the read surface every container presents.
//
// A Carrier maps binding names to erased values. Implementations MUST be
// immutable: once constructed, the set of bindings and their values never
// change, so a Carrier MAY be shared freely across goroutines without
// synchronization.
//
// Containers implement Carrier with value receivers so that both T and
// *T satisfy the interface and ShapeOf classifies the bare type as a
// container.
type Carrier interface {
	// Binding returns the erased value bound under name and whether the
	// binding exists. Absent names MUST yield (nil, false); stored
	// values are never nil.
	Binding(name string) (any, bool)

	// Names returns the binding names in first-bound order. The
	// returned slice MUST be a fresh copy the caller may retain or
	// mutate.
	Names() []string

	// Len returns the number of bindings. It MUST equal len(Names())
	// and SHOULD be cheaper than calling Names.
	Len() int
}
