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

import "fmt"

// Part is a single (identifier, value) pair handed to container
// constructors.
//
// A Part is deliberately erased: Value is stored as any, and validation
// against the role's value type happens when the container is
// constructed, not when the Part is created. Parts are plain values with
// no behavior of their own; they exist to be listed, in order, in a
// construction call.
//
// Role may be nil for parts created from raw names (see Raw) or
// reassembled from deserialized payloads before their roles are known.
// Constructors skip per-part type validation when Role is nil and rely on
// the container's declared roles instead.
type Part struct {
	// Name is the binding name. It MUST be non-empty for every part
	// except the reflective marker.
	Name string

	// Role is the role this part binds, when known. May be nil.
	Role Role

	// Value is the erased value to bind, or the Absent sentinel to
	// remove an earlier binding of the same name.
	Value any
}

// PartOf binds an erased value to a role.
//
// The returned part carries the role itself, so container construction
// validates v against the role's value type. For statically typed
// construction prefer the role's Of method, which fixes the value type at
// compile time.
func PartOf(r Role, v any) Part {
	return Part{Name: r.Name(), Role: r, Value: v}
}

// Raw binds an erased value to a bare name, with no role attached.
//
// Raw parts skip per-part validation; the container's declared roles, if
// any, still validate the constructed result. Raw is intended for codecs
// and tests that reassemble containers from payloads where role handles
// are not in scope.
func Raw(name string, v any) Part {
	return Part{Name: name, Value: v}
}

// String returns a compact rendering of the part for diagnostics, for
// example "age: 42". The reflective marker renders as "<reflective>" and
// an absent value as "name: <absent>".
func (p Part) String() string {
	if p.IsReflective() {
		return "<reflective>"
	}
	return fmt.Sprintf("%s: %v", p.Name, p.Value)
}

// IsReflective reports whether this part is the reflective construction
// marker produced by Reflective.
func (p Part) IsReflective() bool {
	_, ok := p.Value.(reflectiveMarker)
	return ok
}

// absentValue is the unexported type behind the Absent sentinel. Keeping
// the type private guarantees the sentinel cannot be forged or collide
// with a genuine user value.
type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent is the sentinel value that removes a binding.
//
// Passing a part whose Value is Absent to a container constructor drops
// any earlier binding of the same name from the parts list, and setting
// a builder entry to Absent removes it. Absent never appears as a stored
// binding value: containers hold only real values.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// reflectiveMarker is the unexported type behind the Reflective marker
// part. As with absentValue, the private type makes the marker
// unforgeable outside this package.
type reflectiveMarker struct{}

func (reflectiveMarker) String() string { return "<reflective>" }

// Reflective returns the marker part that switches container construction
// into skip-validation mode.
//
// When a parts list contains this marker, the constructor builds the
// instance without enforcing the container's declared roles: required
// roles may be absent and no values are checked. The marker itself is
// never stored as a binding. This mode exists for introspection, which
// must instantiate a container type to read its declarations before any
// real values exist; general callers MUST NOT use it to bypass
// validation.
func Reflective() Part {
	return Part{Value: reflectiveMarker{}}
}
