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

package mix

import (
	"fmt"
	"strings"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
)

// Mix is the immutable binding store behind every container.
//
// A Mix maps role names to erased values and remembers the order in
// which names were first bound. Container types embed Mix anonymously
// and inherit its entire read surface; the embedded field is the
// container anchor that construction and reconstruction code looks for.
//
// A Mix never changes after construction. The zero Mix is valid and
// empty. Because all state is reached through the embedded map and
// slice, copying a Mix by assignment shares its bindings; that sharing
// is safe precisely because neither copy can mutate them.
type Mix struct {
	// names holds the binding names in first-bound order.
	names []string
	// values maps binding names to their erased values. Stored values
	// are never nil and never the Absent sentinel.
	values map[string]any
}

// Compile-time check that Mix implements the apis contracts.
var (
	_ apis.Carrier = (*Mix)(nil)
	_ apis.Value   = (*Mix)(nil)
)

// Binding returns the erased value bound under name and whether the
// binding exists.
func (m Mix) Binding(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Names returns the binding names in first-bound order. The returned
// slice is a fresh copy the caller may retain or mutate.
func (m Mix) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of bindings.
func (m Mix) Len() int {
	return len(m.names)
}

// String returns a rendering of all bindings in first-bound order, for
// example "Mix{firstName:Ada, age:36}". Binding values are rendered
// with their default formatting; for log output that may leave the
// process use Redacted instead.
func (m Mix) String() string {
	var sb strings.Builder
	sb.WriteString("Mix{")
	for i, name := range m.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%v", name, m.values[name])
	}
	sb.WriteString("}")
	return sb.String()
}

// Redacted returns a log-safe rendering that keeps the binding names
// and count but masks every value, for example
// "Mix{firstName:[REDACTED], age:[REDACTED]}".
func (m Mix) Redacted() string {
	var sb strings.Builder
	sb.WriteString("Mix{")
	for i, name := range m.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(":[REDACTED]")
	}
	sb.WriteString("}")
	return sb.String()
}

// TypeName returns "Mix", the name of the type for logging and debugging.
//
// Embedding containers inherit this method, so the name identifies the
// anchor rather than the outer type; errors about a specific container
// use the outer type's reflected name instead.
func (m Mix) TypeName() string {
	return "Mix"
}

// IsZero reports whether the mix carries no bindings.
func (m Mix) IsZero() bool {
	return len(m.names) == 0
}

// Validate checks the mix against the current global registry: every
// binding name must be interned and every bound value must still be
// acceptable for its role.
//
// Construction already guarantees this for role-bound parts, so
// Validate is chiefly useful after deserialization or when raw parts
// were involved. Unregistered binding names fail validation because no
// role contract can vouch for their values.
func (m Mix) Validate() error {
	for _, name := range m.names {
		v := m.values[name]
		r, ok := rmx.Lookup(name)
		if !ok {
			return &errors.ValidationError{
				Type:   "Mix",
				Field:  name,
				Reason: "binding name is not a registered role",
			}
		}
		if err := r.RequireCanHold(v); err != nil {
			return &errors.ValidationError{
				Type:   "Mix",
				Field:  name,
				Reason: err.Error(),
				Value:  v,
			}
		}
	}
	return nil
}
