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

import (
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validatable is implemented by types that can check their own internal
// consistency.
//
// Validate MUST return nil if and only if the receiver is in a usable
// state. Implementations MUST NOT mutate the receiver and MUST be safe to
// call any number of times. When validation fails, the returned error
// SHOULD name the offending field or binding so callers can report it
// without further inspection.
type Validatable interface {
	// Validate returns an error describing the first problem found, or
	// nil when the receiver is internally consistent.
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON,
// YAML, and plain text.
//
// Implementations MUST produce the same logical value from an
// unmarshal(marshal(v)) round-trip in every format, and MUST reject input
// that would produce an invalid receiver rather than silently coercing
// it. The marshaled form SHOULD be the human-readable string form where
// one exists.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	encoding.TextMarshaler
	encoding.TextUnmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can render themselves for logs
// and diagnostics.
//
// String MUST be cheap and side-effect free. Redacted MUST return a form
// safe for logs that may leave the process: implementations holding
// user-supplied values MUST mask them and SHOULD keep structural
// information (names, counts, shapes) intact so the output stays useful
// for debugging.
type Loggable interface {
	fmt.Stringer

	// Redacted returns a log-safe rendering of the receiver with
	// user-supplied values masked.
	Redacted() string
}

// Identifiable is implemented by types that expose a stable type name
// for diagnostics and error messages.
//
// TypeName MUST return the same string for every value of the type and
// MUST NOT depend on the receiver's state.
type Identifiable interface {
	// TypeName returns the stable name of the implementing type, for
	// example "Shape" or "Mix".
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they
// carry any information.
//
// IsZero MUST return true exactly when the receiver is indistinguishable
// from its zero value.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is implemented by types that define logical equality beyond
// Go's == operator.
//
// Equal MUST accept both T and *T for the implementing type T and MUST
// return false, never panic, for any other input including nil.
type Comparable interface {
	Equal(other any) bool
}

// Value is the composite contract every rmx value type satisfies.
//
// Containers deliberately omit Serializable from this set: wire encoding
// is role-directed and lives in the codec package, not on the container
// itself. Enumerations additionally implement Serializable.
type Value interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}
