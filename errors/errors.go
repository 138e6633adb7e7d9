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

// Package errors provides reusable error types for the rmx surface.
//
// This package defines the error types used across the rmx packages when
// parsing, marshaling and validating enum-like values, and when accessing
// roles, containers and paths. By centralizing these types, the package
// eliminates code duplication and provides a consistent error handling
// story across the entire rmx surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / access code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
// Enum and model errors (this file):
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, from configuration files or serialized payloads).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//     Use this in UnmarshalJSON / UnmarshalText implementations to provide
//     precise diagnostics to callers.
//
//   - ValidationError
//     Returned when validation of a value fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid bindings.
//
// Access and path errors (access.go):
//
//   - MissingRoleError
//     Returned when a required role has no binding in a container.
//
//   - TypeMismatchError
//     Returned when a value cannot be held by a role, or when a stored
//     value cannot be presented as the requested type.
//
//   - ShapeMismatchError
//     Returned when a traversal step expects a container or a list and
//     finds something else.
//
//   - IndexOutOfRangeError
//     Returned when an index step lands outside the bounds of a list.
//
//   - InvalidPathError
//     Returned when two paths cannot be composed, or when a textual path
//     cannot be interpreted.
//
//   - UnsupportedTypeError
//     Returned when a container type cannot be reconstructed because no
//     parts constructor is known for it.
//
// # Usage
//
// Each package that defines enum-like types can use these error types
// directly or create type aliases for better API clarity:
//
//	import "dirpx.dev/rmx/errors"
//
//	// Direct usage:
//	func ParseShape(s string) (Shape, error) {
//	    switch s {
//	    case "opaque":
//	        return ShapeOpaque, nil
//	    case "list":
//	        return ShapeList, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Shape", Value: s}
//	    }
//	}
//
//	// Or with a type alias for API consistency in the local package:
//	type ParseError = errors.ParseError
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Shape" or
// "Kind"), and Value contains the exact string that could not be interpreted.
// This struct is intended for use in error messages and diagnostics; callers
// MAY pattern-match on Type to provide type-specific guidance to users or to
// translate errors into friendlier messages.
//
// # Example
//
//	func ParseKind(s string) (Kind, error) {
//	    switch s {
//	    case "field":
//	        return KindField, nil
//	    case "index":
//	        return KindIndex, nil
//	    default:
//	        // Returned error will format as:
//	        // "rmx: invalid Kind value: <value>"
//	        return 0, &errors.ParseError{
//	            Type:  "Kind",
//	            Value: s,
//	        }
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Shape").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"rmx: invalid {Type} value: {Value}"
//
// For example:
//
//	"rmx: invalid Shape value: unknown"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "rmx: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Shape"), and
// Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, a value outside the declared constant set).
//
// # Example
//
//	func (s Shape) MarshalJSON() ([]byte, error) {
//	    if !s.Valid() {
//	        // Returned error will format as:
//	        // "rmx: cannot marshal invalid Shape value: <int>"
//	        return nil, &errors.MarshalError{
//	            Type:  "Shape",
//	            Value: int(s),
//	        }
//	    }
//	    return []byte(`"` + s.String() + `"`), nil
//	}
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Shape").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"rmx: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
//
// For example:
//
//	"rmx: cannot marshal invalid Shape value: 99"
//
// This ensures that invalid numeric values are clearly displayed in error
// messages, making it easy to identify and debug marshaling failures.
func (e *MarshalError) Error() string {
	return "rmx: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Shape"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong (for
// example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their configuration or payload could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
//
// # Example
//
//	func (s *Shape) UnmarshalJSON(data []byte) error {
//	    if len(data) == 0 {
//	        return &errors.UnmarshalError{
//	            Type:   "Shape",
//	            Data:   data,
//	            Reason: "empty data",
//	        }
//	    }
//
//	    // ... parsing logic ...
//
//	    // On invalid value:
//	    // return &errors.UnmarshalError{
//	    //     Type:   "Shape",
//	    //     Data:   data,
//	    //     Reason: "unknown value",
//	    // }
//	}
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"rmx: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"rmx: cannot unmarshal Shape: empty data"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it separately
// when appropriate.
func (e *UnmarshalError) Error() string {
	return "rmx: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a value fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Mix", "Remix"), Field optionally identifies which field or binding failed
// validation, Reason provides a human-readable explanation of the validation
// failure, and Value optionally contains the problematic value that failed
// validation.
//
// This error is used by Validate() methods and by construction-time checks
// to report constraint violations, missing required bindings, or invalid
// binding values.
//
// # Example
//
//	func (m Mix) Validate() error {
//	    if containsNil(m) {
//	        return &errors.ValidationError{
//	            Type:   "Mix",
//	            Field:  "age",
//	            Reason: "binding must not be nil",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field or binding that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"rmx: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"rmx: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"rmx: invalid Mix.age: binding must not be nil"
//	"rmx: invalid Remix: freeze exceeded maximum depth"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "rmx: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "rmx: invalid " + e.Type + ": " + e.Reason
}
