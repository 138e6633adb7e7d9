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
	"encoding/json"
	"reflect"

	"dirpx.dev/rmx/errors"
	"gopkg.in/yaml.v3"
)

// Shape classifies the value a role can hold by how paths may traverse it.
//
// Every role carries exactly one Shape, fixed at role construction time
// from the role's value type. The Shape decides which path segment is
// allowed to extend a path ending in that role:
//
//  1. A container-shaped terminal can only be extended by a named field
//     segment, because containers are addressed by role name.
//
//  2. A list-shaped terminal can only be extended by an index segment,
//     because lists are addressed by position.
//
//  3. An opaque-shaped terminal cannot be extended at all; the traversal
//     stops there.
//
// Shape encapsulates this rule so that path composition can reject illegal
// extensions eagerly, at composition time, instead of failing later during
// evaluation against a concrete container.
type Shape int

const (
	// ShapeOpaque marks a value that paths treat as an indivisible leaf.
	//
	// Scalars, structs without a container anchor, and every other type
	// that is neither a slice nor a container falls into this class. A
	// path ending in an opaque role is complete: attempting to extend it
	// with either a field or an index segment is rejected at composition
	// time.
	ShapeOpaque Shape = iota

	// ShapeContainer marks a value whose bindings are addressed by role
	// name.
	//
	// Types implementing the Carrier interface fall into this class. A
	// path ending in a container role may be extended by a named field
	// segment, descending into the binding stored under that name.
	ShapeContainer

	// ShapeList marks a value whose elements are addressed by position.
	//
	// Slice types fall into this class, regardless of their element type.
	// A path ending in a list role may be extended by an index segment,
	// descending into the element at that position. Slices are classified
	// as lists even when their element type is itself a container; the
	// container shape only applies after an index segment has selected a
	// single element.
	ShapeList
)

// Compile-time check that Shape implements the apis contracts.
var (
	_ Value        = (*Shape)(nil)
	_ Serializable = (*Shape)(nil)
	_ Comparable   = (*Shape)(nil)
)

// String constants for Shape values used in serialization, parsing,
// and human-facing output.
//
// These constants define the canonical external representation of Shape
// and MAY be used in diagnostics and serialized payloads. Changing any of
// these strings is a breaking change for consumers that rely on textual
// forms.
const (
	ShapeOpaqueStr    = "opaque"
	ShapeContainerStr = "container"
	ShapeListStr      = "list"
)

// String returns the canonical string representation of the Shape value.
//
// The returned string is always lowercase and is suitable for use in
// error messages, logs, and serialized payloads. The mapping is:
//
//	ShapeOpaque    -> "opaque"
//	ShapeContainer -> "container"
//	ShapeList      -> "list"
//
// If the Shape value is not one of the defined constants, String returns
// "unknown". Callers that require only valid Shape values SHOULD either
// check Valid before calling String or treat "unknown" as an indicator of
// a programming error.
func (s Shape) String() string {
	switch s {
	case ShapeOpaque:
		return ShapeOpaqueStr
	case ShapeContainer:
		return ShapeContainerStr
	case ShapeList:
		return ShapeListStr
	default:
		return "unknown"
	}
}

// ParseShape converts a textual representation into a Shape value.
//
// The function accepts a small set of case-insensitive and stylistic
// variants and maps them to the corresponding constants, while still
// preserving a single canonical output form via String().
//
// Examples of accepted inputs:
//
//	"opaque", "Opaque", "OPAQUE"          -> ShapeOpaque
//	"container", "Container", "CONTAINER" -> ShapeContainer
//	"list", "List", "LIST"                -> ShapeList
//
// If the input string does not match any known Shape value, ParseShape
// returns a non-nil *ParseError. In that case the returned Shape MUST NOT
// be used; only the error is meaningful.
func ParseShape(str string) (Shape, error) {
	switch str {
	case ShapeOpaqueStr, "Opaque", "OPAQUE":
		return ShapeOpaque, nil
	case ShapeContainerStr, "Container", "CONTAINER":
		return ShapeContainer, nil
	case ShapeListStr, "List", "LIST":
		return ShapeList, nil
	default:
		return ShapeOpaque, &errors.ParseError{Type: "Shape", Value: str}
	}
}

// Valid reports whether the Shape value is one of the defined constants.
//
// This method is primarily useful when Shape values may have been created
// via deserialization, numeric casts, or other untrusted input. Code that
// relies on Shape being well-formed SHOULD call Valid before using it to
// drive traversal logic.
func (s Shape) Valid() bool {
	return s == ShapeOpaque || s == ShapeContainer || s == ShapeList
}

// MarshalJSON implements json.Marshaler for Shape.
//
// A valid Shape is serialized as its canonical string representation
// (for example, "container"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce JSON output. This behavior
// prevents invalid Shape values from silently leaking into JSON payloads
// and surfaces programming errors at encoding time.
func (s Shape) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Shape.
//
// The method accepts both string and numeric JSON representations.
//
//   - String: "opaque", "container", "list" and their accepted variants,
//     which are resolved via ParseShape.
//
//   - Number: 0 (ShapeOpaque), 1 (ShapeContainer), 2 (ShapeList),
//     corresponding to the enum constants in their declaration order.
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with payloads that store enum-like values as
// integers. If the input cannot be parsed as either string or number, or
// if it resolves to an invalid Shape, UnmarshalJSON returns an
// *UnmarshalError.
func (s *Shape) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseShape(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: err.Error()}
	}
	*s = Shape(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Shape.
//
// The textual form is the same lowercase string returned by String()
// (for example, "list"). This encoding is commonly used by YAML and other
// text-based formats. If the Shape value is invalid, MarshalText returns
// a *MarshalError.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Shape.
//
// The method accepts the same textual vocabulary as ParseShape, using it
// as the single source of truth for mapping strings to Shape values. On
// failure, UnmarshalText returns the underlying *ParseError.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TypeName returns "Shape", the name of the type for logging and debugging.
//
// This method implements part of the apis.Value contract, allowing Shape
// values to be used consistently with other rmx types in error messages,
// logs, and reflection-based code.
func (s Shape) TypeName() string {
	return "Shape"
}

// Redacted returns the same string representation as String().
//
// Shape values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string
// form. This method implements part of the apis.Value contract.
func (s Shape) Redacted() string {
	return s.String()
}

// IsZero reports whether the Shape has its zero value.
//
// For Shape (an enum type), the zero value is ShapeOpaque (constant 0).
// This method implements part of the apis.Value contract and is useful
// when checking if a Shape field was explicitly set or left at its
// default value.
//
// Note: The zero value (ShapeOpaque) is a valid Shape, so IsZero returning
// true does not indicate an error condition.
func (s Shape) IsZero() bool {
	return s == ShapeOpaque
}

// Equal reports whether this Shape is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a Shape or *Shape. Two Shape values are equal if they represent
// the same enum constant.
//
// This method implements the apis.Comparable contract and is useful for
// comparisons in tests and validation logic.
func (s Shape) Equal(other any) bool {
	switch v := other.(type) {
	case Shape:
		return s == v
	case *Shape:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate checks whether the Shape value is one of the defined constants.
//
// This method returns nil if the Shape is valid (ShapeOpaque,
// ShapeContainer or ShapeList), and returns an error if the value is
// outside the valid range.
//
// This method implements part of the apis.Value contract and is typically
// called after deserialization or numeric casts to ensure the value is
// well-formed before using it in traversal logic.
func (s Shape) Validate() error {
	if !s.Valid() {
		return &errors.MarshalError{
			Type:  "Shape",
			Value: int(s),
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Shape.
//
// A valid Shape is serialized as its canonical string representation
// (for example, "container"). If the value is not valid, MarshalYAML
// returns a *MarshalError.
func (s Shape) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Shape.
//
// The method accepts string representations of Shape values (for example,
// "opaque", "list") and resolves them via ParseShape. On failure, it
// returns the underlying *ParseError.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Shape", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseShape(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// carrierType is the reflected Carrier interface, used by ShapeOf to
// detect container types.
var carrierType = reflect.TypeOf((*Carrier)(nil)).Elem()

// ShapeOf classifies a Go type into its Shape.
//
// The classification rules, applied in order, are:
//
//  1. A nil type is ShapeOpaque.
//  2. A slice type is ShapeList, regardless of its element type.
//  3. A type whose value method set implements Carrier is ShapeContainer.
//  4. Everything else is ShapeOpaque.
//
// The slice rule deliberately takes precedence over the container rule:
// a slice of containers is addressed by position first, so paths must
// index into it before they can descend by role name.
//
// Containers are expected to implement Carrier with value receivers, so
// both T and *T are recognized for a container type T.
func ShapeOf(t reflect.Type) Shape {
	if t == nil {
		return ShapeOpaque
	}
	if t.Kind() == reflect.Slice {
		return ShapeList
	}
	if t.Implements(carrierType) {
		return ShapeContainer
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(carrierType) {
		return ShapeContainer
	}
	return ShapeOpaque
}
