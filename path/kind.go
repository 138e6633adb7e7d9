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

package path

import (
	"encoding/json"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"gopkg.in/yaml.v3"
)

// Kind classifies a path segment by how it selects the next value.
//
// Paths descend through containers and lists with two segment flavors:
//
//  1. A field segment selects a binding in a container by role name.
//     It may only follow a container-shaped position.
//
//  2. An index segment selects an element of a list by position. It may
//     only follow a list-shaped position.
//
// The Kind is fixed when the segment is created and, together with the
// preceding segment's shape, decides whether a composition is legal.
type Kind int

const (
	// KindField marks a segment that descends into a container binding
	// by role name.
	KindField Kind = iota

	// KindIndex marks a segment that descends into a list element by
	// position.
	KindIndex
)

// Compile-time check that Kind implements the apis contracts.
var (
	_ apis.Value        = (*Kind)(nil)
	_ apis.Serializable = (*Kind)(nil)
	_ apis.Comparable   = (*Kind)(nil)
)

// String constants for Kind values used in serialization, parsing,
// and human-facing output.
//
// These constants define the canonical external representation of Kind
// and MAY be used in diagnostics and serialized payloads. Changing any
// of these strings is a breaking change for consumers that rely on
// textual forms.
const (
	KindFieldStr = "field"
	KindIndexStr = "index"
)

// String returns the canonical string representation of the Kind value.
//
// The returned string is always lowercase and is suitable for use in
// error messages, logs, and serialized payloads. The mapping is:
//
//	KindField -> "field"
//	KindIndex -> "index"
//
// If the Kind value is not one of the defined constants, String returns
// "unknown". Callers that require only valid Kind values SHOULD either
// check Valid before calling String or treat "unknown" as an indicator
// of a programming error.
func (k Kind) String() string {
	switch k {
	case KindField:
		return KindFieldStr
	case KindIndex:
		return KindIndexStr
	default:
		return "unknown"
	}
}

// ParseKind converts a textual representation into a Kind value.
//
// The function accepts a small set of case-insensitive and stylistic
// variants and maps them to the corresponding constants, while still
// preserving a single canonical output form via String().
//
// Examples of accepted inputs:
//
//	"field", "Field", "FIELD" -> KindField
//	"index", "Index", "INDEX" -> KindIndex
//
// If the input string does not match any known Kind value, ParseKind
// returns a non-nil *ParseError. In that case the returned Kind MUST
// NOT be used; only the error is meaningful.
func ParseKind(str string) (Kind, error) {
	switch str {
	case KindFieldStr, "Field", "FIELD":
		return KindField, nil
	case KindIndexStr, "Index", "INDEX":
		return KindIndex, nil
	default:
		return KindField, &errors.ParseError{Type: "Kind", Value: str}
	}
}

// Valid reports whether the Kind value is one of the defined constants.
//
// This method is primarily useful when Kind values may have been
// created via deserialization, numeric casts, or other untrusted input.
func (k Kind) Valid() bool {
	return k == KindField || k == KindIndex
}

// MarshalJSON implements json.Marshaler for Kind.
//
// A valid Kind is serialized as its canonical string representation
// (for example, "field"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce JSON output.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Kind.
//
// The method accepts both string and numeric JSON representations.
//
//   - String: "field", "index" and their accepted variants, which are
//     resolved via ParseKind.
//
//   - Number: 0 (KindField), 1 (KindIndex), corresponding to the enum
//     constants in their declaration order.
//
// String input is the preferred, stable representation. If the input
// cannot be parsed as either string or number, or if it resolves to an
// invalid Kind, UnmarshalJSON returns an *UnmarshalError.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(str)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	*k = Kind(i)
	if !k.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Kind.
//
// The textual form is the same lowercase string returned by String().
// If the Kind value is invalid, MarshalText returns a *MarshalError.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
//
// The method accepts the same textual vocabulary as ParseKind, using it
// as the single source of truth for mapping strings to Kind values. On
// failure, UnmarshalText returns the underlying *ParseError.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// TypeName returns "Kind", the name of the type for logging and debugging.
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string representation as String().
//
// Kind values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string
// form.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind has its zero value.
//
// For Kind (an enum type), the zero value is KindField (constant 0).
//
// Note: The zero value (KindField) is a valid Kind, so IsZero returning
// true does not indicate an error condition.
func (k Kind) IsZero() bool {
	return k == KindField
}

// Equal reports whether this Kind is equal to another value.
//
// The method accepts any type for other and uses type assertion to
// check if it is a Kind or *Kind. Two Kind values are equal if they
// represent the same enum constant.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate checks whether the Kind value is one of the defined
// constants.
//
// This method returns nil if the Kind is valid (KindField or
// KindIndex), and returns an error if the value is outside the valid
// range.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.MarshalError{
			Type:  "Kind",
			Value: int(k),
		}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Kind.
//
// A valid Kind is serialized as its canonical string representation.
// If the value is not valid, MarshalYAML returns a *MarshalError.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Kind.
//
// The method accepts string representations of Kind values (for
// example, "field", "index") and resolves them via ParseKind. On
// failure, it returns the underlying *ParseError.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
