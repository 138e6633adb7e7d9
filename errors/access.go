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

package errors

import "strconv"

// MissingRoleError is returned when a required role has no binding in a
// container.
//
// Role is the name of the absent role, and Container optionally identifies
// where it was expected: either the container's type name (for example,
// "Employee") or, during path traversal, the rendered path up to and
// including the failing step (for example, "employee + hrInfo").
//
// Consumers that treat absence as a normal outcome use the (value, ok)
// return forms instead; this error only appears where presence is
// required.
//
// # Example
//
//	v, ok, err := mix.Get(emp, Age)
//	if err != nil { ... }
//	if !ok {
//	    // Require would have returned:
//	    // "rmx: missing required role age in Employee"
//	}
type MissingRoleError struct {
	// Role is the name of the role that has no binding.
	Role string

	// Container identifies where the role was expected.
	// May be empty when no useful location is available.
	Container string
}

// Error implements the error interface for MissingRoleError.
//
// The error message format is:
//
//	"rmx: missing required role {Role} in {Container}" (when Container is specified)
//	"rmx: missing required role {Role}" (when Container is empty)
//
// For example:
//
//	"rmx: missing required role age in Employee"
func (e *MissingRoleError) Error() string {
	if e.Container != "" {
		return "rmx: missing required role " + e.Role + " in " + e.Container
	}
	return "rmx: missing required role " + e.Role
}

// TypeMismatchError is returned when a value cannot be held by a role, or
// when a stored value cannot be presented as the requested type.
//
// Role is the name of the role involved, Want describes the acceptable
// type, Got describes the type actually seen, and Reason optionally
// carries a more precise explanation (for example, a violated list bound).
//
// This error covers both directions of the same contract: rejecting a
// candidate value at construction or mutation time, and rejecting a stored
// value at consumption time when the requested Go type does not match.
//
// # Example
//
//	if err := Age.RequireCanHold("forty"); err != nil {
//	    // "rmx: role age cannot hold string: want int"
//	}
type TypeMismatchError struct {
	// Role is the name of the role involved in the mismatch.
	Role string

	// Want describes the type the role can hold or the type requested.
	Want string

	// Got describes the type of the value actually seen.
	Got string

	// Reason optionally refines the mismatch beyond the type names,
	// for example "length 7 exceeds maximum 5".
	// May be empty.
	Reason string
}

// Error implements the error interface for TypeMismatchError.
//
// The error message format is:
//
//	"rmx: role {Role} cannot hold {Got}: {Reason}" (when Reason is specified)
//	"rmx: role {Role} cannot hold {Got}: want {Want}" (when Reason is empty)
//
// For example:
//
//	"rmx: role age cannot hold string: want int"
func (e *TypeMismatchError) Error() string {
	if e.Reason != "" {
		return "rmx: role " + e.Role + " cannot hold " + e.Got + ": " + e.Reason
	}
	return "rmx: role " + e.Role + " cannot hold " + e.Got + ": want " + e.Want
}

// ShapeMismatchError is returned when a traversal step expects a container
// or a list and finds something else.
//
// Want is the expected shape ("container" or "list"), Got describes what
// was actually found (a shape name or a Go type), and Step optionally
// carries the rendered path up to and including the failing step.
//
// # Example
//
//	// Descending a field segment into a plain string:
//	// "rmx: expected container, got string at employee + firstName"
type ShapeMismatchError struct {
	// Want is the shape the step required, for example "container".
	Want string

	// Got describes what was found instead, for example "string".
	Got string

	// Step is the rendered path up to and including the failing step.
	// May be empty outside of path traversal.
	Step string
}

// Error implements the error interface for ShapeMismatchError.
//
// The error message format is:
//
//	"rmx: expected {Want}, got {Got} at {Step}" (when Step is specified)
//	"rmx: expected {Want}, got {Got}" (when Step is empty)
//
// For example:
//
//	"rmx: expected list, got string at reports[2]"
func (e *ShapeMismatchError) Error() string {
	if e.Step != "" {
		return "rmx: expected " + e.Want + ", got " + e.Got + " at " + e.Step
	}
	return "rmx: expected " + e.Want + ", got " + e.Got
}

// IndexOutOfRangeError is returned when an index step lands outside the
// bounds of a list.
//
// Index is the offending index, Len is the length of the list at the time
// of the access, and Step optionally carries the rendered path up to and
// including the failing step.
//
// # Example
//
//	// Reading reports[5] from a three-element list:
//	// "rmx: index 5 out of range with length 3 at reports[5]"
type IndexOutOfRangeError struct {
	// Index is the index that was requested.
	Index int

	// Len is the length of the list that was indexed.
	Len int

	// Step is the rendered path up to and including the failing step.
	// May be empty outside of path traversal.
	Step string
}

// Error implements the error interface for IndexOutOfRangeError.
//
// The error message format is:
//
//	"rmx: index {Index} out of range with length {Len} at {Step}" (when Step is specified)
//	"rmx: index {Index} out of range with length {Len}" (when Step is empty)
//
// For example:
//
//	"rmx: index 5 out of range with length 3 at reports[5]"
func (e *IndexOutOfRangeError) Error() string {
	msg := "rmx: index " + strconv.Itoa(e.Index) +
		" out of range with length " + strconv.Itoa(e.Len)
	if e.Step != "" {
		msg += " at " + e.Step
	}
	return msg
}

// InvalidPathError is returned when two paths cannot be composed, or when
// a textual path cannot be interpreted.
//
// For composition failures, Left and Right are the rendered forms of the
// two operands. For parse failures, Left carries the offending input and
// Right is empty. Reason explains the specific violation, for example
// "container step requires a field segment".
//
// # Example
//
//	// Extending a list-terminal path with a field segment:
//	// "rmx: cannot extend path reports with hrInfo: list step requires an index segment"
type InvalidPathError struct {
	// Left is the rendered left operand, or the unparsable input.
	Left string

	// Right is the rendered right operand.
	// Empty for parse failures.
	Right string

	// Reason is a short, human-readable explanation of the violation.
	Reason string
}

// Error implements the error interface for InvalidPathError.
//
// The error message format is:
//
//	"rmx: cannot extend path {Left} with {Right}: {Reason}" (when Right is specified)
//	"rmx: invalid path {Left}: {Reason}" (when Right is empty)
//
// For example:
//
//	"rmx: cannot extend path reports with hrInfo: list step requires an index segment"
//	"rmx: invalid path [0] + age: path must begin with a role name"
func (e *InvalidPathError) Error() string {
	if e.Right != "" {
		return "rmx: cannot extend path " + e.Left + " with " + e.Right + ": " + e.Reason
	}
	return "rmx: invalid path " + e.Left + ": " + e.Reason
}

// UnsupportedTypeError is returned when a container type cannot be
// reconstructed because no parts constructor is known for it.
//
// Type is the Go type that could not be handled, and Reason optionally
// explains what was missing (for example, an absent anchor field).
//
// This error surfaces from copy-on-write reconstruction and from the
// generic construction helpers when they are handed a type outside the
// supported set.
//
// # Example
//
//	// Reconstructing a struct with no container anchor:
//	// "rmx: unsupported container type main.Plain: no container anchor field"
type UnsupportedTypeError struct {
	// Type is the string form of the unsupported Go type.
	Type string

	// Reason is a short, human-readable explanation of what was missing.
	// May be empty.
	Reason string
}

// Error implements the error interface for UnsupportedTypeError.
//
// The error message format is:
//
//	"rmx: unsupported container type {Type}: {Reason}" (when Reason is specified)
//	"rmx: unsupported container type {Type}" (when Reason is empty)
//
// For example:
//
//	"rmx: unsupported container type main.Plain: no container anchor field"
func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return "rmx: unsupported container type " + e.Type + ": " + e.Reason
	}
	return "rmx: unsupported container type " + e.Type
}
