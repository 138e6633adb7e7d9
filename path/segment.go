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
	"reflect"
	"strconv"

	"dirpx.dev/rmx/apis"
)

// Segment is one step of a path: either a named field descending into a
// container binding, or an index descending into a list element.
//
// Segments are created internally by the path constructors; the closed
// construction surface is what lets composition enforce the extension
// rules eagerly. A segment is immutable and carries the static value
// type and shape of the position it selects, which downstream segments
// are checked against.
type Segment struct {
	kind  Kind
	role  apis.Role
	index int
	vt    reflect.Type
	shape apis.Shape
}

// fieldSegment builds the segment selecting the binding of r.
func fieldSegment(r apis.Role) Segment {
	return Segment{
		kind:  KindField,
		role:  r,
		vt:    r.ValueType(),
		shape: r.Shape(),
	}
}

// indexSegment builds the segment selecting element idx of a list with
// element type elem.
func indexSegment(idx int, elem reflect.Type) Segment {
	return Segment{
		kind:  KindIndex,
		index: idx,
		vt:    elem,
		shape: apis.ShapeOf(elem),
	}
}

// Kind returns whether this segment selects by role name or by index.
func (s Segment) Kind() Kind {
	return s.kind
}

// Role returns the role a field segment selects, or nil for an index
// segment.
func (s Segment) Role() apis.Role {
	return s.role
}

// Index returns the position an index segment selects. The value is
// meaningless for a field segment.
func (s Segment) Index() int {
	return s.index
}

// ValueType returns the static Go type of the position this segment
// selects: the role's value type for a field segment, the list's
// element type for an index segment.
func (s Segment) ValueType() reflect.Type {
	return s.vt
}

// Shape returns the traversal classification of the selected position,
// which decides what kind of segment may follow this one.
func (s Segment) Shape() apis.Shape {
	return s.shape
}

// String returns the rendered form of the segment: the role name for a
// field segment, "[i]" for an index segment.
func (s Segment) String() string {
	if s.kind == KindIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	if s.role == nil {
		return ""
	}
	return s.role.Name()
}
