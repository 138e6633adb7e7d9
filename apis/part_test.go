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

package apis_test

import (
	"reflect"
	"testing"

	"dirpx.dev/rmx/apis"
)

// stubRole implements apis.Role over a fixed name and value type, enough
// for exercising part construction without the role package.
type stubRole struct {
	name string
	vt   reflect.Type
}

func (r stubRole) Name() string            { return r.name }
func (r stubRole) Shape() apis.Shape       { return apis.ShapeOf(r.vt) }
func (r stubRole) ValueType() reflect.Type { return r.vt }

func (r stubRole) CanHold(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v) == r.vt
}

func (r stubRole) RequireCanHold(v any) error { return nil }

func TestPartOf(t *testing.T) {
	r := stubRole{name: "age", vt: reflect.TypeOf(0)}

	p := apis.PartOf(r, 42)

	if p.Name != "age" {
		t.Errorf("PartOf() Name = %q, want %q", p.Name, "age")
	}
	if p.Role == nil || p.Role.Name() != "age" {
		t.Errorf("PartOf() Role = %v, want role named age", p.Role)
	}
	if p.Value != 42 {
		t.Errorf("PartOf() Value = %v, want 42", p.Value)
	}
}

func TestRaw(t *testing.T) {
	p := apis.Raw("firstName", "Ada")

	if p.Name != "firstName" {
		t.Errorf("Raw() Name = %q, want %q", p.Name, "firstName")
	}
	if p.Role != nil {
		t.Errorf("Raw() Role = %v, want nil", p.Role)
	}
	if p.Value != "Ada" {
		t.Errorf("Raw() Value = %v, want Ada", p.Value)
	}
}

func TestPart_String(t *testing.T) {
	tests := []struct {
		name string
		part apis.Part
		want string
	}{
		{
			name: "named_value",
			part: apis.Raw("age", 42),
			want: "age: 42",
		},
		{
			name: "string_value",
			part: apis.Raw("firstName", "Ada"),
			want: "firstName: Ada",
		},
		{
			name: "absent_value",
			part: apis.Raw("age", apis.Absent),
			want: "age: <absent>",
		},
		{
			name: "reflective_marker",
			part: apis.Reflective(),
			want: "<reflective>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.part.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPart_IsReflective(t *testing.T) {
	tests := []struct {
		name string
		part apis.Part
		want bool
	}{
		{
			name: "reflective_marker",
			part: apis.Reflective(),
			want: true,
		},
		{
			name: "regular_part",
			part: apis.Raw("age", 42),
			want: false,
		},
		{
			name: "zero_part",
			part: apis.Part{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.part.IsReflective(); got != tt.want {
				t.Errorf("IsReflective() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{
			name:  "absent_sentinel",
			value: apis.Absent,
			want:  true,
		},
		{
			name:  "nil",
			value: nil,
			want:  false,
		},
		{
			name:  "zero_int",
			value: 0,
			want:  false,
		},
		{
			name:  "empty_string",
			value: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apis.IsAbsent(tt.value); got != tt.want {
				t.Errorf("IsAbsent(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestReflective_NotAbsent(t *testing.T) {
	p := apis.Reflective()
	if apis.IsAbsent(p.Value) {
		t.Error("IsAbsent() = true for the reflective marker, want false")
	}
	if p.Name != "" {
		t.Errorf("Reflective() Name = %q, want empty", p.Name)
	}
}
