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

package path_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/rmx/apis"
	rmxerrors "dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/path"
	"dirpx.dev/rmx/role"
)

func TestEmpty(t *testing.T) {
	p := path.Empty[Employee]()

	if !p.IsZero() {
		t.Errorf("IsZero() = false, want true")
	}
	if got := p.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got := p.String(); got != "" {
		t.Errorf("String() = %q, want %q", got, "")
	}
	if got := p.Segments(); len(got) != 0 {
		t.Errorf("Segments() = %v, want empty", got)
	}
}

func TestFor(t *testing.T) {
	p := path.For(firstName)

	if got := p.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if got := p.String(); got != "firstName" {
		t.Errorf("String() = %q, want %q", got, "firstName")
	}

	seg := p.Segments()[0]
	if seg.Kind() != path.KindField {
		t.Errorf("segment Kind() = %v, want %v", seg.Kind(), path.KindField)
	}
	if seg.Role() == nil || seg.Role().Name() != "firstName" {
		t.Errorf("segment Role() = %v, want firstName", seg.Role())
	}
	if seg.ValueType() != reflect.TypeOf("") {
		t.Errorf("segment ValueType() = %v, want string", seg.ValueType())
	}
	if seg.Shape() != apis.ShapeOpaque {
		t.Errorf("segment Shape() = %v, want %v", seg.Shape(), apis.ShapeOpaque)
	}
}

func TestAt(t *testing.T) {
	p := path.At(path.For(tags), 2)

	if got := p.String(); got != "tags[2]" {
		t.Errorf("String() = %q, want %q", got, "tags[2]")
	}
	if got := p.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	seg := p.Segments()[1]
	if seg.Kind() != path.KindIndex {
		t.Errorf("segment Kind() = %v, want %v", seg.Kind(), path.KindIndex)
	}
	if seg.Index() != 2 {
		t.Errorf("segment Index() = %d, want 2", seg.Index())
	}
	if seg.ValueType() != reflect.TypeOf("") {
		t.Errorf("segment ValueType() = %v, want string", seg.ValueType())
	}
}

func TestAt_OnEmptyPath(t *testing.T) {
	// An index segment may lead a path: the list it indexes is then the
	// evaluation root itself.
	p := path.At(path.Empty[[]string](), 1)

	if got := p.String(); got != "[1]" {
		t.Errorf("String() = %q, want %q", got, "[1]")
	}
	if got := p.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestAt_LeavesOperandUntouched(t *testing.T) {
	base := path.For(tags)
	_ = path.At(base, 0)
	_ = path.At(base, 1)

	if got := base.String(); got != "tags" {
		t.Errorf("operand changed: String() = %q, want %q", got, "tags")
	}
}

func TestJoin(t *testing.T) {
	p, err := path.Join(path.For(hrInfo), grade)
	if err != nil {
		t.Fatalf("Join() unexpected error: %v", err)
	}
	if got := p.String(); got != "hrInfo + grade" {
		t.Errorf("String() = %q, want %q", got, "hrInfo + grade")
	}
}

func TestJoin_OnEmptyPath(t *testing.T) {
	p, err := path.Join(path.Empty[Employee](), firstName)
	if err != nil {
		t.Fatalf("Join() unexpected error: %v", err)
	}
	if !p.Equal(path.For(firstName)) {
		t.Errorf("Join(Empty, firstName) = %q, want equal to For(firstName)", p.String())
	}
}

func TestJoin_IllegalTerminals(t *testing.T) {
	t.Run("list_terminal", func(t *testing.T) {
		_, err := path.Join(path.For(tags), grade)
		if err == nil {
			t.Fatalf("Join() error = nil, want *InvalidPathError")
		}
		want := "rmx: cannot extend path tags with grade: list step requires an index segment"
		if err.Error() != want {
			t.Errorf("Join() error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("opaque_terminal", func(t *testing.T) {
		_, err := path.Join(path.For(age), firstName)
		if err == nil {
			t.Fatalf("Join() error = nil, want *InvalidPathError")
		}
		var perr *rmxerrors.InvalidPathError
		if !errors.As(err, &perr) {
			t.Fatalf("Join() error = %T, want *InvalidPathError", err)
		}
		want := "rmx: cannot extend path age with firstName: opaque step cannot be extended"
		if err.Error() != want {
			t.Errorf("Join() error = %q, want %q", err.Error(), want)
		}
	})
}

func TestConcat_Identities(t *testing.T) {
	t.Run("empty_left", func(t *testing.T) {
		got, err := path.Concat(path.Empty[Employee](), path.For(firstName))
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		if !got.Equal(path.For(firstName)) {
			t.Errorf("Concat(Empty, p) = %q, want equal to p", got.String())
		}
	})

	t.Run("empty_right", func(t *testing.T) {
		got, err := path.Concat(path.For(firstName), path.Empty[string]())
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		if !got.Equal(path.For(firstName)) {
			t.Errorf("Concat(p, Empty) = %q, want equal to p", got.String())
		}
	})

	t.Run("both_empty", func(t *testing.T) {
		got, err := path.Concat(path.Empty[Employee](), path.Empty[Employee]())
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("Concat(Empty, Empty) = %q, want empty", got.String())
		}
	})
}

func TestConcat_EmptyRightCannotRetype(t *testing.T) {
	_, err := path.Concat(path.For(firstName), path.Empty[int]())
	if err == nil {
		t.Fatalf("Concat() error = nil, want *InvalidPathError")
	}
	want := "rmx: invalid path firstName: empty path of type int cannot re-type terminal string"
	if err.Error() != want {
		t.Errorf("Concat() error = %q, want %q", err.Error(), want)
	}
}

func TestConcat_Junctions(t *testing.T) {
	t.Run("container_then_field", func(t *testing.T) {
		got, err := path.Concat(path.For(hrInfo), path.For(grade))
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		if !got.Equal(mustJoin(t, path.For(hrInfo), grade)) {
			t.Errorf("Concat() = %q, want equal to Join form", got.String())
		}
	})

	t.Run("list_then_index", func(t *testing.T) {
		got, err := path.Concat(path.For(tags), path.At(path.Empty[[]string](), 1))
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		if !got.Equal(path.At(path.For(tags), 1)) {
			t.Errorf("Concat() = %q, want equal to At form", got.String())
		}
	})

	t.Run("container_then_index", func(t *testing.T) {
		_, err := path.Concat(path.For(hrInfo), path.At(path.Empty[[]string](), 0))
		if err == nil {
			t.Fatalf("Concat() error = nil, want *InvalidPathError")
		}
		want := "rmx: cannot extend path hrInfo with [0]: container step requires a field segment"
		if err.Error() != want {
			t.Errorf("Concat() error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("list_then_field", func(t *testing.T) {
		_, err := path.Concat(path.For(tags), path.For(grade))
		if err == nil {
			t.Fatalf("Concat() error = nil, want *InvalidPathError")
		}
		want := "rmx: cannot extend path tags with grade: list step requires an index segment"
		if err.Error() != want {
			t.Errorf("Concat() error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("opaque_then_field", func(t *testing.T) {
		_, err := path.Concat(path.For(age), path.For(firstName))
		if err == nil {
			t.Fatalf("Concat() error = nil, want *InvalidPathError")
		}
		want := "rmx: cannot extend path age with firstName: opaque step cannot be extended"
		if err.Error() != want {
			t.Errorf("Concat() error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("opaque_then_index", func(t *testing.T) {
		_, err := path.Concat(path.For(age), path.At(path.Empty[[]string](), 0))
		if err == nil {
			t.Fatalf("Concat() error = nil, want *InvalidPathError")
		}
		want := "rmx: cannot extend path age with [0]: opaque step cannot be indexed"
		if err.Error() != want {
			t.Errorf("Concat() error = %q, want %q", err.Error(), want)
		}
	})
}

func TestConcat_EqualsStepwiseComposition(t *testing.T) {
	stepwise := mustJoin(t, mustJoin(t, path.At(path.For(reports), 0), hrInfo), grade)

	suffix := mustJoin(t, path.For(hrInfo), grade)
	concat, err := path.Concat(path.At(path.For(reports), 0), suffix)
	if err != nil {
		t.Fatalf("Concat() unexpected error: %v", err)
	}

	if !concat.Equal(stepwise) {
		t.Errorf("Concat() = %q, want %q", concat.String(), stepwise.String())
	}
	if got := concat.String(); got != "reports[0] + hrInfo + grade" {
		t.Errorf("String() = %q, want %q", got, "reports[0] + hrInfo + grade")
	}
}

func TestConcat_LeavesOperandsUntouched(t *testing.T) {
	a := path.At(path.For(reports), 0)
	b := mustJoin(t, path.For(hrInfo), grade)
	if _, err := path.Concat(a, b); err != nil {
		t.Fatalf("Concat() unexpected error: %v", err)
	}

	if got := a.String(); got != "reports[0]" {
		t.Errorf("left operand changed: String() = %q, want %q", got, "reports[0]")
	}
	if got := b.String(); got != "hrInfo + grade" {
		t.Errorf("right operand changed: String() = %q, want %q", got, "hrInfo + grade")
	}
}

func TestAs(t *testing.T) {
	t.Run("matching_terminal", func(t *testing.T) {
		erased, err := path.Concat(path.For(hrInfo), path.For(grade))
		if err != nil {
			t.Fatalf("Concat() unexpected error: %v", err)
		}
		typed, err := path.As[int](erased)
		if err != nil {
			t.Fatalf("As() unexpected error: %v", err)
		}
		if !typed.Equal(mustJoin(t, path.For(hrInfo), grade)) {
			t.Errorf("As() = %q, want equal to Join form", typed.String())
		}
	})

	t.Run("mismatched_terminal", func(t *testing.T) {
		_, err := path.As[int](path.For(firstName))
		if err == nil {
			t.Fatalf("As() error = nil, want *InvalidPathError")
		}
		want := "rmx: invalid path firstName: terminal type string does not match int"
		if err.Error() != want {
			t.Errorf("As() error = %q, want %q", err.Error(), want)
		}
	})

	t.Run("empty_retypes_freely", func(t *testing.T) {
		got, err := path.As[int](path.Empty[string]())
		if err != nil {
			t.Fatalf("As() unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("As(Empty) = %q, want empty", got.String())
		}
	})
}

func TestPath_Segments_Copy(t *testing.T) {
	p := mustJoin(t, path.For(hrInfo), grade)

	segs := p.Segments()
	segs[0] = segs[1]

	if got := p.String(); got != "hrInfo + grade" {
		t.Errorf("mutating Segments() changed the path: String() = %q", got)
	}
}

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "empty",
			got:  path.Empty[Employee]().String(),
			want: "",
		},
		{
			name: "single_field",
			got:  path.For(firstName).String(),
			want: "firstName",
		},
		{
			name: "field_and_index",
			got:  path.At(path.For(tags), 2).String(),
			want: "tags[2]",
		},
		{
			name: "index_then_field",
			got: mustJoin(t, path.At(path.For(reports), 1), firstName).
				String(),
			want: "reports[1] + firstName",
		},
		{
			name: "leading_index",
			got:  path.At(path.Empty[[]string](), 3).String(),
			want: "[3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestPath_Equal(t *testing.T) {
	base := path.At(path.For(tags), 1)
	same := path.At(path.For(tags), 1)

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{
			name:  "equal_value",
			other: same,
			want:  true,
		},
		{
			name:  "equal_pointer",
			other: &same,
			want:  true,
		},
		{
			name:  "different_index",
			other: path.At(path.For(tags), 2),
			want:  false,
		},
		{
			name:  "different_role",
			other: path.For(unit),
			want:  false,
		},
		{
			name:  "different_length",
			other: path.For(tags),
			want:  false,
		},
		{
			name:  "nil_pointer",
			other: (*path.Path[string])(nil),
			want:  false,
		},
		{
			name:  "different_type",
			other: "tags[1]",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_TypeName(t *testing.T) {
	p := path.For(firstName)
	if got := p.TypeName(); got != "Path" {
		t.Errorf("TypeName() = %q, want %q", got, "Path")
	}
}

func TestPath_Redacted(t *testing.T) {
	p := mustJoin(t, path.At(path.For(reports), 1), firstName)
	if got, want := p.Redacted(), p.String(); got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
}

func TestPath_IsZero(t *testing.T) {
	if !path.Empty[int]().IsZero() {
		t.Errorf("Empty().IsZero() = false, want true")
	}
	if path.For(firstName).IsZero() {
		t.Errorf("For(firstName).IsZero() = true, want false")
	}
}

// ghostRole satisfies the binder contract but reports no value type,
// which only hand-built roles can do.
type ghostRole struct{}

func (ghostRole) Name() string               { return "ghost" }
func (ghostRole) Shape() apis.Shape          { return apis.ShapeOpaque }
func (ghostRole) ValueType() reflect.Type    { return nil }
func (ghostRole) CanHold(any) bool           { return false }
func (ghostRole) RequireCanHold(v any) error { return nil }
func (g ghostRole) Of(v int) apis.Part       { return apis.PartOf(g, v) }

func TestPath_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       interface{ Validate() error }
		wantErr string
	}{
		{
			name: "built_path",
			p:    mustJoin(t, path.At(path.For(reports), 0), firstName),
		},
		{
			name: "empty_path",
			p:    path.Empty[Employee](),
		},
		{
			name:    "zero_role",
			p:       path.For(role.Role[int]{}),
			wantErr: "rmx: invalid Path: field segment has no role",
		},
		{
			name:    "role_without_value_type",
			p:       path.For(ghostRole{}),
			wantErr: "rmx: invalid Path.ghost: field segment role has no value type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
