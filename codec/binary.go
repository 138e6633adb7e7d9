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

package codec

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/mix"
	uref "dirpx.dev/rmx/utils/reflect"
)

// envelope frames every binary payload with the format identity
// DecodeBinary gates on before touching the body.
type envelope struct {
	Format  string  `msgpack:"format"`
	Version string  `msgpack:"version"`
	Body    binNode `msgpack:"body"`
}

// binNode is the wire form of one container: binding names and values
// as parallel arrays, preserving construction order. Nested containers
// appear as binNode values, lists as element arrays.
type binNode struct {
	Names  []string `msgpack:"names"`
	Values []any    `msgpack:"values"`
}

// EncodeBinary renders the container tree as a MessagePack payload
// framed by the format envelope. Bindings are written in construction
// order; nested containers and lists are written recursively.
func EncodeBinary(c apis.Carrier) ([]byte, error) {
	if uref.IsNil(c) {
		return nil, &errors.UnsupportedTypeError{
			Type:   "nil",
			Reason: "no value to encode",
		}
	}
	body, err := encodeNode(c, 1, rmx.Config().MaxDepth)
	if err != nil {
		return nil, err
	}
	out, err := msgpack.Marshal(envelope{
		Format:  FormatName,
		Version: FormatVersion,
		Body:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("rmx: encode %s: %w", uref.Describe(c), err)
	}
	return out, nil
}

// encodeNode renders one container level.
func encodeNode(c apis.Carrier, depth, maxDepth int) (binNode, error) {
	if depth > maxDepth {
		return binNode{}, &errors.ValidationError{
			Type:   uref.Describe(c),
			Reason: "encoding exceeded maximum depth " + strconv.Itoa(maxDepth),
		}
	}
	names := c.Names()
	values := make([]any, len(names))
	for i, name := range names {
		v, _ := c.Binding(name)
		ev, err := encodeValue(v, depth, maxDepth)
		if err != nil {
			return binNode{}, err
		}
		values[i] = ev
	}
	return binNode{Names: names, Values: values}, nil
}

// encodeValue renders one binding value: containers recurse, slices
// render element-wise, and everything else passes through to the
// MessagePack encoder as-is. Byte slices stay raw.
func encodeValue(v any, depth, maxDepth int) (any, error) {
	if c, ok := v.(apis.Carrier); ok {
		return encodeNode(c, depth+1, maxDepth)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := encodeValue(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	}
	return v, nil
}

// DecodeBinary reads a MessagePack payload produced by EncodeBinary
// back into a container of type T.
//
// The envelope is checked first: the format name must be FormatName and
// the declared format version must be readable by this build (see
// FormatVersion). Every binding name must resolve to a registered role,
// whose value type directs the decode; unknown names are rejected.
// Numeric values narrow to the declared type under the rules of the
// coercion configuration.
//
// Wire-level failures are reported as *errors.UnmarshalError naming T.
// The decoded bindings then run through full container construction, so
// construction failures surface with their usual types, for example
// *errors.MissingRoleError for an absent required role.
func DecodeBinary[T any](data []byte) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()

	d := &binDecoder{
		data:     data,
		tname:    uref.TypeName(t),
		maxDepth: rmx.Config().MaxDepth,
	}

	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return zero, d.fail(err.Error())
	}
	if env.Format != FormatName {
		return zero, d.fail("unexpected format " + strconv.Quote(env.Format))
	}
	if err := compatibleVersion(env.Version); err != nil {
		return zero, d.fail(err.Error())
	}

	v, err := d.decodeNode("", t, env.Body, 1)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, d.fail("constructed " + uref.Describe(v) + ", want " + d.tname)
	}
	return out, nil
}

// binDecoder carries the per-call decode context: the raw payload and
// target name for error reporting, and the depth guard.
type binDecoder struct {
	data     []byte
	tname    string
	maxDepth int
}

// fail builds the *errors.UnmarshalError every wire-level failure of
// this decode reports.
func (d *binDecoder) fail(reason string) error {
	return &errors.UnmarshalError{Type: d.tname, Data: d.data, Reason: reason}
}

// at prefixes a failure reason with the label of the binding it
// occurred under. Labels render like paths: "hrInfo + reports[1]".
func at(label, reason string) string {
	if label == "" {
		return reason
	}
	return label + ": " + reason
}

// decodeNode rebuilds one container level through the canonical
// constructor. Wire-level failures surface via fail; construction
// errors pass through unwrapped so the usual taxonomy is preserved.
func (d *binDecoder) decodeNode(label string, t reflect.Type, n binNode, depth int) (any, error) {
	if depth > d.maxDepth {
		return nil, d.fail(at(label, "decoding exceeded maximum depth "+strconv.Itoa(d.maxDepth)))
	}
	if len(n.Names) != len(n.Values) {
		return nil, d.fail(at(label, "container has "+strconv.Itoa(len(n.Names))+
			" names but "+strconv.Itoa(len(n.Values))+" values"))
	}

	parts := make([]apis.Part, 0, len(n.Names))
	for i, name := range n.Names {
		r, ok := rmx.Lookup(name)
		if !ok {
			return nil, d.fail(at(label, "unknown role "+strconv.Quote(name)))
		}
		childLabel := name
		if label != "" {
			childLabel = label + " + " + name
		}
		v, err := d.decodeValue(childLabel, r.ValueType(), n.Values[i], depth)
		if err != nil {
			return nil, err
		}
		parts = append(parts, apis.Part{Name: name, Role: r, Value: v})
	}
	return mix.FromParts(t, parts)
}

// decodeValue rebuilds one binding value, directed by the role's value
// type: container-shaped types recurse, list-shaped types decode
// element-wise, scalars coerce. Errors returned are final; label names
// the binding they belong to.
func (d *binDecoder) decodeValue(label string, vt reflect.Type, raw any, depth int) (any, error) {
	switch apis.ShapeOf(vt) {
	case apis.ShapeContainer:
		n, ok := asNode(raw)
		if !ok {
			return nil, d.fail(at(label, "expected container payload, got "+uref.Describe(raw)))
		}
		return d.decodeNode(label, vt, n, depth+1)

	case apis.ShapeList:
		if raw != nil && reflect.TypeOf(raw) == vt {
			return raw, nil
		}
		items, ok := raw.([]any)
		if !ok {
			return nil, d.fail(at(label, "expected list payload, got "+uref.Describe(raw)))
		}
		elem := vt.Elem()
		out := reflect.MakeSlice(vt, len(items), len(items))
		for i, it := range items {
			elemLabel := label + "[" + strconv.Itoa(i) + "]"
			ev, err := d.decodeValue(elemLabel, elem, it, depth+1)
			if err != nil {
				return nil, err
			}
			rv := reflect.ValueOf(ev)
			if !rv.Type().AssignableTo(elem) {
				return nil, d.fail(at(elemLabel, "decoded "+uref.Describe(ev)+
					", want "+uref.TypeName(elem)))
			}
			out.Index(i).Set(rv)
		}
		return out.Interface(), nil

	default:
		v, err := coerce(vt, raw)
		if err != nil {
			return nil, d.fail(at(label, err.Error()))
		}
		return v, nil
	}
}

// asNode recognizes the wire form of a nested container: the generic
// MessagePack decode hands nested binNode values back as a map with
// names and values entries.
func asNode(raw any) (binNode, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return binNode{}, false
	}
	names, ok := toStrings(m["names"])
	if !ok {
		return binNode{}, false
	}
	var values []any
	switch vs := m["values"].(type) {
	case nil:
	case []any:
		values = vs
	default:
		return binNode{}, false
	}
	return binNode{Names: names, Values: values}, true
}

// toStrings normalizes a decoded name list. An absent list is an empty
// container, not an error.
func toStrings(raw any) ([]string, bool) {
	switch ns := raw.(type) {
	case nil:
		return nil, true
	case []string:
		return ns, true
	case []any:
		out := make([]string, len(ns))
		for i, n := range ns {
			s, ok := n.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
