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

	"gopkg.in/yaml.v3"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	"dirpx.dev/rmx/mix"
	uref "dirpx.dev/rmx/utils/reflect"
)

// EncodeYAML renders the container tree as a YAML document. Bindings
// appear in construction order; nested containers become mappings,
// lists become sequences.
//
// The document is built as a node tree rather than marshaled from the
// binding map directly, because the yaml package sorts map keys and
// construction order would be lost.
func EncodeYAML(c apis.Carrier) ([]byte, error) {
	if uref.IsNil(c) {
		return nil, &errors.UnsupportedTypeError{
			Type:   "nil",
			Reason: "no value to encode",
		}
	}
	n, err := yamlNode(c, 1, rmx.Config().MaxDepth)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("rmx: encode %s: %w", uref.Describe(c), err)
	}
	return out, nil
}

// yamlNode renders one value as a YAML node: containers as ordered
// mappings, slices as sequences, everything else through the yaml
// encoder. Byte slices stay with the encoder, which renders them as
// !!binary scalars.
func yamlNode(v any, depth, maxDepth int) (*yaml.Node, error) {
	if c, ok := v.(apis.Carrier); ok {
		if depth > maxDepth {
			return nil, &errors.ValidationError{
				Type:   uref.Describe(c),
				Reason: "encoding exceeded maximum depth " + strconv.Itoa(maxDepth),
			}
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, name := range c.Names() {
			bv, _ := c.Binding(name)
			val, err := yamlNode(bv, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
			n.Content = append(n.Content, key, val)
		}
		return n, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < rv.Len(); i++ {
			en, err := yamlNode(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, en)
		}
		return n, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("rmx: encode %s: %w", uref.Describe(v), err)
	}
	return n, nil
}

// DecodeYAML reads a YAML document produced by EncodeYAML back into a
// container of type T.
//
// The document root must be a mapping. Every key must resolve to a
// registered role, whose value type directs the decode: nested
// containers recurse, lists whose elements are containers or lists
// decode element-wise, and everything else decodes directly into the
// declared type. Document key order becomes construction order, so the
// round-trip preserves binding order. Unknown keys are rejected.
//
// Wire-level failures are reported as *errors.UnmarshalError naming T;
// construction failures surface with their usual types.
func DecodeYAML[T any](data []byte) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()

	d := &yamlDecoder{
		data:     data,
		tname:    uref.TypeName(t),
		maxDepth: rmx.Config().MaxDepth,
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, d.fail(err.Error())
	}
	var root *yaml.Node
	if len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	v, err := d.decodeMapping("", t, root, 1)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, d.fail("constructed " + uref.Describe(v) + ", want " + d.tname)
	}
	return out, nil
}

// yamlDecoder carries the per-call decode context, mirroring
// binDecoder.
type yamlDecoder struct {
	data     []byte
	tname    string
	maxDepth int
}

func (d *yamlDecoder) fail(reason string) error {
	return &errors.UnmarshalError{Type: d.tname, Data: d.data, Reason: reason}
}

// decodeMapping rebuilds one container level from a mapping node
// through the canonical constructor. A nil node is an empty document
// and constructs an empty container, which declared-role validation
// then judges. Construction errors pass through unwrapped.
func (d *yamlDecoder) decodeMapping(label string, t reflect.Type, n *yaml.Node, depth int) (any, error) {
	if depth > d.maxDepth {
		return nil, d.fail(at(label, "decoding exceeded maximum depth "+strconv.Itoa(d.maxDepth)))
	}
	if n == nil {
		return mix.FromParts(t, nil)
	}
	if n.Kind != yaml.MappingNode {
		return nil, d.fail(at(label, "expected mapping, got "+yamlKindName(n.Kind)))
	}

	parts := make([]apis.Part, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, d.fail(at(label, "mapping key is not a scalar"))
		}
		name := key.Value
		r, ok := rmx.Lookup(name)
		if !ok {
			return nil, d.fail(at(label, "unknown role "+strconv.Quote(name)))
		}
		childLabel := name
		if label != "" {
			childLabel = label + " + " + name
		}
		v, err := d.decodeValue(childLabel, r.ValueType(), val, depth)
		if err != nil {
			return nil, err
		}
		parts = append(parts, apis.Part{Name: name, Role: r, Value: v})
	}
	return mix.FromParts(t, parts)
}

// decodeValue rebuilds one binding value, directed by the role's value
// type. Containers recurse; lists with container or list elements
// decode element-wise; everything else decodes directly into the
// declared type, which covers YAML's native scalar conversions.
func (d *yamlDecoder) decodeValue(label string, vt reflect.Type, n *yaml.Node, depth int) (any, error) {
	switch apis.ShapeOf(vt) {
	case apis.ShapeContainer:
		return d.decodeMapping(label, vt, n, depth+1)

	case apis.ShapeList:
		elem := vt.Elem()
		if apis.ShapeOf(elem) == apis.ShapeOpaque {
			return d.decodeDirect(label, vt, n)
		}
		if n.Kind != yaml.SequenceNode {
			return nil, d.fail(at(label, "expected sequence, got "+yamlKindName(n.Kind)))
		}
		out := reflect.MakeSlice(vt, len(n.Content), len(n.Content))
		for i, en := range n.Content {
			elemLabel := label + "[" + strconv.Itoa(i) + "]"
			ev, err := d.decodeValue(elemLabel, elem, en, depth+1)
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
		return d.decodeDirect(label, vt, n)
	}
}

// decodeDirect decodes a node into a fresh value of the declared type.
func (d *yamlDecoder) decodeDirect(label string, vt reflect.Type, n *yaml.Node) (any, error) {
	pv := reflect.New(vt)
	if err := n.Decode(pv.Interface()); err != nil {
		return nil, d.fail(at(label, err.Error()))
	}
	return pv.Elem().Interface(), nil
}

// yamlKindName renders a yaml node kind for error messages.
func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
