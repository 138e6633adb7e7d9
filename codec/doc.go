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

// Package codec translates container trees to and from documents.
//
// Two wire forms are provided. EncodeYAML and DecodeYAML handle
// human-facing YAML documents; EncodeBinary and DecodeBinary handle a
// compact MessagePack form framed by a format-versioned envelope.
//
// Both directions are schema-directed by the role registry. Encoding
// walks the container tree and renders bindings in construction order;
// decoding resolves every document key to a registered role and lets
// the role's value type drive how the payload is read back: nested
// containers recurse through the canonical constructor, lists decode
// element-wise, and scalars decode into the declared type. A key
// without a registered role is rejected; the registry is the schema
// source, so schema-flexible does not mean schema-less.
//
// Decoded numbers may arrive in a different representation than a role
// declares (a YAML integer is untyped, and MessagePack shrinks integers
// to their smallest wire width). While the global configuration has
// CoerceNumbers enabled, such values are narrowed with overflow
// checking; conversions that would change the value fail. Every decoded
// binding then passes through full container construction, so a decoded
// tree satisfies the same invariants as a hand-built one.
//
// The codecs are value encoders only, not a persistence or query layer.
package codec
