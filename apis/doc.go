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

// Package apis defines the contracts shared by every rmx component.
//
// The package is intentionally small and dependency-light so that
// implementations (roles, containers, builders, registries, codecs) can
// depend on it without pulling in each other. It holds:
//
//   - Role and Binder, the typed attribute identifier contracts.
//   - Carrier, the read surface every container presents.
//   - Part, the single (identifier, value) binding used for construction,
//     together with the Absent sentinel and the reflective marker.
//   - Declarer and Declaration, the declared-role enumeration contract
//     consumed by construction-time validation and by introspection.
//   - Shape, the container/list/opaque classification that governs which
//     path segment may follow which value.
//   - Registry, the process-wide role interning contract.
//   - Config, the read-only knobs shared across components.
//   - The model micro-contracts (Validatable, Serializable, Loggable,
//     Identifiable, ZeroCheckable, Comparable) that rmx value types
//     implement.
//
// Nothing in this package allocates shared state or starts goroutines;
// all types here are plain values and interfaces.
package apis
