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

// Config carries read-only knobs that influence construction, traversal
// and decoding. It is passed by value and treated as immutable by every
// component that receives it.
type Config struct {
	// MaxDepth limits recursion depth when freezing builders and
	// walking nested containers. Acts as a safety guard against
	// self-referential or pathologically deep structures.
	MaxDepth int

	// EnforceListBounds controls whether the minimum and maximum length
	// bounds declared on list roles are enforced when values are bound.
	// If false, bounds remain documentation only.
	EnforceListBounds bool

	// CoerceNumbers controls whether decoders may convert between
	// numeric representations (for example, a decoded int64 into a role
	// holding int32) when the conversion is exact. If false, decoded
	// values must match the role's value type without conversion.
	CoerceNumbers bool
}
