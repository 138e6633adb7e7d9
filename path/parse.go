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
	"strconv"
	"strings"

	"dirpx.dev/rmx"
	"dirpx.dev/rmx/errors"
)

// Parse parses the rendered form of a path, as produced by String,
// back into a path.
//
// The syntax is role names joined by " + ", each name optionally
// followed by index groups like "[2]". Names resolve through the
// process-wide registry, so every role on the path must be registered
// before parsing. Each segment is checked with the same extension rules
// the composition functions enforce, and violations yield a
// *errors.InvalidPathError. The empty string parses to the empty path.
//
// The terminal type of a parsed path is only known at run time, so the
// result is a Path[any]; use As to recover a statically typed path.
func Parse(s string) (Path[any], error) {
	if s == "" {
		return Path[any]{}, nil
	}

	var segs []Segment
	for ti, term := range strings.Split(s, " + ") {
		name := term
		rest := ""
		if i := strings.IndexByte(term, '['); i >= 0 {
			name, rest = term[:i], term[i:]
		}
		if name == "" {
			reason := "term must begin with a role name"
			if ti == 0 {
				reason = "path must begin with a role name"
			}
			return Path[any]{}, &errors.InvalidPathError{Left: s, Reason: reason}
		}

		r, ok := rmx.Lookup(name)
		if !ok {
			return Path[any]{}, &errors.InvalidPathError{
				Left:   s,
				Reason: "unknown role " + strconv.Quote(name),
			}
		}
		if len(segs) > 0 {
			if err := extendByField(segs[len(segs)-1], render(segs), name); err != nil {
				return Path[any]{}, err
			}
		}
		segs = append(segs, fieldSegment(r))

		for rest != "" {
			if rest[0] != '[' {
				return Path[any]{}, &errors.InvalidPathError{
					Left:   s,
					Reason: "malformed index segment in " + strconv.Quote(term),
				}
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return Path[any]{}, &errors.InvalidPathError{
					Left:   s,
					Reason: "unterminated index segment in " + strconv.Quote(term),
				}
			}
			lit := rest[1:end]
			idx, err := strconv.Atoi(lit)
			if err != nil {
				return Path[any]{}, &errors.InvalidPathError{
					Left:   s,
					Reason: "invalid index " + strconv.Quote(lit),
				}
			}
			last := segs[len(segs)-1]
			if err := extendByIndex(last, render(segs), "["+lit+"]"); err != nil {
				return Path[any]{}, err
			}
			segs = append(segs, indexSegment(idx, last.ValueType().Elem()))
			rest = rest[end+1:]
		}
	}
	return Path[any]{segs: segs}, nil
}
