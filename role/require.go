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

package role

import (
	"fmt"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/errors"
	uref "dirpx.dev/rmx/utils/reflect"
	"dirpx.dev/rxmerr"
)

// RequireAll checks that every given role is bound in c with an
// acceptable value and returns all violations encountered during the
// batch check. This function provides a convenient way to assert a set
// of role contracts against a container in a single operation while
// collecting comprehensive error information rather than stopping at
// the first violation.
//
// The function iterates through each role, looks up its binding in the
// container, and reports a *errors.MissingRoleError when the binding is
// absent or the role's RequireCanHold error when the bound value is
// unacceptable. Each reported error is wrapped with contextual
// information including the role's position in the argument list
// (zero-indexed) and its name, so callers can identify exactly which
// requirements failed and why.
//
// If one or more roles fail the check, RequireAll returns a single
// combined error that aggregates all individual failures using
// rxmerr.Collector. If every role is bound with an acceptable value,
// the function returns nil. An empty role list is trivially satisfied
// and returns nil.
//
// Example usage for asserting a container's required surface:
//
//	if err := role.RequireAll(emp, FirstName, Age); err != nil {
//	    return err
//	}
func RequireAll(c apis.Carrier, roles ...apis.Role) error {
	col := rxmerr.NewCollector()

	for i, r := range roles {
		v, ok := c.Binding(r.Name())
		if !ok {
			col.Append(fmt.Errorf("role[%d] (%s): %w", i, r.Name(),
				&errors.MissingRoleError{
					Role:      r.Name(),
					Container: uref.Describe(c),
				}))
			continue
		}
		if err := r.RequireCanHold(v); err != nil {
			col.Append(fmt.Errorf("role[%d] (%s): %w", i, r.Name(), err))
		}
	}

	return col.Err()
}
