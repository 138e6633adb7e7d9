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

package rmx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/rmx/apis"
	"dirpx.dev/rmx/config"
	"dirpx.dev/rmx/registry"
)

// init initializes the global rmx state.
func init() {
	// Initialize state with default cfg and an empty reg.
	s := &state{
		cfg: config.DefaultConfig(),
		reg: registry.New(),
	}
	// Store the initial state atomically.
	st.Store(s)
}

// Config returns the global rmx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global rmx configuration to cfg.
// The global reg is preserved; only the knobs change.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg: cfg,
			reg: old.reg,
		},
	)
}

// Configure builds a configuration from the given options and installs it
// as the global rmx configuration.
// This is a convenience wrapper around config.NewConfig and SetConfig.
func Configure(opts ...config.Option) {
	SetConfig(config.NewConfig(opts...))
}

// Registry returns the global rmx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global rmx reg to reg.
// A nil reg leaves the state unchanged.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg: old.cfg,
			reg: reg,
		},
	)
}

// Register interns r in the global rmx reg.
// This is a convenience wrapper around the global reg.
func Register(r apis.Role) error {
	return st.Load().reg.Register(r)
}

// Lookup returns the role interned under name in the global rmx reg.
// This is a convenience wrapper around the global reg.
func Lookup(name string) (apis.Role, bool) {
	return st.Load().reg.Lookup(name)
}

// Roles returns a snapshot of all roles interned in the global rmx reg.
// This is a convenience wrapper around the global reg.
func Roles() []apis.Role {
	return st.Load().reg.Entries()
}

// Reset reinstalls the default configuration and an empty reg.
// Intended for tests.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Store a fresh default state atomically.
	st.Store(
		&state{
			cfg: config.DefaultConfig(),
			reg: registry.New(),
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global rmx state.
var st atomic.Pointer[state]

// state is the global rmx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global rmx configuration.
	cfg apis.Config
	// reg is the global rmx reg.
	reg apis.Registry
}
