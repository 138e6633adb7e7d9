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
	"runtime"
	"sync"
	"testing"
	"time"

	"dirpx.dev/rmx/config"
)

// TestSnapshot_Concurrent_With_SetConfig verifies that readers always see
// a complete snapshot while the configuration is being swapped.
func TestSnapshot_Concurrent_With_SetConfig(t *testing.T) {
	resetGlobal(t)

	for i, r := range []testRole{roleOf("c0", 0), roleOf("c1", ""), roleOf("c2", false)} {
		if err := Register(r); err != nil {
			t.Fatalf("register fixture %d: %v", i, err)
		}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				cfg := Config()
				if cfg.MaxDepth < 1 {
					t.Errorf("observed invalid MaxDepth %d", cfg.MaxDepth)
					return
				}
				if _, ok := Lookup("c1"); !ok {
					t.Errorf("role c1 vanished during reconfiguration")
					return
				}
				_ = Roles()
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			Configure(
				config.WithMaxDepth(4+(i%5)),
				config.WithCoerceNumbers(i%2 == 0),
				config.WithEnforceListBounds(i%3 == 0),
			)
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done
}

// TestRegister_Concurrent verifies concurrent registration through the
// facade is race-free and idempotent.
func TestRegister_Concurrent(t *testing.T) {
	resetGlobal(t)

	roles := []testRole{
		roleOf("p0", 0), roleOf("p1", ""), roleOf("p2", 0.0),
		roleOf("p3", false), roleOf("p4", []int{}),
	}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(roles)
				_ = Register(roles[j])
			}
		}(w)
	}
	wg.Wait()

	if got := len(Roles()); got != len(roles) {
		t.Fatalf("Roles() length = %d, want %d", got, len(roles))
	}
	for _, r := range roles {
		if _, ok := Lookup(r.Name()); !ok {
			t.Errorf("Lookup(%s): not found after concurrent registration", r.Name())
		}
	}
}
