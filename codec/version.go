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
	"strconv"

	bsemver "github.com/blang/semver/v4"
)

const (
	// FormatName identifies rmx binary payloads. DecodeBinary rejects
	// envelopes carrying any other format name.
	FormatName = "rmx"

	// FormatVersion is the SemVer 2.0.0 version of the binary envelope
	// format written by this build.
	//
	// The major component gates compatibility: a payload is readable
	// when its declared major version equals this one. Minor and patch
	// components MUST only be incremented for changes every reader of
	// the same major can ignore.
	FormatVersion = "1.0.0"
)

// formatVersion is the parsed FormatVersion, fixed at init.
var formatVersion = bsemver.MustParse(FormatVersion)

// compatibleVersion checks that a payload's declared format version can
// be read by this build. The version string must parse as SemVer 2.0.0
// and its major component must match FormatVersion's major.
func compatibleVersion(s string) error {
	pv, err := bsemver.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid format version %s: %w", strconv.Quote(s), err)
	}
	if pv.Major != formatVersion.Major {
		return fmt.Errorf("incompatible format version %s; this build reads %s", s, FormatVersion)
	}
	return nil
}
