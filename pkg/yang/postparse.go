// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

import (
	"path/filepath"
)

// postParseCheck validates what was actually parsed into m against
// what the caller expected (name, optional pinned revision, and for a
// submodule the expected parent). The caller sets m.parsing := true for
// the duration it owns m and clears it once linking finishes,
// enforcing the include-cycle guard.
func (c *Context) postParseCheck(m *Module, expectName, expectRevision, expectParent, path string) (warnings []string, err error) {
	if m.Name != expectName {
		return nil, errInvalid(path, "expected module %q, got %q", expectName, m.Name)
	}
	if expectRevision != "" && m.CurrentRevision() != expectRevision {
		return nil, errInvalid(path, "expected revision %s of %s, got %s", expectRevision, expectName, m.CurrentRevision())
	}
	if expectParent != "" {
		if !m.IsSubmodule {
			return nil, errReference(path, "%s: expected a submodule belonging to %s", expectName, expectParent)
		}
		if m.BelongsTo != expectParent {
			return nil, errReference(path, "%s: belongs-to %s, expected %s", expectName, m.BelongsTo, expectParent)
		}
	}
	if m.parsing {
		return nil, errCycle(path, "include cycle: %s is already being parsed", expectName)
	}

	if path != "" && !fileNameMatchesModule(filepath.Base(path), m) {
		// A structural file-name mismatch is a warning, not an error:
		// the caller decides whether to surface it.
		warnings = append(warnings, "file name "+filepath.Base(path)+" does not match module "+m.Name)
	}
	return warnings, nil
}

// fileNameMatchesModule reports whether the file name structurally
// matches name[@rev].ext for m.
func fileNameMatchesModule(fileName string, m *Module) bool {
	base, rev, ok := parseModuleFileName(fileName)
	if !ok || base != m.Name {
		return false
	}
	if rev != "" && rev != m.CurrentRevision() {
		return false
	}
	return true
}
