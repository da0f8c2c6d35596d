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

import "sort"

// This file implements status-lifecycle auditing and revision
// ordering.

// CheckStatus enforces that within the same module, a referrer must
// not reference a definition whose status outranks its own (current <
// deprecated < obsolete). Cross-module references are unconstrained.
func CheckStatus(refStatus Status, refMod *Module, refName string, defStatus Status, defMod *Module, defName string) error {
	if !sameModule(refMod, defMod) {
		return nil
	}
	if defStatus > refStatus {
		return errDenied(nodeRef(refMod, refName),
			"%s definition %q must not reference %s definition %q",
			refStatus, refName, defStatus, defName)
	}
	return nil
}

func nodeRef(m *Module, name string) string {
	if m == nil {
		return name
	}
	return m.Name + ":" + name
}

// SortRevisions places the lexicographically (and hence, for
// YYYY-MM-DD dates, chronologically) largest date at index 0. Only one
// swap is needed; the rest of the slice is left in whatever order it
// was found, since downstream code only ever reads index 0.
func SortRevisions(revs []Revision) {
	if len(revs) < 2 {
		return
	}
	max := 0
	for i := 1; i < len(revs); i++ {
		if revs[i].Date > revs[max].Date {
			max = i
		}
	}
	revs[0], revs[max] = revs[max], revs[0]
}

// RevisionsNewestFirst returns a copy of revs fully sorted newest
// first, for callers (e.g. cmd/yanglint) that want to print every
// known revision in order rather than just the newest.
func RevisionsNewestFirst(revs []Revision) []Revision {
	out := append([]Revision(nil), revs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
