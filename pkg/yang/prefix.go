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

// ResolvePrefix resolves prefix against mod: if prefix equals mod's
// own prefix (or is empty, which always means "myself"), mod is
// returned. Otherwise mod.Imports is scanned for a matching prefix and
// the imported module returned. A miss returns nil; no diagnostic is
// emitted here, the caller decides what a miss means.
func ResolvePrefix(mod *Module, prefix string) *Module {
	if mod == nil {
		return nil
	}
	if prefix == "" || prefix == mod.Prefix {
		return mod
	}
	for _, imp := range mod.Imports {
		if imp.Prefix == prefix {
			return imp.Module
		}
	}
	return nil
}
