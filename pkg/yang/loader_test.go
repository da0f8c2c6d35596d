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
	"fmt"
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

// fakeModule is the tiny test fixture format consumed by
// newFakeParser: one directive per line, "key:value".
type fakeModule struct {
	name, revision       string
	prefix               string
	submodule, belongsTo string
	imports              []string // "name", "name@revision", or "name=prefix"/"name@revision=prefix"
	includes             []string
}

func encodeFakeModule(fm fakeModule) string {
	var b strings.Builder
	if fm.submodule != "" {
		fmt.Fprintf(&b, "submodule:%s\n", fm.submodule)
		fmt.Fprintf(&b, "belongs-to:%s\n", fm.belongsTo)
	} else {
		fmt.Fprintf(&b, "module:%s\n", fm.name)
	}
	if fm.revision != "" {
		fmt.Fprintf(&b, "revision:%s\n", fm.revision)
	}
	if fm.prefix != "" {
		fmt.Fprintf(&b, "prefix:%s\n", fm.prefix)
	}
	for _, imp := range fm.imports {
		fmt.Fprintf(&b, "import:%s\n", imp)
	}
	for _, inc := range fm.includes {
		fmt.Fprintf(&b, "include:%s\n", inc)
	}
	return b.String()
}

// newFakeParser returns a Context.SetParser-compatible function that
// decodes the tiny line format produced by encodeFakeModule, standing
// in for pkg/yangtext.Build in loader tests that only exercise
// acquisition/linking, not textual syntax.
func newFakeParser() func(format, data, path string) (*Module, error) {
	return func(format, data, path string) (*Module, error) {
		m := &Module{}
		for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
			if line == "" {
				continue
			}
			parts := strings.SplitN(line, ":", 2)
			key, val := parts[0], parts[1]
			switch key {
			case "module":
				m.Name = val
			case "submodule":
				m.Name = val
				m.IsSubmodule = true
			case "belongs-to":
				m.BelongsTo = val
			case "revision":
				m.Revisions = []Revision{{Date: val}}
			case "prefix":
				m.Prefix = val
			case "import":
				name, rev := val, ""
				if at := strings.Index(val, "@"); at >= 0 {
					name, rev = val[:at], val[at+1:]
				}
				prefix := name
				if eq := strings.Index(name, "="); eq >= 0 {
					prefix = name[eq+1:]
					name = name[:eq]
				}
				m.Imports = append(m.Imports, &Import{ModuleName: name, Revision: rev, Prefix: prefix})
			case "include":
				name, rev := val, ""
				if at := strings.Index(val, "@"); at >= 0 {
					name, rev = val[:at], val[at+1:]
				}
				m.Includes = append(m.Includes, &Include{SubmoduleName: name, Revision: rev})
			}
		}
		return m, nil
	}
}

// fakeCallback builds an ImportCallback over a name->fakeModule map.
func fakeCallback(modules map[string]fakeModule) ImportCallback {
	return func(moduleName, revision, submoduleName, submoduleRevision string) (string, string, bool) {
		want := moduleName
		if submoduleName != "" {
			want = submoduleName
		}
		fm, ok := modules[want]
		if !ok {
			return "", "", false
		}
		return "yang", encodeFakeModule(fm), true
	}
}

func newTestContext(modules map[string]fakeModule) *Context {
	c := NewContext()
	c.SetParser(newFakeParser())
	c.SetImportCallback(fakeCallback(modules))
	c.DisableSearchDirs = true
	return c
}

func TestLoadModuleSimple(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"base": {name: "base", revision: "2020-01-01"},
	})
	m, err := c.LoadModule("base", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "base" || !m.Implemented {
		t.Errorf("LoadModule result = %+v, want implemented module named base", m)
	}
}

func TestLoadModuleResolvesImports(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"top":    {name: "top", imports: []string{"dep"}},
		"dep":    {name: "dep"},
	})
	m, err := c.LoadModule("top", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Imports) != 1 || m.Imports[0].Module == nil || m.Imports[0].Module.Name != "dep" {
		t.Errorf("top.Imports = %+v, want a resolved link to dep", m.Imports)
	}
}

func TestLoadModuleResolvesIncludes(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"top": {name: "top", includes: []string{"top-sub"}},
		"top-sub": {submodule: "top-sub", belongsTo: "top"},
	})
	m, err := c.LoadModule("top", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Includes) != 1 || m.Includes[0].Submodule == nil || m.Includes[0].Submodule.Name != "top-sub" {
		t.Errorf("top.Includes = %+v, want a resolved link to top-sub", m.Includes)
	}
}

func TestLoadModuleImportCycleDetected(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"a": {name: "a", imports: []string{"b"}},
		"b": {name: "b", imports: []string{"a"}},
	})
	_, err := c.LoadModule("a", "", false)
	if diff := errdiff.Substring(err, "import cycle"); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadModuleIncludeCycleDetected(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"top":  {name: "top", includes: []string{"sub1"}},
		"sub1": {submodule: "sub1", belongsTo: "top", includes: []string{"sub2"}},
		"sub2": {submodule: "sub2", belongsTo: "top", includes: []string{"sub1"}},
	})
	_, err := c.LoadModule("top", "", false)
	if diff := errdiff.Substring(err, "include cycle"); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadModuleImplementConflict(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"a": {name: "a", revision: "2020-01-01"},
	})
	if _, err := c.LoadModule("a", "2020-01-01", true); err != nil {
		t.Fatal(err)
	}

	// Register a second revision under a distinct registry key by
	// inserting it into the registry directly, then attempt to
	// implement it with a pinned load: since a
	// different revision of "a" is already implemented, this must be
	// denied.
	c.modules["a@2021-06-01"] = &Module{Name: "a", Revisions: []Revision{{Date: "2021-06-01"}}}
	_, err := c.LoadModule("a", "2021-06-01", true)
	if diff := errdiff.Substring(err, "already implemented"); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadModuleNotFound(t *testing.T) {
	c := newTestContext(map[string]fakeModule{})
	_, err := c.LoadModule("nosuch", "", false)
	if diff := errdiff.Substring(err, "module not found"); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadModuleFailedLinkDoesNotLeaveRegistryEntry(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"top": {name: "top", imports: []string{"missing"}},
	})
	if _, err := c.LoadModule("top", "", false); err == nil {
		t.Fatal("expected an error from an unresolvable import")
	}
	if _, ok := c.modules["top"]; ok {
		t.Error("top remained registered after a failed link")
	}
}

func TestLoadSubmoduleBelongsToMismatchRejected(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"sub": {submodule: "sub", belongsTo: "somethingelse"},
	})
	_, err := c.LoadSubmodule("parent", "sub", "")
	if diff := errdiff.Substring(err, "belongs-to"); diff != "" {
		t.Fatal(diff)
	}
}

func TestLoadModuleOwnPrefixCollidesWithImport(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"self-mod": {name: "self-mod", prefix: "om", imports: []string{"other-mod=om"}},
		"other-mod": {name: "other-mod"},
	})
	_, err := c.LoadModule("self-mod", "", false)
	if diff := errdiff.Substring(err, "collides with self-mod's own prefix"); diff != "" {
		t.Fatal(diff)
	}
	if _, ok := c.modules["self-mod"]; ok {
		t.Error("self-mod remained registered after a rejected prefix collision")
	}
}

func TestLoadModuleTwoImportsSharePrefix(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"top":  {name: "top", prefix: "tp", imports: []string{"mod-a=dup", "mod-b=dup"}},
		"mod-a": {name: "mod-a"},
		"mod-b": {name: "mod-b"},
	})
	_, err := c.LoadModule("top", "", false)
	if diff := errdiff.Substring(err, "both use prefix"); diff != "" {
		t.Fatal(diff)
	}
	if _, ok := c.modules["top"]; ok {
		t.Error("top remained registered after a rejected prefix collision")
	}
}

func TestLoadSubmoduleBelongsToMatch(t *testing.T) {
	c := newTestContext(map[string]fakeModule{
		"sub": {submodule: "sub", belongsTo: "parent"},
	})
	m, err := c.LoadSubmodule("parent", "sub", "")
	if err != nil {
		t.Fatal(err)
	}
	if m.BelongsTo != "parent" {
		t.Errorf("m.BelongsTo = %q, want parent", m.BelongsTo)
	}
}
