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
	"os"
	"path/filepath"
	"strings"
)

// This file implements the Context object schema resolution is built
// around: the module registry, its prefix/namespace caches, and the
// search-directory list, all scoped to one explicit handle instead of
// living behind package-level state.

// ImportCallback is the user-supplied acquisition hook. It returns the
// raw source text and a format tag ("yang" or "yin"), or ok == false on
// a miss. submoduleName/submoduleRevision are only set when acquiring a
// submodule on behalf of a parent module.
type ImportCallback func(moduleName, revision, submoduleName, submoduleRevision string) (format, data string, ok bool)

// Context carries all per-context mutable state: the module registry,
// the import callback, the search-directory list, and behavior flags.
// Every entry point in this package that needs any of this state takes
// a *Context explicitly — never a package-level global.
type Context struct {
	modules map[string]*Module // keyed by "name" and "name@revision"

	callback ImportCallback
	searchDirs []string

	PreferSearchDirs      bool
	DisableSearchDirs     bool
	DisableSearchDirCWD   bool

	prefixCache    map[string]*Module
	namespaceCache map[string]*Module

	// Warnings accumulates non-fatal diagnostics (e.g. a file name that
	// does not structurally match its module) across every
	// LoadModule/LoadSubmodule call on this Context.
	Warnings []string

	// parseFn parses raw YANG/YIN source into a *Module. It is a field,
	// not a direct call into pkg/yangtext, so this package never
	// imports the textual-parser package: callers (e.g. pkg/yangtext
	// itself, or cmd/yanglint) wire it in.
	parseFn func(format, data, path string) (*Module, error)
}

// NewContext returns an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		modules:        map[string]*Module{},
		prefixCache:    map[string]*Module{},
		namespaceCache: map[string]*Module{},
	}
}

// SetImportCallback installs the acquisition callback.
func (c *Context) SetImportCallback(cb ImportCallback) { c.callback = cb }

// SetParser installs the function used to turn acquired source text
// into a *Module. cmd/yanglint wires this to pkg/yangtext.Build.
func (c *Context) SetParser(fn func(format, data, path string) (*Module, error)) {
	c.parseFn = fn
}

// AddSearchDir adds dir to the search-directory list. A trailing
// "/..." means dir and all of its subdirectories.
func (c *Context) AddSearchDir(dir string) {
	c.searchDirs = append(c.searchDirs, dir)
}

// DiscoverSearchDirs walks root and adds every directory under it
// (including root) that contains at least one .yang or .yin file, so a CLI can
// lint a whole repository without naming each subdirectory.
func (c *Context) DiscoverSearchDirs(root string) error {
	seen := map[string]bool{}
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".yang") || strings.HasSuffix(p, ".yin") {
			dir := filepath.Dir(p)
			if !seen[dir] {
				seen[dir] = true
				c.AddSearchDir(dir)
			}
		}
		return nil
	})
	if err != nil {
		return errSystem(root, err, "discovering search directories")
	}
	return nil
}

// register inserts m into the registry under both its bare name and
// its "name@revision" key, invalidating the prefix/namespace caches.
func (c *Context) register(m *Module) {
	c.modules[m.Name] = latestOf(c.modules[m.Name], m)
	if rev := m.CurrentRevision(); rev != "" {
		c.modules[m.Name+"@"+rev] = m
	}
	c.prefixCache = map[string]*Module{}
	c.namespaceCache = map[string]*Module{}
}

// latestOf returns whichever of a, b should be bound to the bare
// (revision-less) registry key: the one marked LatestConfirmed wins;
// otherwise the most recently registered one (b) wins.
func latestOf(a, b *Module) *Module {
	if a == nil {
		return b
	}
	if a.LatestRevision == LatestConfirmed && b.LatestRevision != LatestConfirmed {
		return a
	}
	return b
}

// lookup returns an already-registered module matching name and
// optional revision, preferring LatestConfirmed when no revision is
// given.
func (c *Context) lookup(name, revision string) *Module {
	if revision != "" {
		return c.modules[name+"@"+revision]
	}
	return c.modules[name]
}

// FindModuleByPrefix resolves prefix against every module currently
// registered in c, caching the result.
func (c *Context) FindModuleByPrefix(prefix string) (*Module, error) {
	if m, ok := c.prefixCache[prefix]; ok {
		if m == nil {
			return nil, errNotFound(prefix, "no such prefix")
		}
		return m, nil
	}
	var found *Module
	for _, m := range c.modules {
		if m.Prefix == prefix {
			if found != nil && found != m {
				return nil, errInternal(prefix, "prefix matches two or more modules (%s, %s)", found.Name, m.Name)
			}
			found = m
		}
	}
	c.prefixCache[prefix] = found
	if found == nil {
		return nil, errNotFound(prefix, "no such prefix")
	}
	return found, nil
}

// FindModuleByNamespace resolves ns against every module currently
// registered in c, caching the result.
func (c *Context) FindModuleByNamespace(ns string) (*Module, error) {
	if m, ok := c.namespaceCache[ns]; ok {
		if m == nil {
			return nil, errNotFound(ns, "no such namespace")
		}
		return m, nil
	}
	var found *Module
	for _, m := range c.modules {
		if m.Namespace == ns {
			if found != nil && found != m {
				return nil, errInternal(ns, "namespace matches two or more modules (%s, %s)", found.Name, m.Name)
			}
			found = m
		}
	}
	c.namespaceCache[ns] = found
	if found == nil {
		return nil, errNotFound(ns, "no such namespace")
	}
	return found, nil
}
