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
	"sort"
	"strings"
)

// This file implements module acquisition: the callback-then-filesystem
// source order, the parsing-flag cycle guard, and implemented-revision
// uniqueness per Context.

// LoadModule acquires, parses, and registers the module named name
// (optionally pinned to revision). If implement is true and a
// different revision of name is already implemented, LoadModule fails
// with ErrDenied.
func (c *Context) LoadModule(name, revision string, implement bool) (*Module, error) {
	if m := c.lookup(name, revision); m != nil {
		if m.parsing {
			return nil, errCycle(name, "import cycle: %s is already being parsed", name)
		}
		if implement {
			if err := c.checkImplementConflict(m); err != nil {
				return nil, err
			}
			m.Implemented = true
		}
		return m, nil
	}

	if implement {
		if conflict := c.implementedRevisionOf(name); conflict != "" && conflict != revision {
			return nil, errDenied(name, "a different revision of %s (%s) is already implemented", name, conflict)
		}
	}

	m, err := c.acquire(name, revision, "", "")
	if err != nil {
		return nil, err
	}
	warnings, err := c.postParseCheck(m, name, revision, "", m.Path)
	if err != nil {
		return nil, err
	}
	c.Warnings = append(c.Warnings, warnings...)
	if revision == "" && m.LatestRevision == LatestTentative {
		m.LatestRevision = LatestConfirmed
	}

	// Register while parsing=true so a cyclic import of name re-enters
	// the cache branch above and observes parsing. A module that fails
	// to link is never left in the registry.
	m.parsing = true
	c.register(m)
	if err := c.link(m); err != nil {
		c.unregister(m)
		return nil, err
	}
	m.parsing = false

	if implement {
		m.Implemented = true
	}
	return m, nil
}

// LoadSubmodule acquires a submodule on behalf of parent. The
// submodule's belongs-to must match parentName.
func (c *Context) LoadSubmodule(parentName, name, revision string) (*Module, error) {
	if m := c.lookup(name, revision); m != nil {
		if m.parsing {
			return nil, errCycle(name, "include cycle: %s is already being parsed", name)
		}
		return m, nil
	}

	m, err := c.acquire(name, revision, parentName, "")
	if err != nil {
		return nil, err
	}
	warnings, err := c.postParseCheck(m, name, revision, parentName, m.Path)
	if err != nil {
		return nil, err
	}
	c.Warnings = append(c.Warnings, warnings...)

	m.parsing = true
	c.register(m)
	if err := c.link(m); err != nil {
		c.unregister(m)
		return nil, err
	}
	m.parsing = false
	return m, nil
}

// link resolves every import and include statement in m into a live
// *Module/*Submodule reference, recursing through LoadSubmodule/
// LoadModule so nested cycles are caught by the parsing flag at every
// level. A failure loading an included submodule marks the including
// module's load as failed.
func (c *Context) link(m *Module) error {
	for _, inc := range m.Includes {
		sub, err := c.LoadSubmodule(effectiveParent(m), inc.SubmoduleName, inc.Revision)
		if err != nil {
			return err
		}
		inc.Submodule = sub
	}
	for _, imp := range m.Imports {
		mod, err := c.LoadModule(imp.ModuleName, imp.Revision, false)
		if err != nil {
			return err
		}
		imp.Module = mod
	}
	return checkPrefixCollisions(m)
}

// checkPrefixCollisions rejects m if its own prefix duplicates an
// import prefix, or if two of its imports share a prefix. Either shape
// would make ResolvePrefix silently pick one module over another
// instead of the one the prefix actually names.
func checkPrefixCollisions(m *Module) error {
	seen := map[string]string{m.Prefix: m.Name}
	for _, imp := range m.Imports {
		if other, ok := seen[imp.Prefix]; ok {
			if other == m.Name {
				return errCollision(m.Name, "import %s's prefix %q collides with %s's own prefix", imp.ModuleName, imp.Prefix, m.Name)
			}
			return errCollision(m.Name, "imports %s and %s both use prefix %q", other, imp.ModuleName, imp.Prefix)
		}
		seen[imp.Prefix] = imp.ModuleName
	}
	return nil
}

// effectiveParent returns the module name a submodule's belongs-to
// must match: m's own name if m is a module, or m's belongs-to target
// if m is itself a submodule including further submodules.
func effectiveParent(m *Module) string {
	if m.IsSubmodule {
		return m.BelongsTo
	}
	return m.Name
}

// unregister removes m from the registry entirely, used when m fails
// to link so it is never left half-constructed in the context.
func (c *Context) unregister(m *Module) {
	if c.modules[m.Name] == m {
		delete(c.modules, m.Name)
	}
	if rev := m.CurrentRevision(); rev != "" {
		key := m.Name + "@" + rev
		if c.modules[key] == m {
			delete(c.modules, key)
		}
	}
	c.prefixCache = map[string]*Module{}
	c.namespaceCache = map[string]*Module{}
}

// checkImplementConflict enforces that at most one revision of a
// module name may be implemented per context.
func (c *Context) checkImplementConflict(m *Module) error {
	if conflict := c.implementedRevisionOf(m.Name); conflict != "" && conflict != m.CurrentRevision() {
		return errDenied(m.Name, "a different revision of %s (%s) is already implemented", m.Name, conflict)
	}
	return nil
}

func (c *Context) implementedRevisionOf(name string) string {
	for _, m := range c.modules {
		if m.Name == name && m.Implemented {
			return m.CurrentRevision()
		}
	}
	return ""
}

// acquire tries the callback then the filesystem, in the order
// dictated by PreferSearchDirs, and parses whichever source is found
// first.
func (c *Context) acquire(name, revision, parentName, parentRevision string) (*Module, error) {
	type source func() (format, data, path string, ok bool, err error)

	callbackSrc := func() (string, string, string, bool, error) {
		if c.callback == nil {
			return "", "", "", false, nil
		}
		if parentName != "" {
			format, data, ok := c.callback(parentName, parentRevision, name, revision)
			return format, data, "", ok, nil
		}
		format, data, ok := c.callback(name, revision, "", "")
		return format, data, "", ok, nil
	}
	filesystemSrc := func() (string, string, string, bool, error) {
		if c.DisableSearchDirs {
			return "", "", "", false, nil
		}
		path, format, data, ok, err := c.findInSearchDirs(name, revision)
		return format, data, path, ok, err
	}

	sources := []source{callbackSrc, filesystemSrc}
	if c.PreferSearchDirs {
		sources[0], sources[1] = sources[1], sources[0]
	}

	var lastErr error
	for _, src := range sources {
		format, data, path, ok, err := src()
		if err != nil {
			lastErr = err
			continue
		}
		if !ok {
			continue
		}
		if c.parseFn == nil {
			return nil, errInternal(name, "no parser installed on Context")
		}
		m, err := c.parseFn(format, data, path)
		if err != nil {
			return nil, err
		}
		m.Path = path
		return m, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errNotFound(name, "module not found: %s", name)
}

// findInSearchDirs implements the search-directory protocol: for
// target (name, revision?), find name[@revision].yang or .yin; YANG
// takes precedence over YIN at the same revision, and with no
// requested revision the lexicographically largest dated file wins,
// falling back to the bare name.ext if no dated file exists. A
// trailing "/..." on a search dir (see AddSearchDir) means search that
// directory and every subdirectory.
func (c *Context) findInSearchDirs(name, revision string) (path, format, data string, ok bool, err error) {
	dirs := c.searchDirs
	if !c.DisableSearchDirCWD {
		dirs = append([]string{"."}, dirs...)
	}
	for _, dir := range dirs {
		recursive := strings.HasSuffix(dir, "/...")
		base := strings.TrimSuffix(dir, "/...")
		var candidates []string
		if recursive {
			candidates = findFilesRecursive(base, name)
		} else {
			candidates = findFilesFlat(base, name)
		}
		if p, f := pickCandidate(candidates, revision); p != "" {
			raw, err := readFileFn(p)
			if err != nil {
				return "", "", "", false, errSystem(p, err, "reading %s", p)
			}
			return p, f, string(raw), true, nil
		}
	}
	return "", "", "", false, nil
}

// readFileFn is a seam for testing.
var readFileFn = os.ReadFile

// findFilesFlat lists dir for files literally matching
// name(@DATE)?.(yang|yin).
func findFilesFlat(dir, name string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if matchesModuleFile(e.Name(), name) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}

// findFilesRecursive behaves like findFilesFlat but also descends into
// subdirectories.
func findFilesRecursive(dir, name string) []string {
	var out []string
	filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		if matchesModuleFile(filepath.Base(p), name) {
			out = append(out, p)
		}
		return nil
	})
	return out
}

// matchesModuleFile reports whether fileName structurally matches
// name[@YYYY-MM-DD].{yang,yin}.
func matchesModuleFile(fileName, name string) bool {
	base, _, ok := parseModuleFileName(fileName)
	return ok && base == name
}

// parseModuleFileName splits fileName into (name, revision, ext-ok).
// revision is "" if the file has no @revision component.
func parseModuleFileName(fileName string) (name, revision string, ok bool) {
	var ext string
	switch {
	case strings.HasSuffix(fileName, ".yang"):
		ext = ".yang"
	case strings.HasSuffix(fileName, ".yin"):
		ext = ".yin"
	default:
		return "", "", false
	}
	stem := strings.TrimSuffix(fileName, ext)
	if at := strings.LastIndex(stem, "@"); at >= 0 {
		rev := stem[at+1:]
		if ValidateDate(rev) == nil {
			return stem[:at], rev, true
		}
		return "", "", false
	}
	return stem, "", true
}

// foundFile is a candidate module file discovered on disk, with its
// parsed-out revision (if any) and extension.
type foundFile struct {
	path, rev, ext string
}

// pickCandidate chooses the file to use among candidates, applying the
// revision and extension precedence rules.
func pickCandidate(candidates []string, revision string) (path, format string) {
	var all []foundFile
	for _, c := range candidates {
		base := filepath.Base(c)
		_, rev, ok := parseModuleFileName(base)
		if !ok {
			continue
		}
		all = append(all, foundFile{c, rev, filepath.Ext(base)})
	}

	if revision != "" {
		best := pickBestExt(all, revision)
		if best.path == "" {
			return "", ""
		}
		return best.path, extFormat(best.ext)
	}

	// No revision requested: prefer the largest dated revision; if
	// none carry a date, fall back to the bare name.ext.
	var dated, bare []foundFile
	for _, f := range all {
		if f.rev == "" {
			bare = append(bare, f)
		} else {
			dated = append(dated, f)
		}
	}
	if len(dated) > 0 {
		sort.Slice(dated, func(i, j int) bool { return dated[i].rev > dated[j].rev })
		best := pickBestExt(dated, dated[0].rev)
		return best.path, extFormat(best.ext)
	}
	if len(bare) > 0 {
		best := pickBestExt(bare, "")
		return best.path, extFormat(best.ext)
	}
	return "", ""
}

// pickBestExt returns, among all files in candidates at exactly rev,
// the YANG one if present, otherwise the YIN one: YANG files take
// precedence over YIN when both are present at the same revision.
func pickBestExt(candidates []foundFile, rev string) foundFile {
	var yin foundFile
	for _, f := range candidates {
		if f.rev != rev {
			continue
		}
		if f.ext == ".yang" {
			return f
		}
		if f.ext == ".yin" {
			yin = f
		}
	}
	return yin
}

func extFormat(ext string) string {
	if ext == ".yin" {
		return "yin"
	}
	return "yang"
}
