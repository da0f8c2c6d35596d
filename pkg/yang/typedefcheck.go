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

// This file implements the typedef collision checker: a two-set
// globals/scoped algorithm. Scoped typedef names are permitted to
// shadow undeclared-but-reachable top-level names, matching RFC 7950
// §6.2.1's ordinary lexical shadowing, so there is no "scoped name not
// found in globals" rejection here.

// CheckTypedefs validates typedef name uniqueness across m and its
// submodules. It returns the first collision found, or nil if m's
// typedefs are all unique.
func CheckTypedefs(m *Module) error {
	globals := map[string]*Typedef{}

	if err := insertGlobals(m.Typedefs, globals); err != nil {
		return err
	}
	for _, inc := range m.Includes {
		if inc.Submodule == nil {
			continue
		}
		if err := insertGlobals(inc.Submodule.Typedefs, globals); err != nil {
			return err
		}
	}

	scoped := map[*SchemaNode]map[string]*Typedef{}
	var walkErr error
	walkNodes(m.Root, func(n *SchemaNode) bool {
		if walkErr != nil {
			return false
		}
		walkErr = checkScopedTypedefs(n, scoped)
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	for _, inc := range m.Includes {
		if inc.Submodule == nil {
			continue
		}
		walkNodes(inc.Submodule.Root, func(n *SchemaNode) bool {
			if walkErr != nil {
				return false
			}
			walkErr = checkScopedTypedefs(n, scoped)
			return walkErr == nil
		})
		if walkErr != nil {
			return walkErr
		}
	}
	return nil
}

// insertGlobals inserts every typedef in tds into globals, rejecting
// the first duplicate name.
func insertGlobals(tds []*Typedef, globals map[string]*Typedef) error {
	for _, td := range tds {
		if isBuiltinTypeName(td.Name) {
			return errCollision(nodePath(nil, td.Module), "typedef %q collides with built-in type name", td.Name)
		}
		if prior, ok := globals[td.Name]; ok {
			return errCollision(nodePath(nil, td.Module),
				"duplicate top-level typedef %q (also declared in %s)", td.Name, moduleRef(prior.Module))
		}
		globals[td.Name] = td
	}
	return nil
}

// checkScopedTypedefs validates the typedefs declared directly on n:
// reject a built-in name, reject a sibling collision (earlier in
// n.Typedefs), reject a collision with any ancestor's scoped typedef,
// then record n's typedefs into scoped.
func checkScopedTypedefs(n *SchemaNode, scoped map[*SchemaNode]map[string]*Typedef) error {
	if len(n.Typedefs) == 0 {
		return nil
	}
	seenHere := map[string]bool{}
	for _, td := range n.Typedefs {
		if isBuiltinTypeName(td.Name) {
			return errCollision(nodePath(n, nil), "scoped typedef %q collides with built-in type name", td.Name)
		}
		if seenHere[td.Name] {
			return errCollision(nodePath(n, nil), "duplicate sibling typedef %q", td.Name)
		}
		for anc := n.Parent; anc != nil; anc = anc.Parent {
			if ancSet := scoped[anc]; ancSet != nil && ancSet[td.Name] != nil {
				return errCollision(nodePath(n, nil), "scoped typedef %q shadows ancestor scope at %s", td.Name, nodePath(anc, nil))
			}
		}
		seenHere[td.Name] = true
	}
	set := map[string]*Typedef{}
	for _, td := range n.Typedefs {
		set[td.Name] = td
	}
	scoped[n] = set
	return nil
}

// walkNodes performs a pre-order walk of n and its descendants,
// invoking visit on each. The walk stops early if visit returns false.
func walkNodes(n *SchemaNode, visit func(*SchemaNode) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !walkNodes(c, visit) {
			return false
		}
	}
	return true
}

// nodePath builds a path-qualified diagnostic location from either a
// schema node or a module, whichever is given.
func nodePath(n *SchemaNode, m *Module) string {
	if n != nil {
		path := "/" + n.Name
		for p := n.Parent; p != nil; p = p.Parent {
			path = "/" + p.Name + path
		}
		if n.Module != nil {
			return n.Module.Name + ":" + path
		}
		return path
	}
	if m != nil {
		return m.Name
	}
	return "unknown"
}

func moduleRef(m *Module) string {
	if m == nil {
		return "unknown"
	}
	return m.Name
}
