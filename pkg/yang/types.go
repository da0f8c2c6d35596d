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
	"github.com/google/go-cmp/cmp"
)

// This file implements type reference resolution: split the prefix,
// choose the search module, and walk lexical scope before falling back
// to top-level and submodule typedefs. Resolution returns a
// disambiguated result (built-in tag vs. typedef entity) rather than
// an expanded type descriptor; expanding ranges, patterns, and
// defaults belongs to a downstream semantic compiler.

// ResolvedType is the result of resolving a type reference. Exactly
// one of (Kind != Ynone, Typedef == nil) or (Typedef != nil) holds.
type ResolvedType struct {
	Kind    TypeKind // Ynone unless this is a built-in
	Typedef *Typedef // nil unless this is a typedef entity
	Module  *Module  // defining module, nil for built-ins
	Node    *SchemaNode
}

// Equal reports whether r and o resolve to the same thing, comparing
// the exported identity fields rather than pointer equality alone so
// that two independently-resolved-but-equivalent results compare
// equal.
func (r ResolvedType) Equal(o ResolvedType) bool {
	return cmp.Equal(r.Kind, o.Kind) &&
		r.Typedef == o.Typedef &&
		sameModule(r.Module, o.Module) &&
		r.Node == o.Node
}

// ResolveType resolves a (possibly prefixed) type reference id, in the
// lexical scope of node (nil for top-level), starting the search from
// module startMod.
func ResolveType(startMod *Module, node *SchemaNode, id string) (ResolvedType, error) {
	prefix, name, _, err := SplitNodeID(id, 0)
	if err != nil {
		return ResolvedType{}, err
	}

	searchMod := startMod
	checkBuiltin := prefix == ""

	if prefix != "" {
		searchMod = ResolvePrefix(startMod, prefix)
		if searchMod == nil {
			return ResolvedType{}, errReference("", "unknown prefix: %s", prefix)
		}
	}

	if checkBuiltin {
		if kind, ok := builtinTypeNames[name]; ok {
			return ResolvedType{Kind: kind}, nil
		}
	}

	if searchMod == startMod && node != nil {
		for n := node; n != nil; n = n.Parent {
			for _, td := range n.Typedefs {
				if td.Name == name {
					return ResolvedType{Typedef: td, Module: td.Module, Node: n}, nil
				}
			}
		}
	}

	for _, td := range searchMod.Typedefs {
		if td.Name == name {
			return ResolvedType{Typedef: td, Module: searchMod}, nil
		}
	}

	for _, inc := range searchMod.Includes {
		if inc.Submodule == nil {
			continue
		}
		for _, td := range inc.Submodule.Typedefs {
			if td.Name == name {
				return ResolvedType{Typedef: td, Module: searchMod}, nil
			}
		}
	}

	return ResolvedType{}, errNotFound("", "unknown type: %s", id)
}
