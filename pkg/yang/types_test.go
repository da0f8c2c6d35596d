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
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestResolveTypeBuiltin(t *testing.T) {
	mod := &Module{Name: "m"}
	got, err := ResolveType(mod, nil, "uint32")
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != Yuint32 || got.Typedef != nil {
		t.Errorf("ResolveType(uint32) = %+v, want Kind=Yuint32", got)
	}
}

func TestResolveTypeTopLevelTypedef(t *testing.T) {
	mod := &Module{Name: "m"}
	td := &Typedef{Name: "my-int", BaseType: "int32", Module: mod}
	mod.Typedefs = []*Typedef{td}

	got, err := ResolveType(mod, nil, "my-int")
	if err != nil {
		t.Fatal(err)
	}
	if got.Typedef != td {
		t.Errorf("ResolveType(my-int) = %+v, want Typedef=%+v", got, td)
	}
}

func TestResolveTypeLexicalScopeShadowsTopLevel(t *testing.T) {
	mod := &Module{Name: "m"}
	topLevel := &Typedef{Name: "shared", BaseType: "int32", Module: mod}
	mod.Typedefs = []*Typedef{topLevel}

	leaf := &SchemaNode{Name: "leaf1", Type: NLeaf, Module: mod}
	container := &SchemaNode{Name: "c", Type: NContainer, Module: mod}
	leaf.Parent = container
	scoped := &Typedef{Name: "shared", BaseType: "string", Module: mod, Scope: ScopeLexical, Node: container}
	container.Typedefs = []*Typedef{scoped}

	got, err := ResolveType(mod, leaf, "shared")
	if err != nil {
		t.Fatal(err)
	}
	if got.Typedef != scoped {
		t.Errorf("ResolveType(shared) from inside scope = %+v, want the lexically closer typedef %+v", got, scoped)
	}
}

func TestResolveTypeFromSubmoduleInclude(t *testing.T) {
	mod := &Module{Name: "m"}
	sub := &Module{Name: "m-sub", IsSubmodule: true, BelongsTo: "m"}
	td := &Typedef{Name: "sub-type", BaseType: "string", Module: sub}
	sub.Typedefs = []*Typedef{td}
	mod.Includes = []*Include{{SubmoduleName: "m-sub", Submodule: sub}}

	got, err := ResolveType(mod, nil, "sub-type")
	if err != nil {
		t.Fatal(err)
	}
	if got.Typedef != td {
		t.Errorf("ResolveType(sub-type) = %+v, want %+v", got, td)
	}
}

func TestResolveTypeErrors(t *testing.T) {
	other := &Module{Name: "other", Prefix: "ot"}
	mod := &Module{Name: "m", Prefix: "m"}
	mod.Imports = []*Import{{Prefix: "ot", ModuleName: "other", Module: other}}

	tests := []struct {
		desc          string
		id            string
		wantErrSubstr string
	}{
		{desc: "unknown prefix", id: "zz:foo", wantErrSubstr: "unknown prefix"},
		{desc: "unknown name", id: "no-such-type", wantErrSubstr: "unknown type"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ResolveType(mod, nil, tt.id)
			if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestResolvedTypeEqual(t *testing.T) {
	a := ResolvedType{Kind: Yuint32}
	b := ResolvedType{Kind: Yuint32}
	c := ResolvedType{Kind: Ystring}
	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true")
	}
	if a.Equal(c) {
		t.Error("a.Equal(c) = true, want false")
	}
}
