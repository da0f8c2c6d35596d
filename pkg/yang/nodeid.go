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

import "strings"

// This file implements schema-nodeid resolution: the absolute/
// descendant split, choice/case-transparent child lookup, the
// input/output special case for rpc and action bodies, and
// implement propagation.

// ResultFlags records side effects of a schema-nodeid resolution.
type ResultFlags int

const (
	FlagNone ResultFlags = 0
	// FlagRPCInput is set when resolution selects an action/rpc's
	// "input" segment.
	FlagRPCInput ResultFlags = 1 << (iota - 1)
	// FlagRPCOutput is set when resolution selects an action/rpc's
	// "output" segment.
	FlagRPCOutput
	// FlagInNotification is set once resolution passes through a
	// notification node.
	FlagInNotification
)

// ResolveNodeID walks nodeid through the compiled schema tree starting
// at ctxNode (nil for an absolute path, which must then start with
// '/'; non-nil for a descendant path, which must not). ctxModule
// resolves unprefixed segments. accept is the acceptable-terminal-type
// mask. If implement is set, every module touched along the way that
// is not yet implemented is marked implemented (transitively).
func ResolveNodeID(ctxNode *SchemaNode, ctxModule *Module, nodeid string, accept NodeTypeMask, implement bool) (*SchemaNode, ResultFlags, error) {
	if nodeid == "" {
		return nil, 0, errInvalid(nodeid, "empty schema-nodeid")
	}
	absolute := ctxNode == nil
	if absolute {
		if !strings.HasPrefix(nodeid, "/") {
			return nil, 0, errInvalid(nodeid, "absolute schema-nodeid must start with '/'")
		}
		nodeid = nodeid[1:]
	} else if strings.HasPrefix(nodeid, "/") {
		return nil, 0, errInvalid(nodeid, "descendant schema-nodeid must not start with '/'")
	}
	if nodeid == "" {
		return nil, 0, errInvalid(nodeid, "empty schema-nodeid")
	}

	segments := strings.Split(nodeid, "/")
	cur := ctxNode
	var flags ResultFlags

	for _, seg := range segments {
		if seg == "" {
			return nil, 0, errInvalid(nodeid, "empty segment in schema-nodeid")
		}
		prefix, name, end, err := SplitNodeID(seg, 0)
		if err != nil || end != len(seg) {
			return nil, 0, errInvalid(nodeid, "malformed segment %q", seg)
		}

		resolvedMod := ctxModule
		if prefix != "" {
			resolvedMod = ResolvePrefix(ctxModule, prefix)
			if resolvedMod == nil {
				return nil, 0, errReference(nodeid, "unknown prefix: %s", prefix)
			}
		}
		if implement && resolvedMod != nil {
			markImplementedTransitively(resolvedMod)
		}

		switch {
		case cur == nil:
			// First segment of an absolute path: it must name a
			// top-level node of the resolved module (or its includes).
			next := findTopLevel(resolvedMod, name)
			if next == nil {
				return nil, 0, errNotFound(nodeid, "no such top-level node: %s", seg)
			}
			cur = next

		case cur.Type == NAction:
			switch name {
			case "input":
				next := cur.ActionInput()
				if next == nil {
					return nil, 0, errNotFound(nodeid, "rpc %s has no input", cur.Name)
				}
				cur = next
				flags |= FlagRPCInput
			case "output":
				next := cur.ActionOutput()
				if next == nil {
					return nil, 0, errNotFound(nodeid, "rpc %s has no output", cur.Name)
				}
				cur = next
				flags |= FlagRPCOutput
			default:
				in := cur.ActionInput()
				if in == nil {
					return nil, 0, errNotFound(nodeid, "no such element: %s", seg)
				}
				next := in.Child(name, resolvedMod)
				if next == nil {
					return nil, 0, errNotFound(nodeid, "no such element: %s", seg)
				}
				cur = next
				flags |= FlagRPCInput
			}

		default:
			next := cur.Child(name, resolvedMod)
			if next == nil {
				return nil, 0, errNotFound(nodeid, "no such element: %s", seg)
			}
			cur = next
		}

		if cur.Type == NNotification {
			flags |= FlagInNotification
		}
	}

	if !accept.Has(cur.Type) {
		return nil, 0, errDenied(nodeid, "node %s has unacceptable type %s", cur.Name, cur.Type)
	}
	return cur, flags, nil
}

// findTopLevel finds mod's (or one of its included submodules') top
// level node named name.
func findTopLevel(mod *Module, name string) *SchemaNode {
	if mod == nil || mod.Root == nil {
		return nil
	}
	for _, c := range mod.Root.Children {
		if c.Name == name {
			return c
		}
	}
	for _, inc := range mod.Includes {
		if inc.Submodule == nil || inc.Submodule.Root == nil {
			continue
		}
		for _, c := range inc.Submodule.Root.Children {
			if c.Name == name {
				return c
			}
		}
	}
	return nil
}

// markImplementedTransitively marks mod implemented. It does not
// recurse into imports: "transitively" here means the resolver marks
// every module it actually visits while walking the path, which
// happens naturally as each prefixed segment is resolved.
func markImplementedTransitively(mod *Module) {
	mod.Implemented = true
}
