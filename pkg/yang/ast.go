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

// This file holds the data model: Module, Submodule, Import, Include,
// Revision, SchemaNode, Typedef, and built-in type tags. SchemaNode is
// a single tagged-variant struct switched on NodeType rather than a
// family of concrete node types behind an interface, so callers never
// need a type assertion to get from a generic node to its fields.

// LatestRevision tracks how confidently a Module's first Revisions
// entry is known to be the newest revision known to a Context.
type LatestRevision int

const (
	// LatestUnknown means no revision tracking has happened yet.
	LatestUnknown LatestRevision = iota
	// LatestTentative means this is the newest revision seen so far,
	// but another load without a pinned revision could supersede it.
	LatestTentative
	// LatestConfirmed means the loader has confirmed no newer revision
	// exists among the modules it was asked to resolve.
	LatestConfirmed
)

// Status is the lifecycle state of a definition.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "current"
	}
}

// Revision is a single "revision date" statement.
type Revision struct {
	Date string
}

// Import records one "import" statement: a prefix bound to a module
// name (and optional pinned revision). Module is filled in by the
// loader once the target has been acquired.
type Import struct {
	Prefix     string
	ModuleName string
	Revision   string // "" if unpinned
	Module     *Module
}

// Include records one "include" statement: a submodule name (and
// optional pinned revision). Submodule is filled in by the loader.
type Include struct {
	SubmoduleName string
	Revision      string // "" if unpinned
	Submodule     *Module
}

// TypedefScope distinguishes a module-top-level typedef from one
// declared lexically inside a schema node.
type TypedefScope int

const (
	ScopeTopLevel TypedefScope = iota
	ScopeLexical
)

// Typedef is a named derived type. BaseType is the raw,
// possibly prefixed, type name this typedef derives from; resolving it
// to a built-in tag or another Typedef is component C's job
// (types.go), not something Typedef does to itself.
type Typedef struct {
	Name     string
	BaseType string
	Scope    TypedefScope
	Module   *Module     // module the typedef is declared in
	Node     *SchemaNode // non-nil iff Scope == ScopeLexical
	Status   Status
}

// NodeType is the closed set of schema node kinds.
type NodeType int

const (
	NContainer NodeType = iota
	NChoice
	NCase
	NLeaf
	NLeafList
	NList
	NAnyxml
	NAnydata
	NGrouping
	NAction // covers both "rpc" and "action"
	NNotification
	NInput
	NOutput
)

func (t NodeType) String() string {
	switch t {
	case NContainer:
		return "container"
	case NChoice:
		return "choice"
	case NCase:
		return "case"
	case NLeaf:
		return "leaf"
	case NLeafList:
		return "leaf-list"
	case NList:
		return "list"
	case NAnyxml:
		return "anyxml"
	case NAnydata:
		return "anydata"
	case NGrouping:
		return "grouping"
	case NAction:
		return "action"
	case NNotification:
		return "notification"
	case NInput:
		return "input"
	case NOutput:
		return "output"
	default:
		return "unknown"
	}
}

// NodeTypeMask is a bitmask of acceptable NodeType values, used by the
// schema-nodeid resolver (component E) to validate a resolution's
// terminal node type.
type NodeTypeMask uint32

func maskOf(types ...NodeType) NodeTypeMask {
	var m NodeTypeMask
	for _, t := range types {
		m |= 1 << uint(t)
	}
	return m
}

// Has reports whether t is one of the types set in m.
func (m NodeTypeMask) Has(t NodeType) bool {
	return m&(1<<uint(t)) != 0
}

// AnyNodeType accepts any terminal node type.
var AnyNodeType = maskOf(NContainer, NChoice, NCase, NLeaf, NLeafList, NList,
	NAnyxml, NAnydata, NGrouping, NAction, NNotification, NInput, NOutput)

// SchemaNode is a node in the compiled schema tree. It is a single
// tagged-variant struct; accessors below pattern-match Type instead of
// relying on type assertions or embedding.
type SchemaNode struct {
	Name     string
	Type     NodeType
	Parent   *SchemaNode
	Children []*SchemaNode
	Module   *Module // the module that owns (defined) this node
	Status   Status
	Typedefs []*Typedef // typedefs declared lexically inside this node
}

// Child returns the direct child of n named name and owned by module
// owner, or nil. Choice/case children are searched through
// transparently: a choice or case node's own children are checked as
// if they were n's direct children, but a choice/case node itself is
// never returned unless it is literally named name.
func (n *SchemaNode) Child(name string, owner *Module) *SchemaNode {
	for _, c := range n.Children {
		if c.Name == name && sameModule(c.Module, owner) {
			return c
		}
		if c.Type == NChoice || c.Type == NCase {
			if got := c.Child(name, owner); got != nil {
				return got
			}
		}
	}
	return nil
}

// ActionInput returns the action/rpc's explicit "input" child, or a
// synthetic empty one is the caller's responsibility if absent; nil
// here simply means none was declared.
func (n *SchemaNode) ActionInput() *SchemaNode {
	return n.actionChild(NInput)
}

// ActionOutput returns the action/rpc's explicit "output" child.
func (n *SchemaNode) ActionOutput() *SchemaNode {
	return n.actionChild(NOutput)
}

func (n *SchemaNode) actionChild(t NodeType) *SchemaNode {
	for _, c := range n.Children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

func sameModule(a, b *Module) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name
}

// Module is a parsed and/or compiled module or submodule. A single
// struct covers both facets: IsSubmodule distinguishes
// the two shapes (BelongsTo is populated only for submodules;
// Namespace/Prefix only for modules).
type Module struct {
	Name        string
	IsSubmodule bool

	// Module-only facets.
	Namespace string
	Prefix    string

	// Submodule-only facet.
	BelongsTo string

	Revisions []Revision // newest first
	Imports   []*Import
	Includes  []*Include
	Typedefs  []*Typedef // top-level typedefs
	Root      *SchemaNode

	Implemented    bool
	LatestRevision LatestRevision

	// Path is the provenance file path, if the module was loaded from
	// a file, for use in diagnostics.
	Path string

	// parsing is the re-entry guard used to detect include/import
	// cycles while a load is in progress.
	parsing bool
}

// CurrentRevision returns the newest revision date, or "" if the
// module carries no revisions.
func (m *Module) CurrentRevision() string {
	if len(m.Revisions) == 0 {
		return ""
	}
	return m.Revisions[0].Date
}

// AllTypedefs returns m's own top-level typedefs followed by those of
// every submodule it includes, in include order.
func (m *Module) AllTypedefs() []*Typedef {
	tds := append([]*Typedef(nil), m.Typedefs...)
	for _, inc := range m.Includes {
		if inc.Submodule != nil {
			tds = append(tds, inc.Submodule.Typedefs...)
		}
	}
	return tds
}
