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

package main

import (
	"fmt"
	"strings"

	"github.com/logbob0401/libyang/pkg/yang"
)

// formatTree renders m's schema-node tree as indented text, one line
// per node, e.g.:
//
//	module: test-mod
//	  +-- top (container)
//	     +-- name (leaf)
func formatTree(m *yang.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module: %s\n", m.Name)
	if m.Root != nil {
		for _, c := range m.Root.Children {
			writeTreeNode(&b, c, "  ")
		}
	}
	return b.String()
}

func writeTreeNode(b *strings.Builder, n *yang.SchemaNode, indent string) {
	fmt.Fprintf(b, "%s+-- %s (%s)\n", indent, n.Name, n.Type)
	for _, c := range n.Children {
		writeTreeNode(b, c, indent+"   ")
	}
}
