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

// Program yanglint loads YANG modules and reports structural problems:
// modules that fail to load (missing imports or includes, cycles,
// prefix collisions), typedef collisions, and file-name warnings from
// the loader. With --tree it also prints each module's schema-node tree;
// it does not render proto or any other derived encoding of a module.
//
// Usage: yanglint [--path DIR[,DIR...]] [--revisions] [--tree] MODULE [MODULE ...]
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/logbob0401/libyang/pkg/yang"
	"github.com/logbob0401/libyang/pkg/yangtext"
	"github.com/pborman/getopt"
)

var stop = os.Exit

func main() {
	var paths []string
	var revisions bool
	var tree bool
	getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to the search path", "DIR[,DIR...]")
	getopt.BoolVarLong(&revisions, "revisions", 0, "print every known revision of each loaded module, newest first")
	getopt.BoolVarLong(&tree, "tree", 0, "print each loaded module's schema-node tree")
	getopt.SetParameters("MODULE [MODULE ...]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	modules := getopt.Args()
	if len(modules) == 0 {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(1)
	}

	ctx := yang.NewContext()
	ctx.SetParser(yangtext.Build)
	for _, p := range paths {
		ctx.AddSearchDir(p)
	}

	var failed bool
	loaded := make([]*yang.Module, 0, len(modules))
	for _, name := range modules {
		m, err := ctx.LoadModule(trimDotYang(name), "", true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
			continue
		}
		loaded = append(loaded, m)
	}
	if failed {
		stop(1)
	}

	for _, w := range ctx.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	for _, m := range loaded {
		if err := yang.CheckTypedefs(m); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", m.Name, err)
			failed = true
		}
	}

	if revisions {
		printRevisions(loaded)
	}

	if tree {
		for _, m := range loaded {
			fmt.Print(formatTree(m))
		}
	}

	if failed {
		stop(1)
	}
}

func trimDotYang(name string) string {
	if strings.HasSuffix(name, ".yang") {
		name = strings.TrimSuffix(name, ".yang")
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if at := strings.LastIndex(name, "@"); at >= 0 {
			name = name[:at]
		}
	}
	return name
}

func printRevisions(modules []*yang.Module) {
	names := make([]string, 0, len(modules))
	byName := map[string]*yang.Module{}
	for _, m := range modules {
		names = append(names, m.Name)
		byName[m.Name] = m
	}
	sort.Strings(names)
	for _, n := range names {
		m := byName[n]
		fmt.Printf("%s:\n", m.Name)
		for _, r := range yang.RevisionsNewestFirst(m.Revisions) {
			fmt.Printf("  %s\n", r.Date)
		}
	}
}
