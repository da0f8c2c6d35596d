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

// This file holds the closed set of 19 YANG built-in type names,
// trimmed to just the tag: ranges, patterns, and enum values belong to
// a downstream semantic compiler, not this package.

// TypeKind is the enumeration of YANG's built-in base types.
type TypeKind int

const (
	Ynone TypeKind = iota
	Ybinary
	Ybits
	Ybool
	Ydecimal64
	Yempty
	Yenum
	Yint8
	Yint16
	Yint32
	Yint64
	Yuint8
	Yuint16
	Yuint32
	Yuint64
	Ystring
	Yidentityref
	YinstanceIdentifier
	Yleafref
	Yunion
)

// builtinTypeNames maps the closed set of 19 built-in type names to
// their TypeKind. Every value the grammar can use appears here exactly
// once.
var builtinTypeNames = map[string]TypeKind{
	"binary":              Ybinary,
	"bits":                Ybits,
	"boolean":             Ybool,
	"decimal64":           Ydecimal64,
	"empty":               Yempty,
	"enumeration":         Yenum,
	"int8":                Yint8,
	"int16":               Yint16,
	"int32":               Yint32,
	"int64":               Yint64,
	"uint8":               Yuint8,
	"uint16":              Yuint16,
	"uint32":              Yuint32,
	"uint64":              Yuint64,
	"string":              Ystring,
	"identityref":         Yidentityref,
	"instance-identifier": YinstanceIdentifier,
	"leafref":             Yleafref,
	"union":               Yunion,
}

var builtinTypeKindNames = func() map[TypeKind]string {
	m := make(map[TypeKind]string, len(builtinTypeNames))
	for name, kind := range builtinTypeNames {
		m[kind] = name
	}
	return m
}()

func (k TypeKind) String() string {
	if s, ok := builtinTypeKindNames[k]; ok {
		return s
	}
	return "none"
}

// isBuiltinTypeName reports whether name is one of the 19 built-in type
// names; typedef names must never collide with these.
func isBuiltinTypeName(name string) bool {
	_, ok := builtinTypeNames[name]
	return ok
}
