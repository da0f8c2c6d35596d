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

// Keyword is a recognized YANG statement keyword, or KeywordCustomExtension
// for a prefixed (vendor extension) keyword, or KeywordNone if the input
// does not match any recognized keyword.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordCustomExtension
	KeywordModule
	KeywordSubmodule
	KeywordImport
	KeywordInclude
	KeywordBelongsTo
	KeywordPrefix
	KeywordNamespace
	KeywordRevision
	KeywordRevisionDate
	KeywordTypedef
	KeywordType
	KeywordGrouping
	KeywordUses
	KeywordContainer
	KeywordLeaf
	KeywordLeafList
	KeywordList
	KeywordChoice
	KeywordCase
	KeywordAnyxml
	KeywordAnydata
	KeywordAugment
	KeywordDeviation
	KeywordDeviate
	KeywordRPC
	KeywordAction
	KeywordNotification
	KeywordInput
	KeywordOutput
	KeywordFeature
	KeywordIfFeature
	KeywordIdentity
	KeywordBase
	KeywordExtension
	KeywordArgument
	KeywordYinElement
	KeywordStatus
	KeywordDescription
	KeywordReference
	KeywordOrganization
	KeywordContact
	KeywordDefault
	KeywordConfig
	KeywordMandatory
	KeywordMinElements
	KeywordMaxElements
	KeywordOrderedBy
	KeywordKey
	KeywordUnique
	KeywordPresence
	KeywordWhen
	KeywordMust
	KeywordErrorAppTag
	KeywordErrorMessage
	KeywordPath
	KeywordPattern
	KeywordLength
	KeywordRange
	KeywordEnum
	KeywordBit
	KeywordValue
	KeywordPosition
	KeywordFractionDigits
	KeywordRequireInstance
	KeywordModifier
	KeywordUnits
	KeywordRefine
	KeywordYangVersion
)

// keywordsByFirstByte holds the closed set of ~70 recognized YANG statement keywords,
// indexed by first byte so RecognizeKeyword can dispatch in O(1) before
// doing an O(length) exact-match scan.
var keywordsByFirstByte = map[byte][]struct {
	text string
	kw   Keyword
}{}

func registerKeyword(text string, kw Keyword) {
	b := text[0]
	keywordsByFirstByte[b] = append(keywordsByFirstByte[b], struct {
		text string
		kw   Keyword
	}{text, kw})
}

func init() {
	registerKeyword("module", KeywordModule)
	registerKeyword("submodule", KeywordSubmodule)
	registerKeyword("import", KeywordImport)
	registerKeyword("include", KeywordInclude)
	registerKeyword("belongs-to", KeywordBelongsTo)
	registerKeyword("prefix", KeywordPrefix)
	registerKeyword("namespace", KeywordNamespace)
	registerKeyword("revision", KeywordRevision)
	registerKeyword("revision-date", KeywordRevisionDate)
	registerKeyword("typedef", KeywordTypedef)
	registerKeyword("type", KeywordType)
	registerKeyword("grouping", KeywordGrouping)
	registerKeyword("uses", KeywordUses)
	registerKeyword("container", KeywordContainer)
	registerKeyword("leaf", KeywordLeaf)
	registerKeyword("leaf-list", KeywordLeafList)
	registerKeyword("list", KeywordList)
	registerKeyword("choice", KeywordChoice)
	registerKeyword("case", KeywordCase)
	registerKeyword("anyxml", KeywordAnyxml)
	registerKeyword("anydata", KeywordAnydata)
	registerKeyword("augment", KeywordAugment)
	registerKeyword("deviation", KeywordDeviation)
	registerKeyword("deviate", KeywordDeviate)
	registerKeyword("rpc", KeywordRPC)
	registerKeyword("action", KeywordAction)
	registerKeyword("notification", KeywordNotification)
	registerKeyword("input", KeywordInput)
	registerKeyword("output", KeywordOutput)
	registerKeyword("feature", KeywordFeature)
	registerKeyword("if-feature", KeywordIfFeature)
	registerKeyword("identity", KeywordIdentity)
	registerKeyword("base", KeywordBase)
	registerKeyword("extension", KeywordExtension)
	registerKeyword("argument", KeywordArgument)
	registerKeyword("yin-element", KeywordYinElement)
	registerKeyword("status", KeywordStatus)
	registerKeyword("description", KeywordDescription)
	registerKeyword("reference", KeywordReference)
	registerKeyword("organization", KeywordOrganization)
	registerKeyword("contact", KeywordContact)
	registerKeyword("default", KeywordDefault)
	registerKeyword("config", KeywordConfig)
	registerKeyword("mandatory", KeywordMandatory)
	registerKeyword("min-elements", KeywordMinElements)
	registerKeyword("max-elements", KeywordMaxElements)
	registerKeyword("ordered-by", KeywordOrderedBy)
	registerKeyword("key", KeywordKey)
	registerKeyword("unique", KeywordUnique)
	registerKeyword("presence", KeywordPresence)
	registerKeyword("when", KeywordWhen)
	registerKeyword("must", KeywordMust)
	registerKeyword("error-app-tag", KeywordErrorAppTag)
	registerKeyword("error-message", KeywordErrorMessage)
	registerKeyword("path", KeywordPath)
	registerKeyword("pattern", KeywordPattern)
	registerKeyword("length", KeywordLength)
	registerKeyword("range", KeywordRange)
	registerKeyword("enum", KeywordEnum)
	registerKeyword("bit", KeywordBit)
	registerKeyword("value", KeywordValue)
	registerKeyword("position", KeywordPosition)
	registerKeyword("fraction-digits", KeywordFractionDigits)
	registerKeyword("require-instance", KeywordRequireInstance)
	registerKeyword("modifier", KeywordModifier)
	registerKeyword("units", KeywordUnits)
	registerKeyword("refine", KeywordRefine)
	registerKeyword("yang-version", KeywordYangVersion)
}

// RecognizeKeyword classifies a bare keyword string. If prefixLen > 0
// the keyword was written as "prefix:name" in the source, which makes
// it a vendor extension regardless of what name matches — any prefixed
// keyword is KeywordCustomExtension, never one of the built-in ~70.
//
// Recognition is exact: a supplied text whose length does not match a
// candidate's length is never a match, even if text is a prefix of a
// longer keyword (e.g. "leaf" vs "leaf-list"). Unmatched input returns
// KeywordNone. This is a total function: every input returns exactly
// one of (a recognized keyword) or KeywordNone, and no two registered
// keywords share a byte string.
func RecognizeKeyword(text string, prefixLen int) Keyword {
	if prefixLen > 0 {
		return KeywordCustomExtension
	}
	if len(text) == 0 {
		return KeywordNone
	}
	for _, cand := range keywordsByFirstByte[text[0]] {
		if len(cand.text) == len(text) && cand.text == text {
			return cand.kw
		}
	}
	return KeywordNone
}
